package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	actionGameState    = "game:state"
	actionGameMove     = "game:move"
	actionGameNew      = "game:new"
	actionGameSettings = "game:settings"
	actionScoresGet    = "scores:get"
	actionScoresReset  = "scores:reset"
	actionScoresState  = "scores:state"
	actionError        = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Row      *int               `json:"row,omitempty"`
	Col      *int               `json:"col,omitempty"`
	Settings *entity.GameConfig `json:"settings,omitempty"`
}

type ResponsePayload struct {
	Game    *entity.GameView `json:"game,omitempty"`
	Scores  *entity.Scores   `json:"scores,omitempty"`
	Request string           `json:"request,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: body})
}
