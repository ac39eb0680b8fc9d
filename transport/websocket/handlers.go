package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

var errSendBufferFull = errors.New("send buffer full")

func (that *Server) handleGameState(_ context.Context, _ *Message, c *client) error {
	game, scores := that.uGame.Snapshot()

	if err := that.send(c, actionGameState, ResponsePayload{Game: &game}); err != nil {
		return err
	}

	return that.send(c, actionScoresState, ResponsePayload{Scores: &scores})
}

// handleGameMove - the resulting state reaches every client through the
// broadcast. A move that changes nothing produces no message.
func (that *Server) handleGameMove(ctx context.Context, msg *Message, c *client) error {
	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		that.sendError(c, msg.Action, "invalid payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		that.sendError(c, msg.Action, "row and col are required")
		return nil
	}

	if _, err := that.uGame.MakeMove(ctx, *payloadReq.Row, *payloadReq.Col); err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return nil
}

func (that *Server) handleGameNew(ctx context.Context, msg *Message, c *client) error {
	if _, err := that.uGame.NewGame(ctx); err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return nil
}

func (that *Server) handleGameSettings(ctx context.Context, msg *Message, c *client) error {
	var payloadReq RequestPayload
	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		that.sendError(c, msg.Action, "invalid payload")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Settings == nil {
		that.sendError(c, msg.Action, "settings are required")
		return nil
	}

	if _, err := that.uGame.ApplySettings(ctx, *payloadReq.Settings); err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return nil
}

func (that *Server) handleScoresGet(_ context.Context, _ *Message, c *client) error {
	scores := that.uGame.Scores()

	return that.send(c, actionScoresState, ResponsePayload{Scores: &scores})
}

func (that *Server) handleScoresReset(ctx context.Context, msg *Message, c *client) error {
	if _, err := that.uGame.ResetScores(ctx); err != nil {
		return that.replyError(c, msg.Action, err)
	}

	return nil
}

// replyError - tells the client why its request failed. Rule violations are
// the client's problem and are not logged as errors.
func (that *Server) replyError(c *client, action string, err error) error {
	if errors.Is(err, apperror.ErrConfig) || errors.Is(err, apperror.ErrInvalidCell) {
		that.sendError(c, action, err.Error())
		return nil
	}

	that.sendError(c, action, "internal server error")

	return err
}

func (that *Server) sendError(c *client, action, message string) {
	if err := that.send(c, actionError, ResponsePayload{Request: action, Error: message}); err != nil {
		that.logger.Error("failed to send error response", "error", err)
	}
}

func (that *Server) send(c *client, action string, payload ResponsePayload) error {
	message, err := encodeMessage(action, payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	that.clientsMutex.Lock()
	defer that.clientsMutex.Unlock()

	if _, ok := that.clients[c]; !ok {
		return nil
	}

	if !c.enqueue(message) {
		return errSendBufferFull
	}

	return nil
}
