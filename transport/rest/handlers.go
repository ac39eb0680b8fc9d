package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type settingsRequest struct {
	GridSize  int    `json:"gridSize"`
	WinLength int    `json:"winLength"`
	SymbolA   string `json:"symbolA"`
	SymbolB   string `json:"symbolB"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) getGame(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.uGame.Game())
}

func (that *Server) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeError(w, http.StatusBadRequest, "row and col are required")
		return
	}

	game, err := that.uGame.MakeMove(r.Context(), *req.Row, *req.Col)
	if err != nil {
		that.writeGameError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) newGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.NewGame(r.Context())
	if err != nil {
		that.writeGameError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) applySettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	game, err := that.uGame.ApplySettings(r.Context(), entity.GameConfig{
		GridSize:  clampGridSize(req.GridSize),
		WinLength: clampWinLength(req.WinLength),
		SymbolA:   req.SymbolA,
		SymbolB:   req.SymbolB,
	})
	if err != nil {
		that.writeGameError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) getScores(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.uGame.Scores())
}

func (that *Server) resetScores(w http.ResponseWriter, r *http.Request) {
	scores, err := that.uGame.ResetScores(r.Context())
	if err != nil {
		that.writeGameError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, scores)
}

func (that *Server) writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrConfig):
		that.writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, apperror.ErrInvalidCell):
		that.writeError(w, http.StatusBadRequest, err.Error())
	default:
		that.logger.Error("request failed", "error", err)
		that.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeJSON - the status line is sent before encoding, so an encoding
// failure can only be logged.
func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "status", status, "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, status int, message string) {
	that.writeJSON(w, status, errorResponse{Error: message})
}
