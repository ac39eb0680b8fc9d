package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Initialize - validates the configuration and returns an empty board with
// player 1 to move.
func Initialize(config entity.GameConfig) (entity.GameState, error) {
	if err := config.Validate(); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to initialize game: %w", err)
	}

	return entity.GameState{
		Config:        config,
		Grid:          entity.NewGrid(config.GridSize),
		CurrentPlayer: entity.Player1,
		Terminal:      false,
		Outcome:       entity.OutcomeNone,
		Winner:        entity.NoPlayer,
	}, nil
}

// Reset - starts over with a possibly different configuration. On error the
// caller keeps its previous state.
func Reset(config entity.GameConfig) (entity.GameState, error) {
	return Initialize(config)
}

// ApplyMove - places the current player's mark at (row, col). A finished game
// or an occupied cell leaves the state as it was. Coordinates must be inside
// the grid.
func ApplyMove(state entity.GameState, row, col int) entity.GameState {
	if state.Terminal || state.Grid[row][col] != entity.EmptyCell {
		return state
	}

	next := state
	next.Grid = state.Grid.Clone()
	next.Grid[row][col] = state.CurrentPlayer.Cell()

	updateGameStatus(&next, row, col)

	return next
}

// updateGameStatus - evaluates the move just placed at (row, col).
func updateGameStatus(state *entity.GameState, row, col int) {
	switch {
	case CheckWin(state.Grid, row, col, state.Config.WinLength):
		state.Terminal = true
		state.Outcome = entity.OutcomeWin
		state.Winner = state.CurrentPlayer
	case CheckDraw(state.Grid):
		state.Terminal = true
		state.Outcome = entity.OutcomeDraw
	default:
		state.CurrentPlayer = state.CurrentPlayer.Opponent()
	}
}
