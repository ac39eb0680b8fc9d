package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from rows like "XO.", where X is player 1, O is player 2 and . is empty.
func gridFrom(t *testing.T, rows ...string) entity.Grid {
	t.Helper()

	grid := entity.NewGrid(len(rows))
	for r, line := range rows {
		require.Len(t, line, len(rows), "row %d is not square", r)

		for c, ch := range line {
			switch ch {
			case 'X':
				grid[r][c] = entity.CellA
			case 'O':
				grid[r][c] = entity.CellB
			}
		}
	}

	return grid
}

func newState(t *testing.T, gridSize, winLength int) entity.GameState {
	t.Helper()

	state, err := Initialize(entity.GameConfig{
		GridSize:  gridSize,
		WinLength: winLength,
		SymbolA:   entity.DefaultSymbolA,
		SymbolB:   entity.DefaultSymbolB,
	})
	require.NoError(t, err)

	return state
}

type move struct {
	row, col int
}

func play(state entity.GameState, moves ...move) entity.GameState {
	for _, m := range moves {
		state = ApplyMove(state, m.row, m.col)
	}

	return state
}
