package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestCheckWin(t *testing.T) {
	t.Run("Row of winLength anchored at the last cell", func(t *testing.T) {
		// Given: three X in the top row
		grid := gridFrom(t,
			"XXX",
			"OO.",
			"...",
		)

		// When / Then: every cell of the run reports a win
		for col := 0; col < 3; col++ {
			assert.True(t, CheckWin(grid, 0, col, 3), "col %d", col)
		}
	})

	t.Run("Column", func(t *testing.T) {
		// Given: a column of four O on a 5x5 board
		grid := gridFrom(t,
			".O...",
			".O...",
			".O.X.",
			".O.X.",
			"...X.",
		)

		// Then: win length 4 is reached, 5 is not
		assert.True(t, CheckWin(grid, 3, 1, 4))
		assert.False(t, CheckWin(grid, 3, 1, 5))
	})

	t.Run("Diagonal", func(t *testing.T) {
		// Given: X along (r, r)
		grid := gridFrom(t,
			"X...",
			".X..",
			"..X.",
			"...O",
		)

		// Then: the run of three counts from either end
		assert.True(t, CheckWin(grid, 2, 2, 3))
		assert.True(t, CheckWin(grid, 0, 0, 3))
		assert.False(t, CheckWin(grid, 2, 2, 4))
	})

	t.Run("Anti-diagonal", func(t *testing.T) {
		// Given: O along (r, N-1-r)
		grid := gridFrom(t,
			"...O",
			"..O.",
			".O..",
			"O...",
		)

		// Then: all four cells count
		assert.True(t, CheckWin(grid, 3, 0, 4))
		assert.True(t, CheckWin(grid, 1, 2, 4))
	})

	t.Run("Run interrupted by the opponent", func(t *testing.T) {
		// Given: X X O X X in one row
		grid := gridFrom(t,
			"XXOXX",
			".....",
			".....",
			".....",
			".....",
		)

		// Then: neither side reaches three
		assert.False(t, CheckWin(grid, 0, 1, 3))
		assert.False(t, CheckWin(grid, 0, 3, 3))
	})

	t.Run("Anchor in the middle joins both sides", func(t *testing.T) {
		// Given: two X on each side of the anchor
		grid := gridFrom(t,
			".....",
			".....",
			"XXXXX",
			".....",
			".....",
		)

		// Then: the full row of five is found from the centre
		assert.True(t, CheckWin(grid, 2, 2, 5))
	})

	t.Run("Lines that do not pass through the anchor are ignored", func(t *testing.T) {
		// Given: a complete X row and a lone X elsewhere
		grid := gridFrom(t,
			"XXX",
			"...",
			"..X",
		)

		// Then: the lone X has no run
		assert.False(t, CheckWin(grid, 2, 2, 3))
	})

	t.Run("Edges stop the scan", func(t *testing.T) {
		// Given: two X in the corner
		grid := gridFrom(t,
			"XX.",
			"X..",
			"...",
		)

		// Then: no direction reaches three
		assert.False(t, CheckWin(grid, 0, 0, 3))
	})
}

func TestCheckWin_EveryLineOnEveryBoard(t *testing.T) {
	for size := entity.MinGridSize; size <= entity.MaxGridSize; size++ {
		for winLength := entity.MinWinLength; winLength <= size; winLength++ {
			// Given: winLength marks along the row, column, diagonal and anti-diagonal
			row := entity.NewGrid(size)
			col := entity.NewGrid(size)
			diag := entity.NewGrid(size)
			anti := entity.NewGrid(size)

			for i := 0; i < winLength; i++ {
				row[0][i] = entity.CellA
				col[i][0] = entity.CellB
				diag[i][i] = entity.CellA
				anti[i][size-1-i] = entity.CellB
			}

			last := winLength - 1

			// Then: anchoring at the last placed mark reports a win
			assert.True(t, CheckWin(row, 0, last, winLength), "row size=%d win=%d", size, winLength)
			assert.True(t, CheckWin(col, last, 0, winLength), "col size=%d win=%d", size, winLength)
			assert.True(t, CheckWin(diag, last, last, winLength), "diag size=%d win=%d", size, winLength)
			assert.True(t, CheckWin(anti, last, size-1-last, winLength), "anti size=%d win=%d", size, winLength)

			// And: one mark short is not a win
			row[0][last] = entity.EmptyCell
			if last > 0 {
				assert.False(t, CheckWin(row, 0, last-1, winLength), "short row size=%d win=%d", size, winLength)
			}
		}
	}
}

func TestCheckDraw(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		grid := gridFrom(t,
			"XOX",
			"XOO",
			"OXX",
		)

		assert.True(t, CheckDraw(grid))
	})

	t.Run("One empty cell", func(t *testing.T) {
		grid := gridFrom(t,
			"XOX",
			"XOO",
			"OX.",
		)

		assert.False(t, CheckDraw(grid))
	})

	t.Run("Empty cell next to a winning line", func(t *testing.T) {
		// Given: X has a row but the board is not full
		grid := gridFrom(t,
			"XXX",
			"OO.",
			"...",
		)

		// Then: draw detection ignores the win
		assert.False(t, CheckDraw(grid))
	})

	t.Run("Full board with a winning line", func(t *testing.T) {
		// Given: a full board that contains a line
		grid := gridFrom(t,
			"XXX",
			"OOX",
			"XOO",
		)

		// Then: the board is full, callers must check the win first
		assert.True(t, CheckDraw(grid))
		assert.True(t, CheckWin(grid, 0, 2, 3))
	})
}
