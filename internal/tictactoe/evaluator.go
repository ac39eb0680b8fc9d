package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

type direction struct {
	dRow, dCol int
}

// directions lists each axis once, the opposite side is walked by negating it.
var directions = [4]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// CheckWin - reports whether the mark at (row, col) is part of a run of at least
// winLength cells. Only lines through that cell are examined, so it must be
// called right after a mark was placed there.
func CheckWin(grid entity.Grid, row, col, winLength int) bool {
	mark := grid[row][col]

	for _, dir := range directions {
		count := 1
		count += countRun(grid, row, col, dir.dRow, dir.dCol, mark, winLength-1)
		count += countRun(grid, row, col, -dir.dRow, -dir.dCol, mark, winLength-1)

		if count >= winLength {
			return true
		}
	}

	return false
}

// countRun - counts up to limit matching cells stepping away from (row, col).
func countRun(grid entity.Grid, row, col, dRow, dCol int, mark entity.Cell, limit int) int {
	count := 0
	for step := 1; step <= limit; step++ {
		r, c := row+step*dRow, col+step*dCol
		if !grid.InBounds(r, c) || grid[r][c] != mark {
			break
		}
		count++
	}

	return count
}

// CheckDraw - reports whether no empty cell is left. A full board with a
// winning line is a win, so check CheckWin first.
func CheckDraw(grid entity.Grid) bool {
	for _, row := range grid {
		for _, cell := range row {
			if cell == entity.EmptyCell {
				return false
			}
		}
	}

	return true
}
