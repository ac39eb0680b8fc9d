package rest

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// clampGridSize - bounds the grid size. An absent value falls back to the minimum.
func clampGridSize(value int) int {
	return clamp(value, entity.MinGridSize, entity.MaxGridSize)
}

// clampWinLength - bounds the win length on its own. Whether it fits the grid
// is decided by the game, which answers with a configuration error.
func clampWinLength(value int) int {
	return clamp(value, entity.MinWinLength, entity.MaxGridSize)
}

func clamp(value, low, high int) int {
	if value == 0 {
		value = low
	}

	return max(low, min(high, value))
}
