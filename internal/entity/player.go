package entity

import "strconv"

// Player identifies one of the two seats at the board.
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

func (that Player) IsValid() bool {
	return that == Player1 || that == Player2
}

// Opponent - returns the player who moves after this one.
func (that Player) Opponent() Player {
	if that == Player1 {
		return Player2
	}
	return Player1
}

// Cell - returns the mark this player leaves on the grid.
func (that Player) Cell() Cell {
	switch that {
	case Player1:
		return CellA
	case Player2:
		return CellB
	default:
		return EmptyCell
	}
}

func (that Player) String() string {
	return "Player " + strconv.Itoa(int(that))
}
