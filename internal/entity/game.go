package entity

import (
	"fmt"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

const (
	MinGridSize  = 3
	MaxGridSize  = 10
	MinWinLength = 3

	DefaultSymbolA = "X"
	DefaultSymbolB = "O"
)

type Outcome string

const (
	OutcomeNone Outcome = "none"
	OutcomeWin  Outcome = "win"
	OutcomeDraw Outcome = "draw"
)

// Cell holds the mark of the player who took it, or EmptyCell.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellA
	CellB
)

// Player - returns the owner of the cell, NoPlayer for an empty one.
func (that Cell) Player() Player {
	switch that {
	case CellA:
		return Player1
	case CellB:
		return Player2
	default:
		return NoPlayer
	}
}

// Grid is a square matrix indexed as grid[row][col].
type Grid [][]Cell

func NewGrid(size int) Grid {
	grid := make(Grid, size)
	for row := range grid {
		grid[row] = make([]Cell, size)
	}

	return grid
}

func (that Grid) Size() int {
	return len(that)
}

func (that Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that)
}

func (that Grid) Clone() Grid {
	grid := make(Grid, len(that))
	for row := range that {
		grid[row] = append([]Cell(nil), that[row]...)
	}

	return grid
}

// GameConfig is fixed for the lifetime of one game.
type GameConfig struct {
	GridSize  int    `json:"gridSize"`
	WinLength int    `json:"winLength"`
	SymbolA   string `json:"symbolA"`
	SymbolB   string `json:"symbolB"`
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		GridSize:  MinGridSize,
		WinLength: MinWinLength,
		SymbolA:   DefaultSymbolA,
		SymbolB:   DefaultSymbolB,
	}
}

// Validate - checks the configuration, every failure wraps apperror.ErrConfig.
func (that GameConfig) Validate() error {
	if that.GridSize < MinGridSize || that.GridSize > MaxGridSize {
		return fmt.Errorf("%w: grid size %d is outside [%d, %d]", apperror.ErrConfig, that.GridSize, MinGridSize, MaxGridSize)
	}

	if that.WinLength > that.GridSize {
		return fmt.Errorf("%w: win length %d exceeds grid size %d", apperror.ErrConfig, that.WinLength, that.GridSize)
	}

	if that.WinLength < MinWinLength {
		return fmt.Errorf("%w: win length %d is less than %d", apperror.ErrConfig, that.WinLength, MinWinLength)
	}

	if utf8.RuneCountInString(that.SymbolA) != 1 || utf8.RuneCountInString(that.SymbolB) != 1 {
		return fmt.Errorf("%w: symbols must be single characters, got %q and %q", apperror.ErrConfig, that.SymbolA, that.SymbolB)
	}

	if that.SymbolA == that.SymbolB {
		return fmt.Errorf("%w: players must choose different symbols, both chose %q", apperror.ErrConfig, that.SymbolA)
	}

	return nil
}

// GameState is a snapshot of one game. Operations in package tictactoe
// return new snapshots instead of changing the one they were given.
type GameState struct {
	Config        GameConfig
	Grid          Grid
	CurrentPlayer Player
	Terminal      bool
	Outcome       Outcome
	Winner        Player
}

func (that GameState) Symbol(player Player) string {
	switch player {
	case Player1:
		return that.Config.SymbolA
	case Player2:
		return that.Config.SymbolB
	default:
		return ""
	}
}

func (that GameState) SymbolAt(row, col int) string {
	return that.Symbol(that.Grid[row][col].Player())
}

func (that GameState) IsWin() bool {
	return that.Outcome == OutcomeWin
}

func (that GameState) IsDraw() bool {
	return that.Outcome == OutcomeDraw
}

// StatusMessage - returns the line shown above the board.
func (that GameState) StatusMessage() string {
	switch that.Outcome {
	case OutcomeWin:
		return that.Winner.String() + " Wins"
	case OutcomeDraw:
		return "It's a Draw"
	default:
		return that.CurrentPlayer.String() + "'s turn"
	}
}
