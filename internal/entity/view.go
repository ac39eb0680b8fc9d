package entity

type Symbols struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// GameView is the wire form of a game sent to browsers.
type GameView struct {
	ID            string     `json:"id"`
	GridSize      int        `json:"gridSize"`
	WinLength     int        `json:"winLength"`
	Symbols       Symbols    `json:"symbols"`
	Board         [][]string `json:"board"`
	CurrentPlayer Player     `json:"currentPlayer"`
	Terminal      bool       `json:"terminal"`
	Outcome       Outcome    `json:"outcome"`
	Winner        Player     `json:"winner,omitempty"`
	Status        string     `json:"status"`
}

func NewGameView(id string, state GameState) GameView {
	board := make([][]string, state.Grid.Size())
	for row := range state.Grid {
		board[row] = make([]string, state.Grid.Size())
		for col := range state.Grid[row] {
			board[row][col] = state.SymbolAt(row, col)
		}
	}

	return GameView{
		ID:        id,
		GridSize:  state.Config.GridSize,
		WinLength: state.Config.WinLength,
		Symbols: Symbols{
			Player1: state.Config.SymbolA,
			Player2: state.Config.SymbolB,
		},
		Board:         board,
		CurrentPlayer: state.CurrentPlayer,
		Terminal:      state.Terminal,
		Outcome:       state.Outcome,
		Winner:        state.Winner,
		Status:        state.StatusMessage(),
	}
}
