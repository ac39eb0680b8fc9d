package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

type scoreLedger interface {
	RecordWin(ctx context.Context, player entity.Player) (entity.Scores, error)
	ResetAll(ctx context.Context) (entity.Scores, error)
	Scores() entity.Scores
}

// Listener is told about every change to the game or the scores.
type Listener = func(game entity.GameView, scores entity.Scores)

// GameManager owns the one game on the table. Every action takes the lock
// for its whole run, so actions apply strictly one after another.
type GameManager struct {
	logger *slog.Logger
	ledger scoreLedger

	mu        sync.Mutex
	id        string
	state     entity.GameState
	listeners []Listener
}

func NewGameManager(logger *slog.Logger, ledger scoreLedger, config entity.GameConfig) (*GameManager, error) {
	state, err := tictactoe.Initialize(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create game manager: %w", err)
	}

	return &GameManager{
		logger: logger.With("component", "game_manager"),
		ledger: ledger,
		id:     uuid.NewString(),
		state:  state,
	}, nil
}

// Subscribe - registers a listener. Listeners run while the action holds the
// lock and must not block or call back into the manager.
func (that *GameManager) Subscribe(listener Listener) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.listeners = append(that.listeners, listener)
}

func (that *GameManager) Game() entity.GameView {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.NewGameView(that.id, that.state)
}

// Snapshot - returns the game and the scores as of the same action.
func (that *GameManager) Snapshot() (entity.GameView, entity.Scores) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return entity.NewGameView(that.id, that.state), that.ledger.Scores()
}

func (that *GameManager) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

func (that *GameManager) Scores() entity.Scores {
	return that.ledger.Scores()
}

// MakeMove - plays the current player's mark at (row, col). Moves on a
// finished game or an occupied cell return the game unchanged.
func (that *GameManager) MakeMove(ctx context.Context, row, col int) (entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "MakeMove", "game_id", that.id)

	if !that.state.Grid.InBounds(row, col) {
		return entity.NewGameView(that.id, that.state),
			fmt.Errorf("%w: (%d, %d) on a %dx%d grid", apperror.ErrInvalidCell, row, col, that.state.Grid.Size(), that.state.Grid.Size())
	}

	prev := that.state
	if prev.Terminal || prev.Grid[row][col] != entity.EmptyCell {
		log.Debug("move ignored", "row", row, "col", col, "terminal", prev.Terminal)
		return entity.NewGameView(that.id, prev), nil
	}

	that.state = tictactoe.ApplyMove(prev, row, col)

	if that.state.IsWin() {
		log.Info("game won", "winner", int(that.state.Winner))

		if _, err := that.ledger.RecordWin(ctx, that.state.Winner); err != nil {
			log.Error("failed to record win", "error", err)
		}
	}

	if that.state.IsDraw() {
		log.Info("game drawn")
	}

	that.notify()

	return entity.NewGameView(that.id, that.state), nil
}

// NewGame - starts a fresh game with the current settings.
func (that *GameManager) NewGame(_ context.Context) (entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.reset(that.state.Config); err != nil {
		return entity.NewGameView(that.id, that.state), err
	}

	return entity.NewGameView(that.id, that.state), nil
}

// ApplySettings - starts a fresh game with a new configuration. A rejected
// configuration leaves the current game as it was.
func (that *GameManager) ApplySettings(_ context.Context, config entity.GameConfig) (entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.reset(config); err != nil {
		that.logger.Warn("settings rejected", "error", err)
		return entity.NewGameView(that.id, that.state), err
	}

	return entity.NewGameView(that.id, that.state), nil
}

// ResetScores - zeroes the ledger. The game in progress is not touched.
func (that *GameManager) ResetScores(ctx context.Context) (entity.Scores, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	scores, err := that.ledger.ResetAll(ctx)

	that.notify()

	if err != nil {
		return scores, fmt.Errorf("failed to reset scores: %w", err)
	}

	return scores, nil
}

func (that *GameManager) reset(config entity.GameConfig) error {
	state, err := tictactoe.Reset(config)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	that.id = uuid.NewString()
	that.state = state

	that.logger.Info("new game",
		"game_id", that.id,
		"grid_size", config.GridSize,
		"win_length", config.WinLength,
	)

	that.notify()

	return nil
}

// notify - must be called with the lock held.
func (that *GameManager) notify() {
	if len(that.listeners) == 0 {
		return
	}

	game := entity.NewGameView(that.id, that.state)
	scores := that.ledger.Scores()

	for _, listener := range that.listeners {
		listener(game, scores)
	}
}
