package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
)

type scoreRepo interface {
	Get(ctx context.Context) (entity.Scores, error)
	Save(ctx context.Context, scores entity.Scores) error
}

// ScoreLedger keeps the win counts in memory and writes every change
// through to the repository.
type ScoreLedger struct {
	logger    *slog.Logger
	scoreRepo scoreRepo

	mu     sync.Mutex
	scores entity.Scores
}

func NewScoreLedger(logger *slog.Logger, scoreRepo scoreRepo) *ScoreLedger {
	return &ScoreLedger{
		logger:    logger.With("component", "score_ledger"),
		scoreRepo: scoreRepo,
	}
}

// Load - reads the persisted scores. Missing or unreadable data starts the
// ledger from zero.
func (that *ScoreLedger) Load(ctx context.Context) entity.Scores {
	log := that.logger.With("method", "Load")

	that.mu.Lock()
	defer that.mu.Unlock()

	scores, err := that.scoreRepo.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrScoresNotFound):
		log.Info("no saved scores, starting from zero")
	case err != nil:
		log.Warn("could not read saved scores, starting from zero", "error", err)
	}

	if err != nil {
		scores = entity.Scores{}
	}

	that.scores = scores

	return scores
}

// RecordWin - adds a win for the player and persists the result. The in-memory
// count keeps the win even when the write fails.
func (that *ScoreLedger) RecordWin(ctx context.Context, player entity.Player) (entity.Scores, error) {
	if !player.IsValid() {
		return that.Scores(), fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores = that.scores.Add(player)

	if err := that.scoreRepo.Save(ctx, that.scores); err != nil {
		return that.scores, fmt.Errorf("failed to save scores: %w", err)
	}

	that.logger.Info("win recorded", "player", int(player), "wins", that.scores.Of(player))

	return that.scores, nil
}

// ResetAll - zeroes both counts and persists them.
func (that *ScoreLedger) ResetAll(ctx context.Context) (entity.Scores, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.scores = entity.Scores{}

	if err := that.scoreRepo.Save(ctx, that.scores); err != nil {
		return that.scores, fmt.Errorf("failed to save scores: %w", err)
	}

	that.logger.Info("scores reset")

	return that.scores, nil
}

func (that *ScoreLedger) Scores() entity.Scores {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.scores
}
