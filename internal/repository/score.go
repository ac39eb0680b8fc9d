package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
)

// DefaultScoresKey is the key scores live under unless storage.scores-key overrides it.
const DefaultScoresKey = "ticTacToeScores"

var (
	ErrScoresNotFound  = errors.New("scores not found")
	ErrMalformedScores = errors.New("malformed scores")
)

type ScoreRepository interface {
	Get(ctx context.Context) (entity.Scores, error)
	Save(ctx context.Context, scores entity.Scores) error
}

type keyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type dbScore struct {
	store keyValue
	key   string
}

func NewScoreRepository(store keyValue, key string) ScoreRepository {
	if key == "" {
		key = DefaultScoresKey
	}

	return &dbScore{
		store: store,
		key:   key,
	}
}

// storedScores uses pointers so a missing field is told apart from zero.
type storedScores struct {
	Player1 *int `json:"player1"`
	Player2 *int `json:"player2"`
}

func (that *dbScore) Get(ctx context.Context) (entity.Scores, error) {
	response, err := that.store.Get(ctx, that.key)
	if errors.Is(err, storage.ErrNotFound) {
		return entity.Scores{}, ErrScoresNotFound
	}

	if err != nil {
		return entity.Scores{}, fmt.Errorf("failed to get scores: %w", err)
	}

	var stored storedScores
	if err = json.Unmarshal([]byte(response), &stored); err != nil {
		return entity.Scores{}, fmt.Errorf("%w: %w", ErrMalformedScores, err)
	}

	if stored.Player1 == nil || stored.Player2 == nil {
		return entity.Scores{}, fmt.Errorf("%w: missing player count in %q", ErrMalformedScores, response)
	}

	scores := entity.Scores{Player1: *stored.Player1, Player2: *stored.Player2}
	if !scores.IsValid() {
		return entity.Scores{}, fmt.Errorf("%w: negative count in %q", ErrMalformedScores, response)
	}

	return scores, nil
}

func (that *dbScore) Save(ctx context.Context, scores entity.Scores) error {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("could not marshal scores: %w", err)
	}

	if err = that.store.Set(ctx, that.key, string(scoresJSON)); err != nil {
		return fmt.Errorf("failed to set scores: %w", err)
	}

	return nil
}
