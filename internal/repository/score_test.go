package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-board/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*miniredis.Miniredis, *storage.RedisStorage) {
	t.Helper()

	mini := miniredis.RunT(t)
	store := storage.NewRedisStorageWithClient(redis.NewClient(&redis.Options{Addr: mini.Addr()}))
	t.Cleanup(func() { _ = store.Close() })

	return mini, store
}

func TestScoreRepository_Save(t *testing.T) {
	ctx := context.Background()
	mini, store := newRedisStore(t)

	scoreRepo := NewScoreRepository(store, "")

	// When: scores are saved
	err := scoreRepo.Save(ctx, entity.Scores{Player1: 3, Player2: 1})
	require.NoError(t, err)

	// Then: they are written under the default key as {player1, player2} JSON
	value, err := mini.Get(DefaultScoresKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"player1":3,"player2":1}`, value)
}

func TestScoreRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx := context.Background()
		mini, store := newRedisStore(t)

		// Given: scores written by an earlier session
		require.NoError(t, mini.Set("scores", `{"player1":0,"player2":2}`))
		scoreRepo := NewScoreRepository(store, "scores")

		// When: Get is called
		scores, err := scoreRepo.Get(ctx)

		// Then: the stored counts come back
		require.NoError(t, err)
		assert.Equal(t, entity.Scores{Player1: 0, Player2: 2}, scores)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx := context.Background()
		_, store := newRedisStore(t)

		scoreRepo := NewScoreRepository(store, "")

		// When: nothing was ever stored
		scores, err := scoreRepo.Get(ctx)

		// Then: ErrScoresNotFound with zero scores
		require.ErrorIs(t, err, ErrScoresNotFound)
		assert.Equal(t, entity.Scores{}, scores)
	})

	t.Run("Get_Malformed", func(t *testing.T) {
		values := []string{
			`not json`,
			`null`,
			`[]`,
			`{"player1":1}`,
			`{"player1":"1","player2":0}`,
			`{"player1":-4,"player2":0}`,
			`{"player1":1.5,"player2":0}`,
		}

		for _, value := range values {
			ctx := context.Background()
			mini, store := newRedisStore(t)
			require.NoError(t, mini.Set(DefaultScoresKey, value))

			scoreRepo := NewScoreRepository(store, DefaultScoresKey)

			// When: the slot holds something that is not a score record
			scores, err := scoreRepo.Get(ctx)

			// Then: ErrMalformedScores with zero scores
			require.ErrorIs(t, err, ErrMalformedScores, value)
			assert.Equal(t, entity.Scores{}, scores, value)
		}
	})
}

func TestScoreRepository_Container(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewScoreRepository(storage.NewRedisStorageWithClient(st.Client), DefaultScoresKey)

	// Given: saved scores
	err := scoreRepo.Save(ctx, entity.Scores{Player1: 5, Player2: 7})
	require.NoError(t, err)

	// When: another repository reads the same slot
	scores, err := NewScoreRepository(storage.NewRedisStorageWithClient(st.Client), DefaultScoresKey).Get(ctx)

	// Then: the counts match
	require.NoError(t, err)
	assert.Equal(t, entity.Scores{Player1: 5, Player2: 7}, scores)
}
