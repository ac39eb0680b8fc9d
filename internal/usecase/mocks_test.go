package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockScoreRepo struct {
	mock.Mock
}

func (m *mockScoreRepo) Get(ctx context.Context) (entity.Scores, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.Scores), args.Error(1)
}

func (m *mockScoreRepo) Save(ctx context.Context, scores entity.Scores) error {
	args := m.Called(ctx, scores)
	return args.Error(0)
}

type mockScoreLedger struct {
	mock.Mock
}

func (m *mockScoreLedger) RecordWin(ctx context.Context, player entity.Player) (entity.Scores, error) {
	args := m.Called(ctx, player)
	return args.Get(0).(entity.Scores), args.Error(1)
}

func (m *mockScoreLedger) ResetAll(ctx context.Context) (entity.Scores, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.Scores), args.Error(1)
}

func (m *mockScoreLedger) Scores() entity.Scores {
	args := m.Called()
	return args.Get(0).(entity.Scores)
}
