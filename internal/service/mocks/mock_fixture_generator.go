package mocks

import (
	"context"
	"encoding/json"

	"fixtureplanner/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFixtureGenerator struct {
	mock.Mock
}

func (m *MockFixtureGenerator) Generate(ctx context.Context, payload json.RawMessage) (*model.GenerateResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GenerateResponse), args.Error(1)
}
