package mocks

import (
	"context"
	"io"

	"fixtureplanner/internal/assets"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Open(ctx context.Context, name string) (io.ReadCloser, assets.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Get(1).(assets.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(assets.ObjectInfo), args.Error(2)
}

func (m *MockStore) Stat(ctx context.Context, name string) (assets.ObjectInfo, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(assets.ObjectInfo), args.Error(1)
}
