package mocks

import (
	"context"

	"farmacia/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCRUDRepository[T any, I any] struct {
	mock.Mock
}

var _ repository.CRUDRepository[struct{}, struct{}] = (*MockCRUDRepository[struct{}, struct{}])(nil)

func (m *MockCRUDRepository[T, I]) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[T], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[T]), args.Error(1)
}

func (m *MockCRUDRepository[T, I]) FindByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDRepository[T, I]) Create(ctx context.Context, in I) (*T, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDRepository[T, I]) Update(ctx context.Context, id int64, in I) (*T, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUDRepository[T, I]) Delete(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}
