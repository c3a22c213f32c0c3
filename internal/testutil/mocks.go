package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tf2schema-service/internal/core/domain"
)

// MockSteamClient is a mock of SteamClient.
type MockSteamClient struct {
	mock.Mock
}

func (m *MockSteamClient) FetchSchema(ctx context.Context) (*domain.Schema, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schema), args.Error(1)
}

// MockSchemaStore is a mock of SchemaStore.
type MockSchemaStore struct {
	mock.Mock
}

func (m *MockSchemaStore) Load(ctx context.Context) (*domain.Schema, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schema), args.Error(1)
}

func (m *MockSchemaStore) Save(ctx context.Context, schema *domain.Schema) error {
	args := m.Called(ctx, schema)
	return args.Error(0)
}

// MockSnapshotRepo is a mock of SnapshotRepository.
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Record(ctx context.Context, snapshot *domain.SchemaSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepo) Latest(ctx context.Context) (*domain.SchemaSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchemaSnapshot), args.Error(1)
}

func (m *MockSnapshotRepo) List(ctx context.Context, limit int) ([]*domain.SchemaSnapshot, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SchemaSnapshot), args.Error(1)
}
