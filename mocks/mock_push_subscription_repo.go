package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
)

// MockPushSubscriptionRepo is a mock implementation of port.PushSubscriptionRepository.
type MockPushSubscriptionRepo struct {
	mock.Mock
}

func (m *MockPushSubscriptionRepo) Upsert(ctx context.Context, sub *domain.PushSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockPushSubscriptionRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PushSubscription), args.Error(1)
}

func (m *MockPushSubscriptionRepo) ListActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.PushSubscription, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PushSubscription), args.Error(1)
}

func (m *MockPushSubscriptionRepo) DeactivateByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error {
	args := m.Called(ctx, userID, endpoint)
	return args.Error(0)
}
