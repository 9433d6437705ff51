package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
	"agencyhub/internal/service"
)

// MockNotificationService is a mock implementation of service.NotificationService.
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendToRecipients(ctx context.Context, senderID uuid.UUID, recipientIDs []uuid.UUID, payload service.NotificationPayload) (int, error) {
	args := m.Called(ctx, senderID, recipientIDs, payload)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) Broadcast(ctx context.Context, senderID uuid.UUID, payload service.NotificationPayload) (int, error) {
	args := m.Called(ctx, senderID, payload)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) SendCallback(ctx context.Context, payload service.NotificationPayload) (int, error) {
	args := m.Called(ctx, payload)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) Notify(ctx context.Context, recipientID uuid.UUID, senderID *uuid.UUID, payload service.NotificationPayload) (*domain.Notification, error) {
	args := m.Called(ctx, recipientID, senderID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error) {
	args := m.Called(ctx, userID, unreadOnly, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Int(1), args.Error(2)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) Delete(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) error {
	args := m.Called(ctx, id, userID, role)
	return args.Error(0)
}

func (m *MockNotificationService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
