package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// MockPushSender is a mock implementation of port.PushSender.
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, sub *domain.PushSubscription, payload *port.PushPayload) port.PushResult {
	args := m.Called(ctx, sub, payload)
	return args.Get(0).(port.PushResult)
}

func (m *MockPushSender) SendToMany(ctx context.Context, subs []domain.PushSubscription, payload *port.PushPayload) []port.PushResult {
	args := m.Called(ctx, subs, payload)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]port.PushResult)
}

func (m *MockPushSender) PublicKey() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPushSender) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
