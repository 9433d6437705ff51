package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// SubscribeInput is the DTO for registering a browser push subscription.
type SubscribeInput struct {
	Endpoint  string `json:"endpoint" binding:"required"`
	P256DH    string `json:"p256dh" binding:"required"`
	Auth      string `json:"auth" binding:"required"`
	UserAgent string `json:"user_agent"`
}

// UnsubscribeInput is the DTO for removing a push subscription.
type UnsubscribeInput struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// PushService defines push subscription management.
type PushService interface {
	Subscribe(ctx context.Context, userID uuid.UUID, input SubscribeInput) (*domain.PushSubscription, error)
	Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error
	PublicKey() (string, error)
}

type pushService struct {
	subRepo    port.PushSubscriptionRepository
	pushSender port.PushSender
}

// NewPushService creates a new PushService implementation.
func NewPushService(subRepo port.PushSubscriptionRepository, pushSender port.PushSender) PushService {
	return &pushService{
		subRepo:    subRepo,
		pushSender: pushSender,
	}
}

// Subscribe upserts a subscription keyed by endpoint. Re-subscribing an
// endpoint reactivates it and refreshes its keys.
func (s *pushService) Subscribe(ctx context.Context, userID uuid.UUID, input SubscribeInput) (*domain.PushSubscription, error) {
	if !s.pushSender.Enabled() {
		return nil, domain.ErrPushNotConfigured
	}

	now := time.Now()
	sub := &domain.PushSubscription{
		ID:        uuid.New(),
		UserID:    userID,
		Endpoint:  input.Endpoint,
		P256DH:    input.P256DH,
		Auth:      input.Auth,
		UserAgent: input.UserAgent,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.subRepo.Upsert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *pushService) Unsubscribe(ctx context.Context, userID uuid.UUID, endpoint string) error {
	return s.subRepo.DeactivateByEndpoint(ctx, userID, endpoint)
}

func (s *pushService) PublicKey() (string, error) {
	if !s.pushSender.Enabled() {
		return "", domain.ErrPushNotConfigured
	}
	return s.pushSender.PublicKey(), nil
}
