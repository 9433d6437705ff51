package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

type pushSubscriptionRepo struct {
	db *sqlx.DB
}

// NewPushSubscriptionRepo creates a new PostgreSQL-backed PushSubscriptionRepository.
func NewPushSubscriptionRepo(db *sqlx.DB) port.PushSubscriptionRepository {
	return &pushSubscriptionRepo{db: db}
}

// Upsert inserts the subscription or, when the endpoint is already stored,
// reassigns it to the given user and reactivates it.
func (r *pushSubscriptionRepo) Upsert(ctx context.Context, sub *domain.PushSubscription) error {
	sub.ID = uuid.New()
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	query := `INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh, auth, user_agent,
		is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (endpoint) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			p256dh = EXCLUDED.p256dh,
			auth = EXCLUDED.auth,
			user_agent = EXCLUDED.user_agent,
			is_active = true,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.UserID, sub.Endpoint, sub.P256DH, sub.Auth, sub.UserAgent,
		sub.IsActive, sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("pushSubscriptionRepo.Upsert: %w", err)
	}
	return nil
}

func (r *pushSubscriptionRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error) {
	var subs []domain.PushSubscription
	err := r.db.SelectContext(ctx, &subs,
		"SELECT * FROM push_subscriptions WHERE user_id = $1 AND is_active = true", userID)
	if err != nil {
		return nil, fmt.Errorf("pushSubscriptionRepo.ListActiveByUser: %w", err)
	}
	return subs, nil
}

func (r *pushSubscriptionRepo) ListActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.PushSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(
		"SELECT * FROM push_subscriptions WHERE user_id IN (?) AND is_active = true", userIDs)
	if err != nil {
		return nil, fmt.Errorf("pushSubscriptionRepo.ListActiveByUsers: %w", err)
	}
	query = r.db.Rebind(query)

	var subs []domain.PushSubscription
	if err := r.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("pushSubscriptionRepo.ListActiveByUsers: %w", err)
	}
	return subs, nil
}

// DeactivateByEndpoint marks a subscription inactive. A uuid.Nil userID
// bypasses the ownership check; it is used when the push service reports an
// endpoint as gone.
func (r *pushSubscriptionRepo) DeactivateByEndpoint(ctx context.Context, userID uuid.UUID, endpoint string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE push_subscriptions SET is_active = false, updated_at = $1
		 WHERE endpoint = $2 AND (user_id = $3 OR $3 = '00000000-0000-0000-0000-000000000000')`,
		time.Now().UTC(), endpoint, userID)
	if err != nil {
		return fmt.Errorf("pushSubscriptionRepo.DeactivateByEndpoint: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}
