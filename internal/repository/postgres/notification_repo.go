package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

type notificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new PostgreSQL-backed NotificationRepository.
func NewNotificationRepo(db *sqlx.DB) port.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()

	query := `INSERT INTO notifications (id, recipient_id, sender_id, title, message, type, priority,
		is_read, read_at, project_id, invoice_id, message_id, action_url, action_text,
		expires_at, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.RecipientID, n.SenderID, n.Title, n.Message, n.Type, n.Priority,
		n.IsRead, n.ReadAt, n.ProjectID, n.InvoiceID, n.MessageID, n.ActionURL,
		n.ActionText, n.ExpiresAt, n.Metadata, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("notificationRepo.Create: %w", err)
	}
	return nil
}

func (r *notificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.GetContext(ctx, &n, "SELECT * FROM notifications WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("notificationRepo.GetByID: %w", err)
	}
	return &n, nil
}

// List returns notifications for a recipient, newest first. Rows with a past
// expires_at are excluded but not deleted; PurgeExpired removes them.
func (r *notificationRepo) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, offset, limit int) ([]domain.Notification, int, error) {
	where := "recipient_id = $1 AND (expires_at IS NULL OR expires_at > NOW())"
	if unreadOnly {
		where += " AND is_read = false"
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM notifications WHERE "+where, recipientID)
	if err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.List count: %w", err)
	}

	var notifications []domain.Notification
	err = r.db.SelectContext(ctx, &notifications,
		"SELECT * FROM notifications WHERE "+where+" ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		recipientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("notificationRepo.List: %w", err)
	}
	return notifications, total, nil
}

func (r *notificationRepo) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications
		 WHERE recipient_id = $1 AND is_read = false AND (expires_at IS NULL OR expires_at > NOW())`,
		recipientID)
	if err != nil {
		return 0, fmt.Errorf("notificationRepo.UnreadCount: %w", err)
	}
	return count, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = true, read_at = $1 WHERE id = $2 AND is_read = false",
		readAt.UTC(), id)
	if err != nil {
		return fmt.Errorf("notificationRepo.MarkRead: %w", err)
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, recipientID uuid.UUID, readAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = true, read_at = $1 WHERE recipient_id = $2 AND is_read = false",
		readAt.UTC(), recipientID)
	if err != nil {
		return fmt.Errorf("notificationRepo.MarkAllRead: %w", err)
	}
	return nil
}

func (r *notificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notifications WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("notificationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepo) PurgeExpired(ctx context.Context, asOf time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM notifications WHERE expires_at IS NOT NULL AND expires_at <= $1", asOf.UTC())
	if err != nil {
		return 0, fmt.Errorf("notificationRepo.PurgeExpired: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
