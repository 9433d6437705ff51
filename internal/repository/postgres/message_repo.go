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

type messageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo creates a new PostgreSQL-backed MessageRepository.
func NewMessageRepo(db *sqlx.DB) port.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, m *domain.Message) error {
	m.ID = uuid.New()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `INSERT INTO messages (id, from_user_id, to_user_id, from_role, to_role, subject,
		content, status, priority, project_id, reply_to, attachments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.FromUserID, m.ToUserID, m.FromRole, m.ToRole, m.Subject,
		m.Content, m.Status, m.Priority, m.ProjectID, m.ReplyTo, m.Attachments,
		m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("messageRepo.Create: %w", err)
	}
	return nil
}

func (r *messageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	var m domain.Message
	err := r.db.GetContext(ctx, &m, "SELECT * FROM messages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("messageRepo.GetByID: %w", err)
	}
	return &m, nil
}

func (r *messageRepo) ListForUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Message, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM messages WHERE from_user_id = $1 OR to_user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("messageRepo.ListForUser count: %w", err)
	}

	var messages []domain.Message
	err = r.db.SelectContext(ctx, &messages,
		`SELECT * FROM messages WHERE from_user_id = $1 OR to_user_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("messageRepo.ListForUser: %w", err)
	}
	return messages, total, nil
}

func (r *messageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.MessageStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE messages SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("messageRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("messageRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
