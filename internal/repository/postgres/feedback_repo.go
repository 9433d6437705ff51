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

type feedbackRepo struct {
	db *sqlx.DB
}

// NewFeedbackRepo creates a new PostgreSQL-backed FeedbackRepository.
func NewFeedbackRepo(db *sqlx.DB) port.FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	f.ID = uuid.New()
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	query := `INSERT INTO feedback (id, client_id, project_id, rating, comment, status, is_public,
		admin_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.ClientID, f.ProjectID, f.Rating, f.Comment, f.Status, f.IsPublic,
		f.AdminResponse, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("feedbackRepo.Create: %w", err)
	}
	return nil
}

func (r *feedbackRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	var f domain.Feedback
	err := r.db.GetContext(ctx, &f, "SELECT * FROM feedback WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("feedbackRepo.GetByID: %w", err)
	}
	return &f, nil
}

func (r *feedbackRepo) List(ctx context.Context, status *domain.FeedbackStatus, offset, limit int) ([]domain.Feedback, int, error) {
	where := "1=1"
	args := []interface{}{}
	if status != nil {
		where = "status = $1"
		args = append(args, *status)
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM feedback WHERE "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("feedbackRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM feedback WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var feedback []domain.Feedback
	if err := r.db.SelectContext(ctx, &feedback, query, args...); err != nil {
		return nil, 0, fmt.Errorf("feedbackRepo.List: %w", err)
	}
	return feedback, total, nil
}

func (r *feedbackRepo) Update(ctx context.Context, f *domain.Feedback) error {
	f.UpdatedAt = time.Now().UTC()
	query := `UPDATE feedback SET rating = $1, comment = $2, status = $3, is_public = $4,
		admin_response = $5, updated_at = $6 WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		f.Rating, f.Comment, f.Status, f.IsPublic, f.AdminResponse, f.UpdatedAt, f.ID)
	if err != nil {
		return fmt.Errorf("feedbackRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *feedbackRepo) ListTestimonials(ctx context.Context, limit int) ([]domain.Feedback, error) {
	var feedback []domain.Feedback
	err := r.db.SelectContext(ctx, &feedback,
		`SELECT * FROM feedback WHERE status = $1 AND is_public = true
		 ORDER BY rating DESC, created_at DESC LIMIT $2`,
		domain.FeedbackStatusApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("feedbackRepo.ListTestimonials: %w", err)
	}
	return feedback, nil
}
