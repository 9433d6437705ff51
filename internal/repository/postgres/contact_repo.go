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

type contactRepo struct {
	db *sqlx.DB
}

// NewContactRepo creates a new PostgreSQL-backed ContactRepository.
func NewContactRepo(db *sqlx.DB) port.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, c *domain.Contact) error {
	c.ID = uuid.New()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO contacts (id, name, email, phone, company, subject, message, service,
		status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Company, c.Subject, c.Message, c.Service,
		c.Status, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("contactRepo.Create: %w", err)
	}
	return nil
}

func (r *contactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	var c domain.Contact
	err := r.db.GetContext(ctx, &c, "SELECT * FROM contacts WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("contactRepo.GetByID: %w", err)
	}
	return &c, nil
}

func (r *contactRepo) List(ctx context.Context, status *domain.ContactStatus, offset, limit int) ([]domain.Contact, int, error) {
	where := "1=1"
	args := []interface{}{}
	if status != nil {
		where = "status = $1"
		args = append(args, *status)
	}

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM contacts WHERE "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("contactRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM contacts WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var contacts []domain.Contact
	if err := r.db.SelectContext(ctx, &contacts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("contactRepo.List: %w", err)
	}
	return contacts, total, nil
}

func (r *contactRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE contacts SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("contactRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("contactRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
