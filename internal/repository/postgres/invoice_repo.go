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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	invoice.ID = uuid.New()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	query := `INSERT INTO invoices (id, invoice_number, client_id, project_id, description, amount,
		items, tax_rate, subtotal, tax_amount, total, status, issue_date, due_date,
		payment_date, payment_method, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err := r.db.ExecContext(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.ClientID, invoice.ProjectID,
		invoice.Description, invoice.Amount, invoice.Items, invoice.TaxRate,
		invoice.Subtotal, invoice.TaxAmount, invoice.Total, invoice.Status,
		invoice.IssueDate, invoice.DueDate, invoice.PaymentDate, invoice.PaymentMethod,
		invoice.Notes, invoice.CreatedBy, invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM invoices"); err != nil {
		return 0, fmt.Errorf("invoiceRepo.Count: %w", err)
	}
	return count, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices")
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY issue_date DESC, created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListByClient(ctx context.Context, clientID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM invoices WHERE client_id = $1", clientID)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByClient count: %w", err)
	}

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE client_id = $1 ORDER BY issue_date DESC, created_at DESC LIMIT $2 OFFSET $3",
		clientID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.ListByClient: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY invoice_number")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListAll: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *domain.Invoice) error {
	invoice.UpdatedAt = time.Now().UTC()
	query := `UPDATE invoices SET description = $1, amount = $2, items = $3, tax_rate = $4,
		subtotal = $5, tax_amount = $6, total = $7, status = $8, due_date = $9,
		payment_date = $10, payment_method = $11, notes = $12, updated_at = $13
		WHERE id = $14`
	result, err := r.db.ExecContext(ctx, query,
		invoice.Description, invoice.Amount, invoice.Items, invoice.TaxRate,
		invoice.Subtotal, invoice.TaxAmount, invoice.Total, invoice.Status,
		invoice.DueDate, invoice.PaymentDate, invoice.PaymentMethod, invoice.Notes,
		invoice.UpdatedAt, invoice.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) TotalsByStatus(ctx context.Context, clientID *uuid.UUID) ([]domain.InvoiceStatusTotal, error) {
	var totals []domain.InvoiceStatusTotal
	var err error
	if clientID != nil {
		err = r.db.SelectContext(ctx, &totals,
			`SELECT status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total
			 FROM invoices WHERE client_id = $1 GROUP BY status`, *clientID)
	} else {
		err = r.db.SelectContext(ctx, &totals,
			`SELECT status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total
			 FROM invoices GROUP BY status`)
	}
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.TotalsByStatus: %w", err)
	}
	return totals, nil
}

func (r *invoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = $1, updated_at = $2 WHERE status = $3 AND due_date < $2`,
		domain.InvoiceStatusOverdue, asOf.UTC(), domain.InvoiceStatusSent)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.MarkOverdue: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}
