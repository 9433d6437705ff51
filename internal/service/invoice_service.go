package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
	"agencyhub/internal/xlsxexport"
)

// CreateInvoiceInput is the DTO for invoice creation.
type CreateInvoiceInput struct {
	ProjectID   uuid.UUID           `json:"project_id" binding:"required"`
	Amount      decimal.Decimal     `json:"amount" binding:"required"`
	DueDate     time.Time           `json:"due_date" binding:"required"`
	Description string              `json:"description"`
	Items       domain.InvoiceItems `json:"items"`
	TaxRate     *decimal.Decimal    `json:"tax_rate"`
	Notes       string              `json:"notes"`
	IssueDate   *time.Time          `json:"issue_date"`
}

// UpdateInvoiceStatusInput is the DTO for status transitions.
type UpdateInvoiceStatusInput struct {
	Status        domain.InvoiceStatus `json:"status" binding:"required"`
	PaymentMethod string               `json:"payment_method"`
}

// ReportPaymentInput is the DTO for a client-reported payment.
type ReportPaymentInput struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	Notes         string `json:"notes"`
}

// InvoiceSummary aggregates invoice counts and totals by status.
type InvoiceSummary struct {
	ByStatus    []domain.InvoiceStatusTotal `json:"by_status"`
	TotalCount  int                         `json:"total_count"`
	TotalAmount decimal.Decimal             `json:"total_amount"`
	Outstanding decimal.Decimal             `json:"outstanding"`
}

// InvoiceService defines invoice lifecycle operations.
type InvoiceService interface {
	Create(ctx context.Context, adminID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) (*domain.Invoice, error)
	List(ctx context.Context, userID uuid.UUID, role domain.UserRole, offset, limit int) ([]domain.Invoice, int, error)
	Summary(ctx context.Context, userID uuid.UUID, role domain.UserRole) (*InvoiceSummary, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateInvoiceStatusInput) (*domain.Invoice, error)
	ReportPayment(ctx context.Context, id, userID uuid.UUID, input ReportPaymentInput) error
	ExportXLSX(ctx context.Context, w io.Writer) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkOverdue(ctx context.Context) (int64, error)
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	projectRepo  port.ProjectRepository
	userRepo     port.UserRepository
	emailSender  port.EmailSender
	notifService NotificationService
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	projectRepo port.ProjectRepository,
	userRepo port.UserRepository,
	emailSender port.EmailSender,
	notifService NotificationService,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
		emailSender:  emailSender,
		notifService: notifService,
	}
}

// Create persists a new draft invoice for the project's client. The invoice
// number comes from the current invoice count; the count-then-insert sequence
// is not transactional, so concurrent creates can produce duplicate numbers.
// Email and notification side effects are each independently best-effort.
func (s *invoiceService) Create(ctx context.Context, adminID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error) {
	project, err := s.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	items := input.Items
	if len(items) == 0 {
		items = domain.DefaultInvoiceItems(input.Description, input.Amount)
	}
	taxRate := decimal.Zero
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}
	totals := domain.ComputeInvoiceTotals(items, taxRate)

	count, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice.Create: %w", err)
	}

	now := time.Now()
	issueDate := now
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}

	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: domain.FormatInvoiceNumber(count),
		ClientID:      project.ClientID,
		ProjectID:     project.ID,
		Description:   input.Description,
		Amount:        input.Amount,
		Items:         items,
		TaxRate:       taxRate,
		Subtotal:      totals.Subtotal,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Status:        domain.InvoiceStatusDraft,
		IssueDate:     issueDate,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
		CreatedBy:     adminID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	client, err := s.userRepo.GetByID(ctx, project.ClientID)
	if err != nil {
		log.Printf("WARNING: invoice %s side effects skipped, client lookup failed: %v", inv.InvoiceNumber, err)
		return inv, nil
	}

	if err := s.emailSender.SendInvoiceCreated(ctx, client.Email, client.FullName, inv); err != nil {
		log.Printf("WARNING: invoice created email to client failed: %v", err)
	}
	if err := s.emailSender.SendInvoiceCreatedAdmin(ctx, inv, client.FullName); err != nil {
		log.Printf("WARNING: invoice created email to admin failed: %v", err)
	}
	if _, err := s.notifService.Notify(ctx, client.ID, &adminID, NotificationPayload{
		Title:      fmt.Sprintf("New invoice %s", inv.InvoiceNumber),
		Message:    fmt.Sprintf("Invoice %s for %s is now available.", inv.InvoiceNumber, inv.Total.StringFixed(2)),
		Type:       domain.NotificationTypePayment,
		Priority:   domain.PriorityHigh,
		InvoiceID:  &inv.ID,
		ProjectID:  &project.ID,
		ActionURL:  fmt.Sprintf("/dashboard/invoices/%s", inv.ID),
		ActionText: "View invoice",
	}); err != nil {
		log.Printf("WARNING: invoice created notification failed: %v", err)
	}

	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && inv.ClientID != userID {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

func (s *invoiceService) List(ctx context.Context, userID uuid.UUID, role domain.UserRole, offset, limit int) ([]domain.Invoice, int, error) {
	if role == domain.RoleAdmin {
		return s.invoiceRepo.List(ctx, offset, limit)
	}
	return s.invoiceRepo.ListByClient(ctx, userID, offset, limit)
}

func (s *invoiceService) Summary(ctx context.Context, userID uuid.UUID, role domain.UserRole) (*InvoiceSummary, error) {
	var clientID *uuid.UUID
	if role != domain.RoleAdmin {
		clientID = &userID
	}
	rows, err := s.invoiceRepo.TotalsByStatus(ctx, clientID)
	if err != nil {
		return nil, err
	}

	summary := &InvoiceSummary{
		ByStatus:    rows,
		TotalAmount: decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, row := range rows {
		summary.TotalCount += row.Count
		summary.TotalAmount = summary.TotalAmount.Add(row.Total)
		if row.Status == domain.InvoiceStatusSent || row.Status == domain.InvoiceStatusOverdue {
			summary.Outstanding = summary.Outstanding.Add(row.Total)
		}
	}
	return summary, nil
}

// UpdateStatus applies an admin status change. Any status-to-status move is
// accepted; there is no transition guard. Moving to paid stamps the payment
// date. Sent and paid trigger client and admin emails; a status change never
// creates an in-app notification.
func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateInvoiceStatusInput) (*domain.Invoice, error) {
	if !domain.ValidInvoiceStatuses[input.Status] {
		return nil, domain.ErrInvalidStatus
	}

	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.Status = input.Status
	inv.UpdatedAt = time.Now()
	if input.Status == domain.InvoiceStatusPaid {
		now := time.Now()
		inv.PaymentDate = &now
		if input.PaymentMethod != "" {
			inv.PaymentMethod = input.PaymentMethod
		}
	}

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	client, err := s.userRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		log.Printf("WARNING: invoice %s status emails skipped, client lookup failed: %v", inv.InvoiceNumber, err)
		return inv, nil
	}

	switch input.Status {
	case domain.InvoiceStatusSent:
		if err := s.emailSender.SendPaymentRequired(ctx, client.Email, client.FullName, inv); err != nil {
			log.Printf("WARNING: payment required email failed: %v", err)
		}
		if err := s.emailSender.SendStatusChangedAdmin(ctx, inv, client.FullName); err != nil {
			log.Printf("WARNING: status changed admin email failed: %v", err)
		}
	case domain.InvoiceStatusPaid:
		if err := s.emailSender.SendPaymentConfirmed(ctx, client.Email, client.FullName, inv); err != nil {
			log.Printf("WARNING: payment confirmed email failed: %v", err)
		}
		if err := s.emailSender.SendStatusChangedAdmin(ctx, inv, client.FullName); err != nil {
			log.Printf("WARNING: status changed admin email failed: %v", err)
		}
	}

	return inv, nil
}

// ReportPayment records a client's claim of having paid. Only the invoice
// owner may report, and only on a sent or overdue invoice. The invoice status
// does not change; admins verify and mark it paid themselves.
func (s *invoiceService) ReportPayment(ctx context.Context, id, userID uuid.UUID, input ReportPaymentInput) error {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.ClientID != userID {
		return domain.ErrForbidden
	}
	if inv.Status != domain.InvoiceStatusSent && inv.Status != domain.InvoiceStatusOverdue {
		return domain.ErrPaymentNotReportable
	}

	client, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.emailSender.SendPaymentReported(ctx, inv, client.FullName, input.Method, input.TransactionID); err != nil {
		log.Printf("WARNING: payment reported email failed: %v", err)
	}

	if _, err := s.notifService.SendCallback(ctx, NotificationPayload{
		Title:     fmt.Sprintf("Payment reported on %s", inv.InvoiceNumber),
		Message:   fmt.Sprintf("%s reported a payment of %s on invoice %s. Verify and mark it paid.", client.FullName, inv.Total.StringFixed(2), inv.InvoiceNumber),
		Type:      domain.NotificationTypePayment,
		Priority:  domain.PriorityHigh,
		InvoiceID: &inv.ID,
		ActionURL: fmt.Sprintf("/admin/invoices/%s", inv.ID),
		Metadata: domain.Metadata{
			"method":         input.Method,
			"transaction_id": input.TransactionID,
			"notes":          input.Notes,
		},
	}); err != nil {
		log.Printf("WARNING: payment reported notification failed: %v", err)
	}

	return nil
}

// ExportXLSX writes a workbook of all invoices to w, ordered by invoice number.
func (s *invoiceService) ExportXLSX(ctx context.Context, w io.Writer) error {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	names := map[uuid.UUID]string{}
	projectNames := map[uuid.UUID]string{}
	rows := make([]xlsxexport.Row, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		clientName, ok := names[inv.ClientID]
		if !ok {
			if client, err := s.userRepo.GetByID(ctx, inv.ClientID); err == nil {
				clientName = client.FullName
			}
			names[inv.ClientID] = clientName
		}
		projectName, ok := projectNames[inv.ProjectID]
		if !ok {
			if project, err := s.projectRepo.GetByID(ctx, inv.ProjectID); err == nil {
				projectName = project.Name
			}
			projectNames[inv.ProjectID] = projectName
		}
		rows = append(rows, xlsxexport.Row{
			Invoice:     inv,
			ClientName:  clientName,
			ProjectName: projectName,
		})
	}

	return xlsxexport.Write(w, rows)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, id)
}

// MarkOverdue flips sent invoices past their due date to overdue. Run by the
// hourly sweep job.
func (s *invoiceService) MarkOverdue(ctx context.Context) (int64, error) {
	return s.invoiceRepo.MarkOverdue(ctx, time.Now())
}
