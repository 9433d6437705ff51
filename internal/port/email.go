package port

import (
	"context"

	"agencyhub/internal/domain"
)

// EmailSender defines the contract for sending transactional emails.
// All sends are side effects: callers log failures and never fail the
// primary operation on an email error.
type EmailSender interface {
	// Invoice lifecycle emails.
	SendInvoiceCreated(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error
	SendInvoiceCreatedAdmin(ctx context.Context, inv *domain.Invoice, clientName string) error
	SendPaymentRequired(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error
	SendPaymentConfirmed(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error
	SendStatusChangedAdmin(ctx context.Context, inv *domain.Invoice, clientName string) error
	SendPaymentReported(ctx context.Context, inv *domain.Invoice, clientName, method, transactionID string) error

	// Notification fan-out email channel.
	SendNotificationEmail(ctx context.Context, toEmail, toName, title, message string) error

	// Marketing-site contact alert to the admin mailbox.
	SendContactReceived(ctx context.Context, contact *domain.Contact) error
}
