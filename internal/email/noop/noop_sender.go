package noop

import (
	"context"
	"log"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// noopSender logs email sends instead of delivering them. Used in local
// development where SES is not configured.
type noopSender struct{}

// NewNoopSender creates an EmailSender that only logs.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (n *noopSender) SendInvoiceCreated(_ context.Context, toEmail, _ string, inv *domain.Invoice) error {
	log.Printf("NOOP EMAIL: invoice created %s to=%s total=%s", inv.InvoiceNumber, toEmail, inv.Total.StringFixed(2))
	return nil
}

func (n *noopSender) SendInvoiceCreatedAdmin(_ context.Context, inv *domain.Invoice, clientName string) error {
	log.Printf("NOOP EMAIL: invoice created (admin copy) %s client=%s", inv.InvoiceNumber, clientName)
	return nil
}

func (n *noopSender) SendPaymentRequired(_ context.Context, toEmail, _ string, inv *domain.Invoice) error {
	log.Printf("NOOP EMAIL: payment required %s to=%s due=%s", inv.InvoiceNumber, toEmail, inv.DueDate.Format("2006-01-02"))
	return nil
}

func (n *noopSender) SendPaymentConfirmed(_ context.Context, toEmail, _ string, inv *domain.Invoice) error {
	log.Printf("NOOP EMAIL: payment confirmed %s to=%s", inv.InvoiceNumber, toEmail)
	return nil
}

func (n *noopSender) SendStatusChangedAdmin(_ context.Context, inv *domain.Invoice, clientName string) error {
	log.Printf("NOOP EMAIL: status changed (admin copy) %s client=%s status=%s", inv.InvoiceNumber, clientName, inv.Status)
	return nil
}

func (n *noopSender) SendPaymentReported(_ context.Context, inv *domain.Invoice, clientName, method, _ string) error {
	log.Printf("NOOP EMAIL: payment reported %s client=%s method=%s", inv.InvoiceNumber, clientName, method)
	return nil
}

func (n *noopSender) SendNotificationEmail(_ context.Context, toEmail, _ string, title, _ string) error {
	log.Printf("NOOP EMAIL: notification to=%s title=%q", toEmail, title)
	return nil
}

func (n *noopSender) SendContactReceived(_ context.Context, contact *domain.Contact) error {
	log.Printf("NOOP EMAIL: contact received from=%s subject=%q", contact.Email, contact.Subject)
	return nil
}
