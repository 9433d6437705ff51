package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceCreated(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	args := m.Called(ctx, toEmail, toName, inv)
	return args.Error(0)
}

func (m *MockEmailSender) SendInvoiceCreatedAdmin(ctx context.Context, inv *domain.Invoice, clientName string) error {
	args := m.Called(ctx, inv, clientName)
	return args.Error(0)
}

func (m *MockEmailSender) SendPaymentRequired(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	args := m.Called(ctx, toEmail, toName, inv)
	return args.Error(0)
}

func (m *MockEmailSender) SendPaymentConfirmed(ctx context.Context, toEmail, toName string, inv *domain.Invoice) error {
	args := m.Called(ctx, toEmail, toName, inv)
	return args.Error(0)
}

func (m *MockEmailSender) SendStatusChangedAdmin(ctx context.Context, inv *domain.Invoice, clientName string) error {
	args := m.Called(ctx, inv, clientName)
	return args.Error(0)
}

func (m *MockEmailSender) SendPaymentReported(ctx context.Context, inv *domain.Invoice, clientName, method, transactionID string) error {
	args := m.Called(ctx, inv, clientName, method, transactionID)
	return args.Error(0)
}

func (m *MockEmailSender) SendNotificationEmail(ctx context.Context, toEmail, toName, title, message string) error {
	args := m.Called(ctx, toEmail, toName, title, message)
	return args.Error(0)
}

func (m *MockEmailSender) SendContactReceived(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}
