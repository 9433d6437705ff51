package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
	"agencyhub/internal/service"
	"agencyhub/mocks"
)

func newInvoiceService() (service.InvoiceService, *mocks.MockInvoiceRepo, *mocks.MockProjectRepo, *mocks.MockUserRepo, *mocks.MockEmailSender, *mocks.MockNotificationService) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	projectRepo := new(mocks.MockProjectRepo)
	userRepo := new(mocks.MockUserRepo)
	emailSender := new(mocks.MockEmailSender)
	notifSvc := new(mocks.MockNotificationService)
	svc := service.NewInvoiceService(invoiceRepo, projectRepo, userRepo, emailSender, notifSvc)
	return svc, invoiceRepo, projectRepo, userRepo, emailSender, notifSvc
}

func TestInvoiceService_Create_Success(t *testing.T) {
	svc, invoiceRepo, projectRepo, userRepo, emailSender, notifSvc := newInvoiceService()

	adminID := uuid.New()
	clientID := uuid.New()
	project := &domain.Project{ID: uuid.New(), ClientID: clientID, Name: "Website"}
	client := &domain.User{ID: clientID, Email: "client@test.com", FullName: "Client One", Role: domain.RoleClient}
	taxRate := decimal.NewFromInt(16)

	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	invoiceRepo.On("Count", mock.Anything).Return(4, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	userRepo.On("GetByID", mock.Anything, clientID).Return(client, nil)
	emailSender.On("SendInvoiceCreated", mock.Anything, client.Email, client.FullName, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	emailSender.On("SendInvoiceCreatedAdmin", mock.Anything, mock.AnythingOfType("*domain.Invoice"), client.FullName).Return(nil)
	notifSvc.On("Notify", mock.Anything, clientID, &adminID, mock.AnythingOfType("service.NotificationPayload")).Return(&domain.Notification{}, nil)

	inv, err := svc.Create(context.Background(), adminID, service.CreateInvoiceInput{
		ProjectID:   project.ID,
		Amount:      decimal.NewFromInt(1000),
		DueDate:     time.Now().Add(30 * 24 * time.Hour),
		Description: "Phase one",
		TaxRate:     &taxRate,
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-0005", inv.InvoiceNumber)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, clientID, inv.ClientID)
	assert.Len(t, inv.Items, 1)
	assert.Equal(t, "1000.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "160.00", inv.TaxAmount.StringFixed(2))
	assert.Equal(t, "1160.00", inv.Total.StringFixed(2))
	invoiceRepo.AssertExpectations(t)
	emailSender.AssertExpectations(t)
	notifSvc.AssertExpectations(t)
}

func TestInvoiceService_Create_ProjectNotFound(t *testing.T) {
	svc, _, projectRepo, _, _, _ := newInvoiceService()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(nil, domain.ErrNotFound)

	inv, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
		ProjectID: projectID,
		Amount:    decimal.NewFromInt(100),
		DueDate:   time.Now(),
	})

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceService_Create_EmailFailureDoesNotFailCreate(t *testing.T) {
	svc, invoiceRepo, projectRepo, userRepo, emailSender, notifSvc := newInvoiceService()

	clientID := uuid.New()
	project := &domain.Project{ID: uuid.New(), ClientID: clientID}
	client := &domain.User{ID: clientID, Email: "client@test.com", FullName: "Client"}

	projectRepo.On("GetByID", mock.Anything, project.ID).Return(project, nil)
	invoiceRepo.On("Count", mock.Anything).Return(0, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	userRepo.On("GetByID", mock.Anything, clientID).Return(client, nil)
	emailSender.On("SendInvoiceCreated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	emailSender.On("SendInvoiceCreatedAdmin", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	notifSvc.On("Notify", mock.Anything, clientID, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	inv, err := svc.Create(context.Background(), uuid.New(), service.CreateInvoiceInput{
		ProjectID: project.ID,
		Amount:    decimal.NewFromInt(100),
		DueDate:   time.Now(),
	})

	assert.NoError(t, err)
	assert.NotNil(t, inv)
}

func TestInvoiceService_GetByID_ClientCannotReadOthers(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	inv := &domain.Invoice{ID: uuid.New(), ClientID: uuid.New()}
	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	got, err := svc.GetByID(context.Background(), inv.ID, uuid.New(), domain.RoleClient)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInvoiceService_GetByID_AdminReadsAny(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	inv := &domain.Invoice{ID: uuid.New(), ClientID: uuid.New()}
	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	got, err := svc.GetByID(context.Background(), inv.ID, uuid.New(), domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, inv, got)
}

func TestInvoiceService_UpdateStatus_PaidStampsPaymentDate(t *testing.T) {
	svc, invoiceRepo, _, userRepo, emailSender, notifSvc := newInvoiceService()

	clientID := uuid.New()
	inv := &domain.Invoice{ID: uuid.New(), ClientID: clientID, Status: domain.InvoiceStatusSent, InvoiceNumber: "INV-0007"}
	client := &domain.User{ID: clientID, Email: "client@test.com", FullName: "Client"}

	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	userRepo.On("GetByID", mock.Anything, clientID).Return(client, nil)
	emailSender.On("SendPaymentConfirmed", mock.Anything, client.Email, client.FullName, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	emailSender.On("SendStatusChangedAdmin", mock.Anything, mock.AnythingOfType("*domain.Invoice"), client.FullName).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), inv.ID, service.UpdateInvoiceStatusInput{
		Status:        domain.InvoiceStatusPaid,
		PaymentMethod: "bank_transfer",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, updated.Status)
	assert.NotNil(t, updated.PaymentDate)
	assert.Equal(t, "bank_transfer", updated.PaymentMethod)
	emailSender.AssertExpectations(t)
	notifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_UpdateStatus_SentSendsPaymentRequired(t *testing.T) {
	svc, invoiceRepo, _, userRepo, emailSender, _ := newInvoiceService()

	clientID := uuid.New()
	inv := &domain.Invoice{ID: uuid.New(), ClientID: clientID, Status: domain.InvoiceStatusDraft}
	client := &domain.User{ID: clientID, Email: "client@test.com", FullName: "Client"}

	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	userRepo.On("GetByID", mock.Anything, clientID).Return(client, nil)
	emailSender.On("SendPaymentRequired", mock.Anything, client.Email, client.FullName, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	emailSender.On("SendStatusChangedAdmin", mock.Anything, mock.AnythingOfType("*domain.Invoice"), client.FullName).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), inv.ID, service.UpdateInvoiceStatusInput{
		Status: domain.InvoiceStatusSent,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusSent, updated.Status)
	assert.Nil(t, updated.PaymentDate)
	emailSender.AssertExpectations(t)
}

func TestInvoiceService_UpdateStatus_CancelledSendsNoEmail(t *testing.T) {
	svc, invoiceRepo, _, userRepo, emailSender, _ := newInvoiceService()

	clientID := uuid.New()
	inv := &domain.Invoice{ID: uuid.New(), ClientID: clientID, Status: domain.InvoiceStatusSent}
	client := &domain.User{ID: clientID, Email: "client@test.com"}

	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	userRepo.On("GetByID", mock.Anything, clientID).Return(client, nil)

	_, err := svc.UpdateStatus(context.Background(), inv.ID, service.UpdateInvoiceStatusInput{
		Status: domain.InvoiceStatusCancelled,
	})

	assert.NoError(t, err)
	emailSender.AssertNotCalled(t, "SendPaymentRequired", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	emailSender.AssertNotCalled(t, "SendPaymentConfirmed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	emailSender.AssertNotCalled(t, "SendStatusChangedAdmin", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _, _, _ := newInvoiceService()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), service.UpdateInvoiceStatusInput{
		Status: "shipped",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestInvoiceService_ReportPayment_Success(t *testing.T) {
	svc, invoiceRepo, _, userRepo, emailSender, notifSvc := newInvoiceService()

	clientID := uuid.New()
	inv := &domain.Invoice{ID: uuid.New(), ClientID: clientID, Status: domain.InvoiceStatusSent, InvoiceNumber: "INV-0003", Total: decimal.NewFromInt(500)}
	client := &domain.User{ID: clientID, FullName: "Client One"}

	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	userRepo.On("GetByID", mock.Anything, clientID).Return(client, nil)
	emailSender.On("SendPaymentReported", mock.Anything, inv, client.FullName, "bank_transfer", "TX-99").Return(nil)
	notifSvc.On("SendCallback", mock.Anything, mock.AnythingOfType("service.NotificationPayload")).Return(1, nil)

	err := svc.ReportPayment(context.Background(), inv.ID, clientID, service.ReportPaymentInput{
		Method:        "bank_transfer",
		TransactionID: "TX-99",
	})

	assert.NoError(t, err)
	// reporting never changes the invoice itself
	invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	emailSender.AssertExpectations(t)
	notifSvc.AssertExpectations(t)
}

func TestInvoiceService_ReportPayment_NotOwner(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	inv := &domain.Invoice{ID: uuid.New(), ClientID: uuid.New(), Status: domain.InvoiceStatusSent}
	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	err := svc.ReportPayment(context.Background(), inv.ID, uuid.New(), service.ReportPaymentInput{})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestInvoiceService_ReportPayment_DraftNotReportable(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	clientID := uuid.New()
	inv := &domain.Invoice{ID: uuid.New(), ClientID: clientID, Status: domain.InvoiceStatusDraft}
	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)

	err := svc.ReportPayment(context.Background(), inv.ID, clientID, service.ReportPaymentInput{})

	assert.ErrorIs(t, err, domain.ErrPaymentNotReportable)
}

func TestInvoiceService_ReportPayment_OverdueIsReportable(t *testing.T) {
	svc, invoiceRepo, _, userRepo, emailSender, notifSvc := newInvoiceService()

	clientID := uuid.New()
	inv := &domain.Invoice{ID: uuid.New(), ClientID: clientID, Status: domain.InvoiceStatusOverdue, Total: decimal.NewFromInt(100)}
	client := &domain.User{ID: clientID, FullName: "Client"}

	invoiceRepo.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	userRepo.On("GetByID", mock.Anything, clientID).Return(client, nil)
	emailSender.On("SendPaymentReported", mock.Anything, inv, client.FullName, "", "").Return(nil)
	notifSvc.On("SendCallback", mock.Anything, mock.Anything).Return(0, domain.ErrNoAdminRecipients)

	err := svc.ReportPayment(context.Background(), inv.ID, clientID, service.ReportPaymentInput{})

	assert.NoError(t, err)
}

func TestInvoiceService_Summary_ComputesOutstanding(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	rows := []domain.InvoiceStatusTotal{
		{Status: domain.InvoiceStatusPaid, Count: 3, Total: decimal.NewFromInt(3000)},
		{Status: domain.InvoiceStatusSent, Count: 2, Total: decimal.NewFromInt(1500)},
		{Status: domain.InvoiceStatusOverdue, Count: 1, Total: decimal.NewFromInt(500)},
	}
	invoiceRepo.On("TotalsByStatus", mock.Anything, (*uuid.UUID)(nil)).Return(rows, nil)

	summary, err := svc.Summary(context.Background(), uuid.New(), domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, 6, summary.TotalCount)
	assert.Equal(t, "5000.00", summary.TotalAmount.StringFixed(2))
	assert.Equal(t, "2000.00", summary.Outstanding.StringFixed(2))
}

func TestInvoiceService_Summary_ClientScoped(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	userID := uuid.New()
	invoiceRepo.On("TotalsByStatus", mock.Anything, &userID).Return([]domain.InvoiceStatusTotal{}, nil)

	_, err := svc.Summary(context.Background(), userID, domain.RoleClient)

	assert.NoError(t, err)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_List_RoleScoped(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	userID := uuid.New()
	invoiceRepo.On("ListByClient", mock.Anything, userID, 0, 20).Return([]domain.Invoice{}, 0, nil)

	_, _, err := svc.List(context.Background(), userID, domain.RoleClient, 0, 20)

	assert.NoError(t, err)
	invoiceRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_MarkOverdue(t *testing.T) {
	svc, invoiceRepo, _, _, _, _ := newInvoiceService()

	invoiceRepo.On("MarkOverdue", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil)

	n, err := svc.MarkOverdue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
