package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
	"agencyhub/internal/handler"
	"agencyhub/mocks"
)

func TestInvoiceHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	adminID := uuid.New()
	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-0007",
		Amount:        decimal.NewFromInt(1000),
		Status:        domain.InvoiceStatusDraft,
	}
	mockSvc.On("Create", mock.Anything, adminID, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(inv, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/invoices", map[string]interface{}{
		"project_id": uuid.New().String(),
		"amount":     "1000.00",
		"due_date":   time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
	})
	setAuthContext(c, adminID, domain.RoleAdmin)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_Create_MissingFields(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	w, c := jsonRequest(t, http.MethodPost, "/api/invoices", map[string]interface{}{
		"amount": "1000.00",
	})
	setAuthContext(c, uuid.New(), domain.RoleAdmin)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestInvoiceHandler_GetByID_Forbidden(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, invoiceID, userID, domain.RoleClient).
		Return(nil, domain.ErrForbidden)

	w, c := jsonRequest(t, http.MethodGet, "/api/invoices/"+invoiceID.String(), nil)
	setAuthContext(c, userID, domain.RoleClient)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)
}

func TestInvoiceHandler_GetByID_InvalidID(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	w, c := jsonRequest(t, http.MethodGet, "/api/invoices/not-a-uuid", nil)
	setAuthContext(c, uuid.New(), domain.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "GetByID")
}

func TestInvoiceHandler_List_PaginationMeta(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	userID := uuid.New()
	invoices := []domain.Invoice{
		{ID: uuid.New(), InvoiceNumber: "INV-0001"},
		{ID: uuid.New(), InvoiceNumber: "INV-0002"},
	}
	mockSvc.On("List", mock.Anything, userID, domain.RoleAdmin, 10, 5).
		Return(invoices, 42, nil)

	w, c := jsonRequest(t, http.MethodGet, "/api/invoices?offset=10&limit=5", nil)
	setAuthContext(c, userID, domain.RoleAdmin)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 42, resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.Offset)
	assert.Equal(t, 5, resp.Meta.Limit)
}

func TestInvoiceHandler_List_ClampsLimit(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	userID := uuid.New()
	mockSvc.On("List", mock.Anything, userID, domain.RoleAdmin, 0, 20).
		Return([]domain.Invoice{}, 0, nil)

	w, c := jsonRequest(t, http.MethodGet, "/api/invoices?limit=500", nil)
	setAuthContext(c, userID, domain.RoleAdmin)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_UpdateStatus_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	invoiceID := uuid.New()
	inv := &domain.Invoice{ID: invoiceID, Status: domain.InvoiceStatusPaid}
	mockSvc.On("UpdateStatus", mock.Anything, invoiceID, mock.AnythingOfType("service.UpdateInvoiceStatusInput")).
		Return(inv, nil)

	w, c := jsonRequest(t, http.MethodPut, "/api/invoices/"+invoiceID.String()+"/status", map[string]string{
		"status":         "paid",
		"payment_method": "bank_transfer",
	})
	setAuthContext(c, uuid.New(), domain.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	invoiceID := uuid.New()
	mockSvc.On("UpdateStatus", mock.Anything, invoiceID, mock.AnythingOfType("service.UpdateInvoiceStatusInput")).
		Return(nil, domain.ErrInvalidStatus)

	w, c := jsonRequest(t, http.MethodPut, "/api/invoices/"+invoiceID.String()+"/status", map[string]string{
		"status": "shipped",
	})
	setAuthContext(c, uuid.New(), domain.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.UpdateStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_STATUS", resp.Error.Code)
}

func TestInvoiceHandler_ReportPayment_Success(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockSvc.On("ReportPayment", mock.Anything, invoiceID, userID, mock.AnythingOfType("service.ReportPaymentInput")).
		Return(nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/invoices/"+invoiceID.String()+"/report-payment", map[string]string{
		"method":         "upi",
		"transaction_id": "TXN-12345",
	})
	setAuthContext(c, userID, domain.RoleClient)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.ReportPayment(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_ReportPayment_NotReportable(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	userID := uuid.New()
	invoiceID := uuid.New()
	mockSvc.On("ReportPayment", mock.Anything, invoiceID, userID, mock.AnythingOfType("service.ReportPaymentInput")).
		Return(domain.ErrPaymentNotReportable)

	w, c := jsonRequest(t, http.MethodPost, "/api/invoices/"+invoiceID.String()+"/report-payment", map[string]string{
		"method": "upi",
	})
	setAuthContext(c, userID, domain.RoleClient)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.ReportPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PAYMENT_NOT_REPORTABLE", resp.Error.Code)
}

func TestInvoiceHandler_Delete_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	invoiceID := uuid.New()
	mockSvc.On("Delete", mock.Anything, invoiceID).Return(domain.ErrNotFound)

	w, c := jsonRequest(t, http.MethodDelete, "/api/invoices/"+invoiceID.String(), nil)
	setAuthContext(c, uuid.New(), domain.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: invoiceID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
