package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/domain"
	"agencyhub/internal/handler"
	"agencyhub/mocks"
)

func TestNotificationHandler_Send_Success(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	adminID := uuid.New()
	recipient := uuid.New()
	mockSvc.On("SendToRecipients", mock.Anything, adminID, []uuid.UUID{recipient},
		mock.AnythingOfType("service.NotificationPayload")).Return(1, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/notifications", map[string]interface{}{
		"recipient_ids": []string{recipient.String()},
		"title":         "Maintenance window",
		"message":       "The portal will be down on Saturday.",
	})
	setAuthContext(c, adminID, domain.RoleAdmin)

	h.Send(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(1), data["created"])
	mockSvc.AssertExpectations(t)
}

func TestNotificationHandler_Send_MissingRecipients(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	w, c := jsonRequest(t, http.MethodPost, "/api/notifications", map[string]interface{}{
		"title":   "No recipients",
		"message": "This should fail validation.",
	})
	setAuthContext(c, uuid.New(), domain.RoleAdmin)

	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "SendToRecipients")
}

func TestNotificationHandler_Broadcast_Success(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	adminID := uuid.New()
	mockSvc.On("Broadcast", mock.Anything, adminID, mock.AnythingOfType("service.NotificationPayload")).
		Return(7, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/notifications/broadcast", map[string]string{
		"title":   "New feature",
		"message": "Check out the new invoice export.",
	})
	setAuthContext(c, adminID, domain.RoleAdmin)

	h.Broadcast(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(7), data["created"])
}

func TestNotificationHandler_Callback_NoAdmins(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	mockSvc.On("SendCallback", mock.Anything, mock.AnythingOfType("service.NotificationPayload")).
		Return(0, domain.ErrNoAdminRecipients)

	w, c := jsonRequest(t, http.MethodPost, "/api/notifications/callback", map[string]string{
		"title":   "Callback request",
		"message": "Please call me back at +1 555 0100.",
	})

	h.Callback(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "NO_ADMIN_RECIPIENTS", resp.Error.Code)
}

func TestNotificationHandler_Callback_Success(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	mockSvc.On("SendCallback", mock.Anything, mock.AnythingOfType("service.NotificationPayload")).
		Return(2, nil)

	w, c := jsonRequest(t, http.MethodPost, "/api/notifications/callback", map[string]string{
		"title":   "Callback request",
		"message": "Please call me back.",
	})

	h.Callback(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNotificationHandler_List_UnreadOnly(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	userID := uuid.New()
	notifications := []domain.Notification{{ID: uuid.New(), Title: "Unread one"}}
	mockSvc.On("List", mock.Anything, userID, true, 0, 20).Return(notifications, 1, nil)

	w, c := jsonRequest(t, http.MethodGet, "/api/notifications?unread_only=true", nil)
	setAuthContext(c, userID, domain.RoleClient)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
	mockSvc.AssertExpectations(t)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	userID := uuid.New()
	mockSvc.On("UnreadCount", mock.Anything, userID).Return(3, nil)

	w, c := jsonRequest(t, http.MethodGet, "/api/notifications/unread-count", nil)
	setAuthContext(c, userID, domain.RoleClient)

	h.UnreadCount(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["unread"])
}

func TestNotificationHandler_MarkRead_NotRecipient(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	userID := uuid.New()
	notifID := uuid.New()
	mockSvc.On("MarkRead", mock.Anything, notifID, userID).Return(domain.ErrForbidden)

	w, c := jsonRequest(t, http.MethodPut, "/api/notifications/"+notifID.String()+"/read", nil)
	setAuthContext(c, userID, domain.RoleClient)
	c.Params = gin.Params{{Key: "id", Value: notifID.String()}}

	h.MarkRead(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNotificationHandler_MarkRead_Success(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	userID := uuid.New()
	notifID := uuid.New()
	mockSvc.On("MarkRead", mock.Anything, notifID, userID).Return(nil)

	w, c := jsonRequest(t, http.MethodPut, "/api/notifications/"+notifID.String()+"/read", nil)
	setAuthContext(c, userID, domain.RoleClient)
	c.Params = gin.Params{{Key: "id", Value: notifID.String()}}

	h.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestNotificationHandler_Delete_AdminDeletesAny(t *testing.T) {
	mockSvc := new(mocks.MockNotificationService)
	h := handler.NewNotificationHandler(mockSvc)

	adminID := uuid.New()
	notifID := uuid.New()
	mockSvc.On("Delete", mock.Anything, notifID, adminID, domain.RoleAdmin).Return(nil)

	w, c := jsonRequest(t, http.MethodDelete, "/api/notifications/"+notifID.String(), nil)
	setAuthContext(c, adminID, domain.RoleAdmin)
	c.Params = gin.Params{{Key: "id", Value: notifID.String()}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
