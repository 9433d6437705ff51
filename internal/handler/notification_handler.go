package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agencyhub/internal/service"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	notifService service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

// Send handles POST /api/notifications
// @Summary Send a notification
// @Description Send a notification to selected active clients (admin only)
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body service.SendInput true "Recipients and payload"
// @Success 201 {object} Response "Created count"
// @Failure 400 {object} ErrorResponseBody "Invalid recipients"
// @Security BearerAuth
// @Router /notifications [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.SendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "recipient_ids, title, and message are required")
		return
	}

	created, err := h.notifService.SendToRecipients(c.Request.Context(), userID, input.RecipientIDs, input.NotificationPayload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"created": created})
}

// Broadcast handles POST /api/notifications/broadcast
// @Summary Broadcast a notification
// @Description Send a notification to every active client (admin only)
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body service.NotificationPayload true "Payload"
// @Success 201 {object} Response "Created count"
// @Security BearerAuth
// @Router /notifications/broadcast [post]
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var payload service.NotificationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title and message are required")
		return
	}

	created, err := h.notifService.Broadcast(c.Request.Context(), userID, payload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"created": created})
}

// Callback handles POST /api/notifications/callback
// @Summary Request a callback
// @Description Public endpoint notifying all active admins of a callback request
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body service.NotificationPayload true "Payload"
// @Success 201 {object} Response "Created count"
// @Failure 400 {object} ErrorResponseBody "No active admin accounts"
// @Router /notifications/callback [post]
func (h *NotificationHandler) Callback(c *gin.Context) {
	var payload service.NotificationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title and message are required")
		return
	}

	created, err := h.notifService.SendCallback(c.Request.Context(), payload)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"created": created})
}

// List handles GET /api/notifications
// @Summary List notifications
// @Description List the authenticated user's notifications, newest first; expired rows are excluded
// @Tags notifications
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Notification,meta=PagMeta} "Notifications"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	unreadOnly := c.Query("unread_only") == "true"

	notifications, total, err := h.notifService.List(c.Request.Context(), userID, unreadOnly, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, notifications, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// UnreadCount handles GET /api/notifications/unread-count
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Success 200 {object} Response "Unread count"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	count, err := h.notifService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"unread": count})
}

// MarkRead handles PUT /api/notifications/:id/read
// @Summary Mark a notification read
// @Description Recipient-only; marking an already-read notification is a no-op
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} Response "Marked read"
// @Failure 403 {object} ErrorResponseBody "Not the recipient"
// @Failure 404 {object} ErrorResponseBody "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid notification ID")
		return
	}

	if err := h.notifService.MarkRead(c.Request.Context(), notifID, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"read": true})
}

// MarkAllRead handles PUT /api/notifications/read-all
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} Response "All marked read"
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	if err := h.notifService.MarkAllRead(c.Request.Context(), userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"read": true})
}

// Delete handles DELETE /api/notifications/:id
// @Summary Delete a notification
// @Description Recipients delete their own; admins may delete any
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} Response "Deleted"
// @Failure 403 {object} ErrorResponseBody "Not the recipient"
// @Failure 404 {object} ErrorResponseBody "Notification not found"
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	notifID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid notification ID")
		return
	}

	if err := h.notifService.Delete(c.Request.Context(), notifID, userID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
