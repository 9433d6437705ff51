package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/service"
)

// PushHandler handles web-push subscription endpoints.
type PushHandler struct {
	pushService service.PushService
}

// NewPushHandler creates a new PushHandler.
func NewPushHandler(pushService service.PushService) *PushHandler {
	return &PushHandler{pushService: pushService}
}

// Subscribe handles POST /api/push/subscribe
// @Summary Register a push subscription
// @Description Upsert a browser push subscription keyed by endpoint
// @Tags push
// @Accept json
// @Produce json
// @Param request body service.SubscribeInput true "Subscription details"
// @Success 201 {object} Response{data=domain.PushSubscription} "Subscription stored"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 503 {object} ErrorResponseBody "Push not configured"
// @Security BearerAuth
// @Router /push/subscribe [post]
func (h *PushHandler) Subscribe(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "endpoint, p256dh, and auth are required")
		return
	}

	sub, err := h.pushService.Subscribe(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, sub)
}

// Unsubscribe handles DELETE /api/push/unsubscribe
// @Summary Remove a push subscription
// @Description Deactivate the subscription for the given endpoint
// @Tags push
// @Accept json
// @Produce json
// @Param request body service.UnsubscribeInput true "Endpoint to remove"
// @Success 200 {object} Response "Subscription removed"
// @Failure 404 {object} ErrorResponseBody "Subscription not found"
// @Security BearerAuth
// @Router /push/unsubscribe [delete]
func (h *PushHandler) Unsubscribe(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.UnsubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "endpoint is required")
		return
	}

	if err := h.pushService.Unsubscribe(c.Request.Context(), userID, input.Endpoint); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"unsubscribed": true})
}

// PublicKey handles GET /api/push/vapid-public-key
// @Summary VAPID public key
// @Description Public key browsers need to create a push subscription
// @Tags push
// @Produce json
// @Success 200 {object} Response "Public key"
// @Failure 503 {object} ErrorResponseBody "Push not configured"
// @Router /push/vapid-public-key [get]
func (h *PushHandler) PublicKey(c *gin.Context) {
	key, err := h.pushService.PublicKey()
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"public_key": key})
}
