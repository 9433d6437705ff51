package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agencyhub/internal/service"
)

// MessageHandler handles dashboard messaging endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send handles POST /api/messages
// @Summary Send a message
// @Description Send a message; clients omitting a recipient address the admin team
// @Tags messages
// @Accept json
// @Produce json
// @Param request body service.SendMessageInput true "Message details"
// @Success 201 {object} Response{data=domain.Message} "Message sent"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Recipient not found"
// @Security BearerAuth
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "subject and content are required")
		return
	}

	msg, err := h.messageService.Send(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, msg)
}

// Reply handles POST /api/messages/:id/reply
// @Summary Reply to a message
// @Description Reply to a message; the original is marked replied
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Param request body service.ReplyInput true "Reply content"
// @Success 201 {object} Response{data=domain.Message} "Reply sent"
// @Failure 403 {object} ErrorResponseBody "Not a participant"
// @Failure 404 {object} ErrorResponseBody "Message not found"
// @Security BearerAuth
// @Router /messages/{id}/reply [post]
func (h *MessageHandler) Reply(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid message ID")
		return
	}

	var input service.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "content is required")
		return
	}

	reply, err := h.messageService.Reply(c.Request.Context(), messageID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, reply)
}

// GetByID handles GET /api/messages/:id
// @Summary Get message by ID
// @Description Participants only; admins may read any message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} Response{data=domain.Message} "Message"
// @Failure 403 {object} ErrorResponseBody "Not a participant"
// @Failure 404 {object} ErrorResponseBody "Message not found"
// @Security BearerAuth
// @Router /messages/{id} [get]
func (h *MessageHandler) GetByID(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid message ID")
		return
	}

	msg, err := h.messageService.GetByID(c.Request.Context(), messageID, userID, role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, msg)
}

// List handles GET /api/messages
// @Summary List messages
// @Description List messages the authenticated user sent or received
// @Tags messages
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Message,meta=PagMeta} "Messages"
// @Security BearerAuth
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	offset, limit := parsePagination(c)
	messages, total, err := h.messageService.ListForUser(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, messages, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// MarkRead handles PUT /api/messages/:id/read
// @Summary Mark a message read
// @Description Recipient only
// @Tags messages
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} Response "Marked read"
// @Failure 403 {object} ErrorResponseBody "Not the recipient"
// @Failure 404 {object} ErrorResponseBody "Message not found"
// @Security BearerAuth
// @Router /messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid message ID")
		return
	}

	if err := h.messageService.MarkRead(c.Request.Context(), messageID, userID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"read": true})
}

// Delete handles DELETE /api/messages/:id
// @Summary Delete a message
// @Description Participants delete their own; admins may delete any
// @Tags messages
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} Response "Deleted"
// @Failure 403 {object} ErrorResponseBody "Not a participant"
// @Failure 404 {object} ErrorResponseBody "Message not found"
// @Security BearerAuth
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	userID, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid message ID")
		return
	}

	if err := h.messageService.Delete(c.Request.Context(), messageID, userID, role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
