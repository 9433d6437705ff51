package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agencyhub/internal/domain"
	"agencyhub/internal/service"
)

// ContactHandler handles marketing-site contact endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact
// @Summary Submit a contact request
// @Description Public, rate-limited endpoint for the marketing site contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body service.ContactInput true "Contact details"
// @Success 201 {object} Response{data=domain.Contact} "Request stored"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 429 {object} ErrorResponseBody "Rate limit exceeded"
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name, email, subject, and message are required")
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, contact)
}

// List handles GET /api/contacts
// @Summary List contact requests
// @Description List contact requests with optional status filter (admin only)
// @Tags contact
// @Produce json
// @Param status query string false "Filter by status (new, in_review, contacted, closed)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Contact,meta=PagMeta} "Contact requests"
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var status *domain.ContactStatus
	if s := c.Query("status"); s != "" {
		cs := domain.ContactStatus(s)
		if !domain.ValidContactStatuses[cs] {
			RespondError(c, http.StatusBadRequest, "INVALID_STATUS", "invalid contact status filter")
			return
		}
		status = &cs
	}

	contacts, total, err := h.contactService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, contacts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// UpdateStatus handles PUT /api/contacts/:id/status
// @Summary Update contact status
// @Description Move a contact request through triage (admin only)
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param request body UpdateContactStatusRequest true "New status"
// @Success 200 {object} Response "Status updated"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Failure 404 {object} ErrorResponseBody "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid contact ID")
		return
	}

	var req UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status is required")
		return
	}

	if err := h.contactService.UpdateStatus(c.Request.Context(), contactID, req.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"updated": true})
}

// Delete handles DELETE /api/contacts/:id
// @Summary Delete a contact request
// @Description Permanently delete a contact request (admin only)
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} Response "Deleted"
// @Failure 404 {object} ErrorResponseBody "Contact not found"
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid contact ID")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), contactID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
