package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agencyhub/internal/domain"
	"agencyhub/internal/service"
)

// FeedbackHandler handles feedback and testimonial endpoints.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Submit handles POST /api/feedback
// @Summary Submit feedback
// @Description Client submits a rating and comment, optionally tied to a project
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body service.FeedbackInput true "Feedback details"
// @Success 201 {object} Response{data=domain.Feedback} "Feedback stored"
// @Failure 400 {object} ErrorResponseBody "Invalid rating"
// @Failure 403 {object} ErrorResponseBody "Not the project owner"
// @Security BearerAuth
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "rating (1-5) and comment are required")
		return
	}

	fb, err := h.feedbackService.Submit(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, fb)
}

// List handles GET /api/feedback
// @Summary List feedback
// @Description List feedback with optional status filter (admin only)
// @Tags feedback
// @Produce json
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Feedback,meta=PagMeta} "Feedback entries"
// @Security BearerAuth
// @Router /feedback [get]
func (h *FeedbackHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var status *domain.FeedbackStatus
	if s := c.Query("status"); s != "" {
		fs := domain.FeedbackStatus(s)
		if !domain.ValidFeedbackStatuses[fs] {
			RespondError(c, http.StatusBadRequest, "INVALID_STATUS", "invalid feedback status filter")
			return
		}
		status = &fs
	}

	entries, total, err := h.feedbackService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Moderate handles PUT /api/feedback/:id
// @Summary Moderate feedback
// @Description Approve, reject, publish, or respond to feedback (admin only)
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Param request body service.ModerateFeedbackInput true "Moderation changes"
// @Success 200 {object} Response{data=domain.Feedback} "Updated feedback"
// @Failure 400 {object} ErrorResponseBody "Invalid status"
// @Failure 404 {object} ErrorResponseBody "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [put]
func (h *FeedbackHandler) Moderate(c *gin.Context) {
	feedbackID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid feedback ID")
		return
	}

	var input service.ModerateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	fb, err := h.feedbackService.Moderate(c.Request.Context(), feedbackID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, fb)
}

// Testimonials handles GET /api/feedback/testimonials
// @Summary Public testimonials
// @Description Approved, public feedback for the marketing site
// @Tags feedback
// @Produce json
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {object} Response{data=[]domain.Feedback} "Testimonials"
// @Router /feedback/testimonials [get]
func (h *FeedbackHandler) Testimonials(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	entries, err := h.feedbackService.Testimonials(c.Request.Context(), limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}
