package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencyhub/internal/service"
)

// UploadHandler handles attachment upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /api/uploads
// @Summary Upload an attachment
// @Description Store a file in object storage and return an attachment descriptor with a presigned URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} Response{data=domain.Attachment} "Attachment stored"
// @Failure 400 {object} ErrorResponseBody "Unsupported file type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file form field is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "could not open uploaded file")
		return
	}
	defer file.Close()

	attachment, err := h.uploadService.Upload(c.Request.Context(), service.UploadInput{
		UserID: userID,
		File:   file,
		Header: fileHeader,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, attachment)
}
