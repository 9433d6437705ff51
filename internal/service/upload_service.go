package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"agencyhub/internal/config"
	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// UploadInput is the DTO for attachment upload requests.
type UploadInput struct {
	UserID uuid.UUID
	File   multipart.File
	Header *multipart.FileHeader
}

// UploadService stores message attachments in object storage.
type UploadService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Attachment, error)
}

type uploadService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(storage port.ObjectStorage, cfg *config.S3Config) UploadService {
	return &uploadService{
		storage: storage,
		cfg:     cfg,
	}
}

// Upload validates the file by size and sniffed content type, stores it under
// a per-user key, and returns an attachment with a presigned download URL.
func (s *uploadService) Upload(ctx context.Context, input UploadInput) (*domain.Attachment, error) {
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the content type from the first 512 bytes rather than trusting
	// the client-supplied header.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(buf[:n])
	if _, ok := domain.AllowedAttachmentTypes[contentType]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	key := fmt.Sprintf("uploads/%s/%s/%s", input.UserID, uuid.New(), input.Header.Filename)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	}); err != nil {
		log.Printf("WARNING: attachment upload to S3 failed: %v", err)
		return nil, domain.ErrUploadFailed
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning attachment URL: %w", err)
	}

	return &domain.Attachment{
		FileName:    input.Header.Filename,
		URL:         url,
		ContentType: contentType,
		Size:        input.Header.Size,
	}, nil
}
