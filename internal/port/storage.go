package port

import (
	"context"
	"io"
)

// UploadInput describes an attachment object to store.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput reports where a stored attachment ended up.
type UploadOutput struct {
	Key      string
	Location string
	ETag     string
}

// ObjectStorage abstracts the attachment store. Downloads go through
// presigned URLs so attachment bytes never stream through the API server.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}
