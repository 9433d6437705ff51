package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"agencyhub/internal/config"
	"agencyhub/internal/domain"
	"agencyhub/internal/port"
	"agencyhub/internal/service"
	"agencyhub/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "us-east-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 10,
		PresignExpiry: 3600,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// pdfContent returns minimal valid PDF bytes.
func pdfContent() []byte {
	return []byte("%PDF-1.4 test content that is at least a few bytes long for detection purposes")
}

func TestUploadService_Upload_Success(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewUploadService(storage, &cfg)

	userID := uuid.New()
	file, header := createMultipartFile("invoice.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://test-bucket.s3.amazonaws.com/key"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "test-bucket", mock.AnythingOfType("string"), int64(3600)).
		Return("https://test-bucket.s3.amazonaws.com/key?sig=abc", nil)

	att, err := svc.Upload(context.Background(), service.UploadInput{
		UserID: userID,
		File:   file,
		Header: header,
	})

	assert.NoError(t, err)
	assert.Equal(t, "invoice.pdf", att.FileName)
	assert.Equal(t, "application/pdf", att.ContentType)
	assert.NotEmpty(t, att.URL)
	storage.AssertExpectations(t)
}

func TestUploadService_Upload_UnsupportedType(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewUploadService(storage, &cfg)

	// HTML sniffs as text/html, which is not on the allow list
	file, header := createMultipartFile("page.html", []byte("<html><body>hi</body></html>"), "text/html")
	defer file.Close()

	att, err := svc.Upload(context.Background(), service.UploadInput{
		UserID: uuid.New(),
		File:   file,
		Header: header,
	})

	assert.Nil(t, att)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadService_Upload_TooLarge(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	cfg.MaxFileSizeMB = 0
	svc := service.NewUploadService(storage, &cfg)

	file, header := createMultipartFile("big.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	att, err := svc.Upload(context.Background(), service.UploadInput{
		UserID: uuid.New(),
		File:   file,
		Header: header,
	})

	assert.Nil(t, att)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestUploadService_Upload_StorageFailure(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	svc := service.NewUploadService(storage, &cfg)

	file, header := createMultipartFile("invoice.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).Return(nil, assert.AnError)

	att, err := svc.Upload(context.Background(), service.UploadInput{
		UserID: uuid.New(),
		File:   file,
		Header: header,
	})

	assert.Nil(t, att)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}
