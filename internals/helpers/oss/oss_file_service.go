// file: internals/helpers/oss/oss_file_service.go
package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService is the upload/delete facade controllers talk to, so that tests
can swap in a mock instead of a live bucket.

- UploadRawToDirWithKey: store bytes as-is (visa evidence files).
- UploadImageToDir: re-encode to WebP before storing (blog/editor images).
- DeleteByPublicURL: best-effort removal of a previously stored object.
*/

type BlobService interface {
	UploadRawToDirWithKey(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey, contentType string, err error)
	UploadImageToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Aliyun OSS backed implementation
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv builds an instance from ENV. prefix is optional
// (e.g. "uploads/").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadRawToDirWithKey(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	if fh == nil {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	key, ct, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to object storage failed")
	}
	return b.svc.PublicURL(key), key, ct, nil
}

func (b *OSSBlobService) UploadImageToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File not found")
	}
	key, err := b.svc.UploadAsWebP(ctx, dir, fh)
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "unsupported format") {
			return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		}
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to object storage failed")
	}
	return b.svc.PublicURL(key), key, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Empty URL")
	}
	if err := b.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Failed to delete object: %v", err))
	}
	return nil
}

// --------------------------------------------------
// Small helpers for controllers
// --------------------------------------------------

// IsMultipart reports whether the request is multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// --------------------------------------------------
// Mock for unit tests
// --------------------------------------------------

type MockBlobService struct {
	UploadRawToDirWithKeyFn func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error)
	UploadImageToDirFn      func(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error)
	DeleteByPublicURLFn     func(ctx context.Context, publicURL string) error
	Deleted                 []string
}

func (m *MockBlobService) UploadRawToDirWithKey(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	if m.UploadRawToDirWithKeyFn == nil {
		return "", "", "", errors.New("not implemented")
	}
	return m.UploadRawToDirWithKeyFn(ctx, dir, fh)
}

func (m *MockBlobService) UploadImageToDir(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if m.UploadImageToDirFn == nil {
		return "", "", errors.New("not implemented")
	}
	return m.UploadImageToDirFn(ctx, dir, fh)
}

func (m *MockBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	m.Deleted = append(m.Deleted, publicURL)
	if m.DeleteByPublicURLFn == nil {
		return nil
	}
	return m.DeleteByPublicURLFn(ctx, publicURL)
}
