package route

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// unavailableBlobService keeps the app bootable without storage creds.
type unavailableBlobService struct{}

func (unavailableBlobService) UploadRawToDirWithKey(context.Context, string, *multipart.FileHeader) (string, string, string, error) {
	return "", "", "", fiber.NewError(fiber.StatusBadGateway, "Object storage is not configured")
}

func (unavailableBlobService) UploadImageToDir(context.Context, string, *multipart.FileHeader) (string, string, error) {
	return "", "", fiber.NewError(fiber.StatusBadGateway, "Object storage is not configured")
}

func (unavailableBlobService) DeleteByPublicURL(context.Context, string) error {
	return fiber.NewError(fiber.StatusBadGateway, "Object storage is not configured")
}
