package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "evisa_backend/internals/helpers"
	osshelper "evisa_backend/internals/helpers/oss"
)

// EditorImageController serves the rich-text editor's inline image uploads.
// Images are re-encoded to WebP before storage; the editor only needs the
// public URL back.
type EditorImageController struct {
	Blob osshelper.BlobService
}

func NewEditorImageController(blob osshelper.BlobService) *EditorImageController {
	return &EditorImageController{Blob: blob}
}

func (ctl *EditorImageController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return helper.JsonValidationError(c, map[string][]string{
			"image": {"This file is required."},
		})
	}
	if msg := osshelper.CheckUpload(fh, osshelper.RuleEditorImage); msg != "" {
		return helper.JsonValidationError(c, map[string][]string{"image": {msg}})
	}

	url, _, uerr := ctl.Blob.UploadImageToDir(c.Context(), "editor", fh)
	if uerr != nil {
		return helper.FromFiberError(c, uerr)
	}
	return helper.JsonCreated(c, "Image uploaded", fiber.Map{"url": url})
}
