package route

import (
	"github.com/gofiber/fiber/v2"

	"evisa_backend/internals/features/uploads/images/controller"
	osshelper "evisa_backend/internals/helpers/oss"
	"evisa_backend/internals/middlewares"
)

func EditorImageRoutes(api fiber.Router, blob osshelper.BlobService) {
	ctl := controller.NewEditorImageController(blob)

	api.Post("/uploads/editor-images", middlewares.UploadRateLimiter(), ctl.Upload)
}
