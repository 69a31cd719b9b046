package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	BlogRoute "evisa_backend/internals/features/blog/posts/route"
	UploadRoute "evisa_backend/internals/features/uploads/images/route"
	VisaRoute "evisa_backend/internals/features/visa/applications/route"
	osshelper "evisa_backend/internals/helpers/oss"
)

// SetupRoutes mounts everything under /api. Object storage is optional in
// local dev: when the ALI_OSS_* envs are absent the upload-backed routes
// still mount, but uploads fail with a 502 at request time.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	blob := newBlobService()

	BaseRoutes(app, db)

	api := app.Group("/api")
	VisaRoute.VisaApplicationRoutes(api, db, blob)
	BlogRoute.BlogRoutes(api, db, blob)
	UploadRoute.EditorImageRoutes(api, blob)
}

func newBlobService() osshelper.BlobService {
	blob, err := osshelper.NewOSSBlobServiceFromEnv("uploads/")
	if err != nil {
		log.Printf("[WARN] object storage unavailable: %v", err)
		return unavailableBlobService{}
	}
	return blob
}
