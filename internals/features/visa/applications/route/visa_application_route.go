package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"evisa_backend/internals/features/visa/applications/controller"
	osshelper "evisa_backend/internals/helpers/oss"
	"evisa_backend/internals/middlewares"
)

// VisaApplicationRoutes mounts the wizard under /visa-applications. The
// :code params are format-checked in the controller, not the router.
func VisaApplicationRoutes(api fiber.Router, db *gorm.DB, blob osshelper.BlobService) {
	ctl := controller.NewVisaApplicationController(db, blob)

	apps := api.Group("/visa-applications")

	apps.Post("/", middlewares.CreateApplicationRateLimiter(), ctl.CreateOrResume)
	apps.Get("/", ctl.Index)

	apps.Get("/:code", ctl.Show)

	// fetch-for-edit pages share the detail payload
	apps.Get("/:code/step-two", ctl.Show)
	apps.Get("/:code/step-three", ctl.Show)
	apps.Get("/:code/step-four", ctl.Show)

	apps.Put("/:code/step-two", ctl.UpdateStepTwo)
	apps.Put("/:code/step-three", ctl.UpdateStepThree)
	apps.Put("/:code/step-four", middlewares.UploadRateLimiter(), ctl.UpdateStepFour)
	apps.Get("/:code/preview", ctl.Preview)
	apps.Post("/:code/submit", ctl.Submit)
	apps.Get("/:code/events", ctl.Events)
}
