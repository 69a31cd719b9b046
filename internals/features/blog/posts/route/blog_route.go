package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"evisa_backend/internals/features/blog/posts/controller"
	osshelper "evisa_backend/internals/helpers/oss"
	"evisa_backend/internals/middlewares"
)

func BlogRoutes(api fiber.Router, db *gorm.DB, blob osshelper.BlobService) {
	ctl := controller.NewBlogController(db, blob)

	blogs := api.Group("/blogs")
	blogs.Get("/", ctl.Index)
	blogs.Get("/:slug", ctl.Show)
	blogs.Post("/", middlewares.UploadRateLimiter(), ctl.Create)
	blogs.Put("/:slug", middlewares.UploadRateLimiter(), ctl.Update)
	blogs.Delete("/:slug", ctl.Delete)
}
