package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"evisa_backend/internals/features/blog/posts/dto"
	"evisa_backend/internals/features/blog/posts/model"
	helper "evisa_backend/internals/helpers"
	osshelper "evisa_backend/internals/helpers/oss"
)

/* =========================================================
   Blog posts

   GET    /api/blogs
   GET    /api/blogs/:slug
   POST   /api/blogs            (multipart, optional feature image)
   PUT    /api/blogs/:slug
   DELETE /api/blogs/:slug      (soft delete)
   ========================================================= */

type BlogController struct {
	DB   *gorm.DB
	Blob osshelper.BlobService
}

func NewBlogController(db *gorm.DB, blob osshelper.BlobService) *BlogController {
	return &BlogController{DB: db, Blob: blob}
}

func (ctl *BlogController) findBySlug(c *fiber.Ctx) (*model.BlogModel, error) {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Blog not found")
	}
	var m model.BlogModel
	err := ctl.DB.WithContext(c.Context()).
		Where("lower(blog_slug) = ?", slug).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Blog not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load blog")
	}
	return &m, nil
}

func (ctl *BlogController) Index(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)
	q := strings.TrimSpace(c.Query("q"))

	tx := ctl.DB.WithContext(c.Context()).Model(&model.BlogModel{})
	if q != "" {
		kw := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(blog_title) LIKE ?", kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list blogs")
	}

	var rows []model.BlogModel
	if err := tx.
		Order("blog_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list blogs")
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

func (ctl *BlogController) Show(c *fiber.Ctx) error {
	m, err := ctl.findBySlug(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", m)
}

func (ctl *BlogController) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()

	if errs := dto.ValidateCreateBlog(req); len(errs) > 0 {
		return helper.JsonValidationErrorWithInput(c, errs, req)
	}

	slug, err := helper.EnsureUniqueSlug(ctl.DB, helper.Slugify(req.Title, 80), "blogs", "blog_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	m := model.BlogModel{
		BlogTitle:       req.Title,
		BlogSlug:        slug,
		BlogDescription: req.Description,
	}

	if fh, ferr := c.FormFile("feature_image"); ferr == nil && fh != nil {
		if msg := osshelper.CheckUpload(fh, osshelper.RuleEditorImage); msg != "" {
			return helper.JsonValidationErrorWithInput(c, map[string][]string{"feature_image": {msg}}, req)
		}
		url, key, uerr := ctl.Blob.UploadImageToDir(c.Context(), "blogs", fh)
		if uerr != nil {
			return helper.FromFiberError(c, uerr)
		}
		m.BlogFeatureImageURL = &url
		m.BlogFeatureImageObjectKey = &key
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if m.BlogFeatureImageURL != nil {
			_ = ctl.Blob.DeleteByPublicURL(c.Context(), *m.BlogFeatureImageURL)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create blog")
	}
	return helper.JsonCreated(c, "Blog created", m)
}

// Update patches the supplied fields; a retitle regenerates the slug. A new
// feature image is stored before the row update and the old one removed
// after, so a failure cannot orphan the post's image.
func (ctl *BlogController) Update(c *fiber.Ctx) error {
	m, err := ctl.findBySlug(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()

	if errs := dto.ValidateUpdateBlog(req); len(errs) > 0 {
		return helper.JsonValidationErrorWithInput(c, errs, req)
	}

	patch := req.ToPatch()

	if req.Title != nil && *req.Title != m.BlogTitle {
		slug, serr := helper.EnsureUniqueSlug(ctl.DB, helper.Slugify(*req.Title, 80), "blogs", "blog_slug")
		if serr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		patch["blog_slug"] = slug
	}

	var newImageURL, oldImageURL string
	if fh, ferr := c.FormFile("feature_image"); ferr == nil && fh != nil {
		if msg := osshelper.CheckUpload(fh, osshelper.RuleEditorImage); msg != "" {
			return helper.JsonValidationErrorWithInput(c, map[string][]string{"feature_image": {msg}}, req)
		}
		url, key, uerr := ctl.Blob.UploadImageToDir(c.Context(), "blogs", fh)
		if uerr != nil {
			return helper.FromFiberError(c, uerr)
		}
		newImageURL = url
		if m.BlogFeatureImageURL != nil {
			oldImageURL = *m.BlogFeatureImageURL
		}
		patch["blog_feature_image_url"] = url
		patch["blog_feature_image_object_key"] = key
	}

	if len(patch) == 0 {
		return helper.JsonUpdated(c, "Blog updated", m)
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&model.BlogModel{}).
		Where("blog_id = ?", m.BlogID).
		Updates(patch)
	if res.Error != nil {
		if newImageURL != "" {
			_ = ctl.Blob.DeleteByPublicURL(c.Context(), newImageURL)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update blog")
	}
	if oldImageURL != "" {
		_ = ctl.Blob.DeleteByPublicURL(c.Context(), oldImageURL)
	}

	var fresh model.BlogModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("blog_id = ?", m.BlogID).
		First(&fresh).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load blog")
	}
	return helper.JsonUpdated(c, "Blog updated", fresh)
}

// Delete soft-deletes the post and removes its feature image from storage.
func (ctl *BlogController) Delete(c *fiber.Ctx) error {
	m, err := ctl.findBySlug(c)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete blog")
	}
	if m.BlogFeatureImageURL != nil {
		_ = ctl.Blob.DeleteByPublicURL(c.Context(), *m.BlogFeatureImageURL)
	}
	return helper.JsonDeleted(c, "Blog deleted", fiber.Map{"blog_id": m.BlogID})
}
