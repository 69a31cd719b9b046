package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"evisa_backend/internals/features/visa/applications/dto"
	"evisa_backend/internals/features/visa/applications/model"
	"evisa_backend/internals/features/visa/applications/service"
	helper "evisa_backend/internals/helpers"
	osshelper "evisa_backend/internals/helpers/oss"
)

/* =========================================================
   Visa application wizard

   POST   /api/visa-applications                (step 1, create or resume)
   GET    /api/visa-applications                (admin listing)
   GET    /api/visa-applications/:code          (current state + next step)
   PUT    /api/visa-applications/:code/step-two
   PUT    /api/visa-applications/:code/step-three
   PUT    /api/visa-applications/:code/step-four (multipart, uploads)
   GET    /api/visa-applications/:code/preview
   POST   /api/visa-applications/:code/submit
   GET    /api/visa-applications/:code/events
   ========================================================= */

type VisaApplicationController struct {
	Store *service.ApplicationStore
	Blob  osshelper.BlobService
}

func NewVisaApplicationController(db *gorm.DB, blob osshelper.BlobService) *VisaApplicationController {
	return &VisaApplicationController{
		Store: &service.ApplicationStore{DB: db},
		Blob:  blob,
	}
}

// findOr404 resolves :code; on failure the response has already been written
// and the returned error should be passed straight up.
func (ctl *VisaApplicationController) findOr404(c *fiber.Ctx) (*model.VisaApplicationModel, error) {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if !service.ValidApplicationCode(code) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}
	app, err := ctl.Store.FindByCode(c.Context(), code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
	}
	return app, nil
}

// CreateOrResume handles step 1. When any application already exists for
// the passport number it is returned with its resolved resume point instead
// of creating a duplicate; a completed one routes straight to preview.
func (ctl *VisaApplicationController) CreateOrResume(c *fiber.Ctx) error {
	var req dto.StepOneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()

	if errs := dto.ValidateStepOne(req); len(errs) > 0 {
		return helper.JsonValidationErrorWithInput(c, errs, req)
	}

	existing, err := ctl.Store.FindByPassportNumber(c.Context(), req.PassportNumber)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing application")
	}
	if existing != nil {
		return helper.JsonOK(c, resumeMessage(existing), dto.StepResult{
			NextStep:    string(service.ResolveStep(existing)),
			Application: existing,
		})
	}

	app := req.ToModel()
	if err := ctl.Store.Create(c.Context(), &app); err != nil {
		if errors.Is(err, service.ErrCodeGeneration) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not allocate an application code")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create application")
	}

	ctl.Store.LogEvent(c.Context(), app.VisaApplicationCode, "step1", map[string]interface{}{
		"visa_application_passport_number": app.VisaApplicationPassportNumber,
		"visa_application_visa_type":       app.VisaApplicationVisaType,
		"visa_application_nationality":     app.VisaApplicationNationality,
	})

	return helper.JsonCreated(c, "Application created", dto.StepResult{
		NextStep:    string(service.TargetStepTwo),
		Application: &app,
	})
}

// Index lists applications for the back office, with status filter and
// code/passport search.
func (ctl *VisaApplicationController) Index(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	status := strings.TrimSpace(c.Query("status"))
	q := c.Query("q")

	rows, total, err := ctl.Store.List(c.Context(), p.Limit, p.Offset, status, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list applications")
	}
	return helper.JsonList(c, "OK", dto.ToApplicationListItems(rows),
		helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

// Show returns the record plus where the wizard should resume.
func (ctl *VisaApplicationController) Show(c *fiber.Ctx) error {
	app, err := ctl.findOr404(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.StepResult{
		NextStep:    string(service.ResolveStep(app)),
		Application: app,
	})
}

func (ctl *VisaApplicationController) UpdateStepTwo(c *fiber.Ctx) error {
	app, err := ctl.findOr404(c)
	if err != nil {
		return err
	}

	var req dto.StepTwoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()

	if errs := dto.ValidateStepTwo(req); len(errs) > 0 {
		return helper.JsonValidationErrorWithInput(c, errs, req)
	}

	patch := req.ToPatch()
	updated, err := ctl.Store.Patch(c.Context(), app.VisaApplicationCode, patch)
	if err != nil {
		return ctl.patchError(c, err)
	}
	ctl.Store.LogEvent(c.Context(), app.VisaApplicationCode, "step2", patch)

	return helper.JsonUpdated(c, "Step saved", dto.StepResult{
		NextStep:    string(service.TargetStepThree),
		Application: updated,
	})
}

func (ctl *VisaApplicationController) UpdateStepThree(c *fiber.Ctx) error {
	app, err := ctl.findOr404(c)
	if err != nil {
		return err
	}

	var req dto.StepThreeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()

	if errs := dto.ValidateStepThree(req); len(errs) > 0 {
		return helper.JsonValidationErrorWithInput(c, errs, req)
	}

	patch := req.ToPatch()
	updated, err := ctl.Store.Patch(c.Context(), app.VisaApplicationCode, patch)
	if err != nil {
		return ctl.patchError(c, err)
	}
	ctl.Store.LogEvent(c.Context(), app.VisaApplicationCode, "step3", patch)

	return helper.JsonUpdated(c, "Step saved", dto.StepResult{
		NextStep:    string(service.TargetStepFour),
		Application: updated,
	})
}

// UpdateStepFour takes multipart form data: the group-D text fields plus the
// reference photo and passport copy. Replacement is two-phase: the new
// object is uploaded and the row updated before the old object is removed,
// so a failed upload never loses the stored copy.
func (ctl *VisaApplicationController) UpdateStepFour(c *fiber.Ctx) error {
	app, err := ctl.findOr404(c)
	if err != nil {
		return err
	}
	if !osshelper.IsMultipart(c) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Expected multipart/form-data")
	}

	var req dto.StepFourRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()

	photoFh, _ := c.FormFile("reference_photo")
	passportFh, _ := c.FormFile("passport_copy")

	errs := dto.ValidateStepFour(req,
		fileMeta(photoFh), fileMeta(passportFh),
		app.VisaApplicationReferencePhotoURL == nil,
		app.VisaApplicationPassportCopyURL == nil,
	)
	if len(errs) > 0 {
		return helper.JsonValidationErrorWithInput(c, errs, req)
	}

	code := app.VisaApplicationCode
	patch := req.ToPatch()

	var newURLs []string
	var oldURLs []string

	// storage failures come back as field-level errors so the form can
	// re-render without a partial save
	if photoFh != nil {
		url, key, _, err := ctl.Blob.UploadRawToDirWithKey(c.Context(), "visa/"+code+"/photo", photoFh)
		if err != nil {
			return helper.JsonValidationErrorWithInput(c, map[string][]string{
				"reference_photo": {"Upload failed, please try again."},
			}, req)
		}
		newURLs = append(newURLs, url)
		if app.VisaApplicationReferencePhotoURL != nil {
			oldURLs = append(oldURLs, *app.VisaApplicationReferencePhotoURL)
		}
		patch["visa_application_reference_photo_url"] = url
		patch["visa_application_reference_photo_object_key"] = key
	}
	if passportFh != nil {
		url, key, _, err := ctl.Blob.UploadRawToDirWithKey(c.Context(), "visa/"+code+"/passport", passportFh)
		if err != nil {
			ctl.cleanupBlobs(c, newURLs)
			return helper.JsonValidationErrorWithInput(c, map[string][]string{
				"passport_copy": {"Upload failed, please try again."},
			}, req)
		}
		newURLs = append(newURLs, url)
		if app.VisaApplicationPassportCopyURL != nil {
			oldURLs = append(oldURLs, *app.VisaApplicationPassportCopyURL)
		}
		patch["visa_application_passport_copy_url"] = url
		patch["visa_application_passport_copy_object_key"] = key
	}

	updated, err := ctl.Store.Patch(c.Context(), code, patch)
	if err != nil {
		ctl.cleanupBlobs(c, newURLs)
		return ctl.patchError(c, err)
	}

	// row committed: the old objects are now unreferenced
	ctl.cleanupBlobs(c, oldURLs)
	ctl.Store.LogEvent(c.Context(), code, "step4", patch)

	return helper.JsonUpdated(c, "Step saved", dto.StepResult{
		NextStep:    string(service.TargetPreview),
		Application: updated,
	})
}

// Preview returns the full record for the review page; reachable at any
// point, the client renders what exists.
func (ctl *VisaApplicationController) Preview(c *fiber.Ctx) error {
	app, err := ctl.findOr404(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", dto.StepResult{
		NextStep:    string(service.ResolveStep(app)),
		Application: app,
	})
}

// Submit finalizes the application. All four steps must be done; a repeat
// submit is accepted and refreshes the submission timestamp.
func (ctl *VisaApplicationController) Submit(c *fiber.Ctx) error {
	app, err := ctl.findOr404(c)
	if err != nil {
		return err
	}
	if service.ResolveStep(app) != service.TargetPreview {
		return helper.JsonValidationError(c, map[string][]string{
			"application": {"All steps must be completed before submitting."},
		})
	}

	updated, err := ctl.Store.MarkCompleted(c.Context(), app.VisaApplicationCode)
	if err != nil {
		return ctl.patchError(c, err)
	}
	ctl.Store.LogEvent(c.Context(), app.VisaApplicationCode, "submit", map[string]interface{}{
		"visa_application_status": string(model.StatusCompleted),
	})

	return helper.JsonOK(c, "Application submitted", dto.StepResult{
		NextStep:    string(service.TargetPreview),
		Application: updated,
	})
}

// Events returns the audit trail, oldest first.
func (ctl *VisaApplicationController) Events(c *fiber.Ctx) error {
	app, err := ctl.findOr404(c)
	if err != nil {
		return err
	}
	rows, err := ctl.Store.Events(c.Context(), app.VisaApplicationCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "OK", rows)
}

// --------------------------------------------------

func resumeMessage(app *model.VisaApplicationModel) string {
	if app.VisaApplicationStatus == model.StatusCompleted {
		return "Application already completed"
	}
	return "Existing application found"
}

func (ctl *VisaApplicationController) patchError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save application")
}

func (ctl *VisaApplicationController) cleanupBlobs(c *fiber.Ctx, urls []string) {
	for _, u := range urls {
		_ = ctl.Blob.DeleteByPublicURL(c.Context(), u)
	}
}

func fileMeta(fh *multipart.FileHeader) *dto.FileMeta {
	if fh == nil {
		return nil
	}
	return &dto.FileMeta{Filename: fh.Filename, Size: fh.Size}
}
