package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evisa_backend/internals/features/visa/applications/model"
	"evisa_backend/internals/features/visa/applications/service"
	osshelper "evisa_backend/internals/helpers/oss"
)

// Malformed codes must 404 before any lookup happens; the store is nil here
// so a DB touch would panic the test.
func TestShow_MalformedCodeIs404(t *testing.T) {
	ctl := &VisaApplicationController{
		Store: &service.ApplicationStore{},
		Blob:  &osshelper.MockBlobService{},
	}
	app := fiber.New()
	app.Get("/api/visa-applications/:code", ctl.Show)

	for _, code := range []string{
		"bad-code",
		"visa20260831k7q2m0xz",
		"VISA2026",
		"VISA20260831K7Q2M0XZEXTRA",
	} {
		t.Run(code, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/visa-applications/"+code, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

// Any passport-number match resumes, completed applications included: a
// completed record routes to preview with its own message, never to a
// second insert.
func TestResumeOnPassportMatch(t *testing.T) {
	t.Run("in-progress record resumes where it left off", func(t *testing.T) {
		app := &model.VisaApplicationModel{
			VisaApplicationStatus:   model.StatusInProgress,
			VisaApplicationProgress: model.ProgressStep2Done,
		}
		assert.Equal(t, "Existing application found", resumeMessage(app))
		assert.Equal(t, service.TargetStepThree, service.ResolveStep(app))
	})

	t.Run("completed record routes to preview", func(t *testing.T) {
		app := &model.VisaApplicationModel{
			VisaApplicationStatus:   model.StatusCompleted,
			VisaApplicationProgress: model.ProgressStep4Done,
		}
		assert.Equal(t, "Application already completed", resumeMessage(app))
		assert.Equal(t, service.TargetPreview, service.ResolveStep(app))
	})
}
