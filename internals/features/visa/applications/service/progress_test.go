package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evisa_backend/internals/features/visa/applications/model"
)

func sp(s string) *string { return &s }

func TestResolveStep_ProgressColumn(t *testing.T) {
	cases := []struct {
		name     string
		progress model.ApplicationProgress
		want     StepTarget
	}{
		{"after step 2", model.ProgressStep2Done, TargetStepThree},
		{"after step 3", model.ProgressStep3Done, TargetStepFour},
		{"after step 4", model.ProgressStep4Done, TargetPreview},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := &model.VisaApplicationModel{VisaApplicationProgress: tc.progress}
			assert.Equal(t, tc.want, ResolveStep(app))
		})
	}
}

// Rows imported from the old system only carry the column default, so the
// resume point is inferred from which field groups are populated.
func TestResolveStep_LegacyFallback(t *testing.T) {
	t.Run("fresh record resumes at step 2", func(t *testing.T) {
		app := &model.VisaApplicationModel{VisaApplicationProgress: model.ProgressStep1Done}
		assert.Equal(t, TargetStepTwo, ResolveStep(app))
	})

	t.Run("name fields present resumes at step 3", func(t *testing.T) {
		app := &model.VisaApplicationModel{
			VisaApplicationProgress:  model.ProgressStep1Done,
			VisaApplicationSurname:   sp("DOE"),
			VisaApplicationGivenName: sp("JANE"),
		}
		assert.Equal(t, TargetStepThree, ResolveStep(app))
	})

	t.Run("address fields present resumes at step 4", func(t *testing.T) {
		app := &model.VisaApplicationModel{
			VisaApplicationProgress:    model.ProgressStep1Done,
			VisaApplicationSurname:     sp("DOE"),
			VisaApplicationGivenName:   sp("JANE"),
			VisaApplicationHouseStreet: sp("12 Main St"),
			VisaApplicationVillageCity: sp("Springfield"),
		}
		assert.Equal(t, TargetStepFour, ResolveStep(app))
	})

	t.Run("reference fields present resumes at preview", func(t *testing.T) {
		app := &model.VisaApplicationModel{
			VisaApplicationProgress:           model.ProgressStep1Done,
			VisaApplicationTypeOfVisa:         sp("eTOURIST VISA"),
			VisaApplicationReferenceNameIndia: sp("A. Sharma"),
		}
		assert.Equal(t, TargetPreview, ResolveStep(app))
	})

	t.Run("highest populated group wins over gaps", func(t *testing.T) {
		// step-3 data but no step-2 surname: still resume at step 4
		app := &model.VisaApplicationModel{
			VisaApplicationProgress:    model.ProgressStep1Done,
			VisaApplicationHouseStreet: sp("12 Main St"),
			VisaApplicationVillageCity: sp("Springfield"),
		}
		assert.Equal(t, TargetStepFour, ResolveStep(app))
	})

	t.Run("blank strings do not count as presence", func(t *testing.T) {
		app := &model.VisaApplicationModel{
			VisaApplicationProgress:  model.ProgressStep1Done,
			VisaApplicationSurname:   sp("  "),
			VisaApplicationGivenName: sp(""),
		}
		assert.Equal(t, TargetStepTwo, ResolveStep(app))
	})
}
