package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A step patch must never touch columns outside its own group (plus the
// progress marker), so a resubmission cannot wipe another step's answers.
func TestStepTwoToPatch(t *testing.T) {
	req := validStepTwo()
	req.Normalize()
	patch := req.ToPatch()

	t.Run("stays inside its column group", func(t *testing.T) {
		for col := range patch {
			assert.True(t, strings.HasPrefix(col, "visa_application_"), col)
		}
		assert.NotContains(t, patch, "visa_application_house_street")
		assert.NotContains(t, patch, "visa_application_type_of_visa")
		assert.NotContains(t, patch, "visa_application_status")
		assert.NotContains(t, patch, "visa_application_submitted_at")
	})

	t.Run("blank optionals are omitted", func(t *testing.T) {
		assert.NotContains(t, patch, "visa_application_citizenship_national_id_no")
		assert.NotContains(t, patch, "visa_application_visible_identification_marks")
	})

	t.Run("supplied optionals are included", func(t *testing.T) {
		req := validStepTwo()
		req.CitizenshipNationalIDNo = "A-100"
		p := req.ToPatch()
		assert.Equal(t, "A-100", p["visa_application_citizenship_national_id_no"])
	})

	t.Run("advances progress", func(t *testing.T) {
		assert.EqualValues(t, "step2_done", patch["visa_application_progress"])
	})

	t.Run("dates are parsed", func(t *testing.T) {
		assert.NotNil(t, patch["visa_application_date_of_issue"])
	})
}

func TestStepThreeToPatch(t *testing.T) {
	t.Run("single applicant leaves spouse columns alone", func(t *testing.T) {
		req := validStepThree()
		patch := req.ToPatch()

		assert.NotContains(t, patch, "visa_application_spouse_name")
		assert.NotContains(t, patch, "visa_application_spouse_nationality")
		assert.EqualValues(t, "step3_done", patch["visa_application_progress"])
	})

	t.Run("married applicant writes spouse columns", func(t *testing.T) {
		req := validStepThree()
		req.MaritalStatus = "married"
		req.SpouseName = "Alex Doe"
		req.SpouseNationality = "AUSTRALIA"
		patch := req.ToPatch()

		assert.Equal(t, "Alex Doe", patch["visa_application_spouse_name"])
		assert.Equal(t, "AUSTRALIA", patch["visa_application_spouse_nationality"])
	})

	t.Run("never touches other groups", func(t *testing.T) {
		patch := validStepThree().ToPatch()
		assert.NotContains(t, patch, "visa_application_surname")
		assert.NotContains(t, patch, "visa_application_passport_number")
		assert.NotContains(t, patch, "visa_application_reference_photo_url")
	})
}

func TestStepFourToPatch(t *testing.T) {
	req := validStepFour()
	patch := req.ToPatch()

	t.Run("text columns only, files added by the upload path", func(t *testing.T) {
		assert.NotContains(t, patch, "visa_application_reference_photo_url")
		assert.NotContains(t, patch, "visa_application_passport_copy_url")
	})

	t.Run("blank optionals are omitted", func(t *testing.T) {
		assert.NotContains(t, patch, "visa_application_place_likely_to_be_visited_2")
		assert.NotContains(t, patch, "visa_application_countries_visited")
	})

	t.Run("marks the wizard finished", func(t *testing.T) {
		assert.EqualValues(t, "step4_done", patch["visa_application_progress"])
	})

	t.Run("integer durations survive", func(t *testing.T) {
		assert.Equal(t, 365, patch["visa_application_duration_of_visa"])
		assert.Equal(t, 30, patch["visa_application_duration_of_stay"])
	})
}
