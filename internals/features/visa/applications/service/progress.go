package service

import (
	"strings"

	"evisa_backend/internals/features/visa/applications/model"
)

/* =========================================================
   Resume routing

   When a step-1 submission matches an existing passport
   number, the applicant is routed to wherever they left
   off instead of getting a duplicate record.
   ========================================================= */

type StepTarget string

const (
	TargetStepTwo   StepTarget = "step_two"
	TargetStepThree StepTarget = "step_three"
	TargetStepFour  StepTarget = "step_four"
	TargetPreview   StepTarget = "preview"
)

// ResolveStep decides where a returning applicant resumes.
//
// The explicit progress column wins when it carries a post-step-1 value.
// Rows imported from the old system only have the column default, so for
// those the decision falls back to field presence, evaluated strictly from
// most-complete to least-complete:
//
//  1. both step-4 reference fields set  -> preview
//  2. both step-3 address fields set    -> step 4
//  3. both step-2 name fields set       -> step 3
//  4. otherwise                         -> step 2
//
// The order matters: a partial row with step-3 data but no step-2 surname
// must still land on the highest step its data supports.
func ResolveStep(app *model.VisaApplicationModel) StepTarget {
	switch app.VisaApplicationProgress {
	case model.ProgressStep4Done:
		return TargetPreview
	case model.ProgressStep3Done:
		return TargetStepFour
	case model.ProgressStep2Done:
		return TargetStepThree
	}

	// legacy fallback: infer from which groups are populated
	switch {
	case present(app.VisaApplicationTypeOfVisa) && present(app.VisaApplicationReferenceNameIndia):
		return TargetPreview
	case present(app.VisaApplicationHouseStreet) && present(app.VisaApplicationVillageCity):
		return TargetStepFour
	case present(app.VisaApplicationSurname) && present(app.VisaApplicationGivenName):
		return TargetStepThree
	default:
		return TargetStepTwo
	}
}

func present(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}
