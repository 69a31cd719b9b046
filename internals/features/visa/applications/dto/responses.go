package dto

import (
	"evisa_backend/internals/features/visa/applications/model"
)

// StepResult is the envelope data for every wizard endpoint: where the
// client should go next, plus the current record.
type StepResult struct {
	NextStep    string                      `json:"next_step"`
	Application *model.VisaApplicationModel `json:"application"`
}

// ApplicationListItem trims the wide record down to what the admin listing
// actually renders.
type ApplicationListItem struct {
	Code           string  `json:"visa_application_code"`
	FirstName      string  `json:"visa_application_first_name"`
	LastName       string  `json:"visa_application_last_name"`
	PassportNumber string  `json:"visa_application_passport_number"`
	Nationality    string  `json:"visa_application_nationality"`
	VisaType       string  `json:"visa_application_visa_type"`
	Status         string  `json:"visa_application_status"`
	Progress       string  `json:"visa_application_progress"`
	SubmittedAt    *string `json:"visa_application_submitted_at"`
	CreatedAt      string  `json:"visa_application_created_at"`
}

const listTimeLayout = "2006-01-02 15:04:05"

func ToApplicationListItem(m model.VisaApplicationModel) ApplicationListItem {
	item := ApplicationListItem{
		Code:           m.VisaApplicationCode,
		FirstName:      m.VisaApplicationFirstName,
		LastName:       m.VisaApplicationLastName,
		PassportNumber: m.VisaApplicationPassportNumber,
		Nationality:    m.VisaApplicationNationality,
		VisaType:       m.VisaApplicationVisaType,
		Status:         string(m.VisaApplicationStatus),
		Progress:       string(m.VisaApplicationProgress),
		CreatedAt:      m.VisaApplicationCreatedAt.Format(listTimeLayout),
	}
	if m.VisaApplicationSubmittedAt != nil {
		s := m.VisaApplicationSubmittedAt.Format(listTimeLayout)
		item.SubmittedAt = &s
	}
	return item
}

func ToApplicationListItems(ms []model.VisaApplicationModel) []ApplicationListItem {
	out := make([]ApplicationListItem, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToApplicationListItem(m))
	}
	return out
}
