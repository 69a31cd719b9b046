package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* =======================================================
   visa_application_events

   Append-only step log: one row per successful step
   transition or final submit. Feeds the admin timeline.
======================================================= */

type VisaApplicationEventModel struct {
	VisaApplicationEventID   uuid.UUID `json:"visa_application_event_id" gorm:"column:visa_application_event_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VisaApplicationEventCode string    `json:"visa_application_event_code" gorm:"column:visa_application_event_code;type:text;not null;index"`

	// step label: step1|step2|step3|step4|submit
	VisaApplicationEventStep string `json:"visa_application_event_step" gorm:"column:visa_application_event_step;type:text;not null"`

	VisaApplicationEventChangedFields pq.StringArray `json:"visa_application_event_changed_fields" gorm:"column:visa_application_event_changed_fields;type:text[];not null"`
	VisaApplicationEventPayload       datatypes.JSON `json:"visa_application_event_payload" gorm:"column:visa_application_event_payload;type:jsonb"`

	VisaApplicationEventCreatedAt time.Time `json:"visa_application_event_created_at" gorm:"column:visa_application_event_created_at;not null;default:now()"`
}

func (VisaApplicationEventModel) TableName() string {
	return "visa_application_events"
}
