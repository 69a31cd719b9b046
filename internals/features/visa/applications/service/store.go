package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"evisa_backend/internals/features/visa/applications/model"
)

/* =========================================================
   Application store

   All reads/writes for visa_applications. Updates are
   column-map patches, never whole-row saves, so a partial
   step resubmission cannot wipe fields outside its group.
   ========================================================= */

type ApplicationStore struct {
	DB *gorm.DB
}

// Create inserts app with a freshly generated code. On an insert-time code
// collision it regenerates and retries up to maxCodeAttempts times, then
// fails with ErrCodeGeneration.
func (s *ApplicationStore) Create(ctx context.Context, app *model.VisaApplicationModel) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := NewApplicationCode(time.Now())
		if err != nil {
			return err
		}
		app.VisaApplicationCode = code

		err = s.DB.WithContext(ctx).Create(app).Error
		if err == nil {
			return nil
		}
		if isDuplicateKey(err) {
			log.Printf("[WARN] application code collision on %s (attempt %d), regenerating", code, attempt+1)
			continue
		}
		return err
	}
	return ErrCodeGeneration
}

// FindByCode returns gorm.ErrRecordNotFound when the code is unknown.
func (s *ApplicationStore) FindByCode(ctx context.Context, code string) (*model.VisaApplicationModel, error) {
	var m model.VisaApplicationModel
	if err := s.DB.WithContext(ctx).
		Where("visa_application_code = ?", code).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByPassportNumber returns (nil, nil) when no application exists for
// that passport number. Oldest first: the first submission wins the dedup.
func (s *ApplicationStore) FindByPassportNumber(ctx context.Context, passportNumber string) (*model.VisaApplicationModel, error) {
	var m model.VisaApplicationModel
	err := s.DB.WithContext(ctx).
		Where("visa_application_passport_number = ?", passportNumber).
		Order("visa_application_created_at ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Patch merges the supplied columns into the record and returns the fresh
// row. Keys absent from patch keep their prior values.
func (s *ApplicationStore) Patch(ctx context.Context, code string, patch map[string]interface{}) (*model.VisaApplicationModel, error) {
	if len(patch) == 0 {
		return s.FindByCode(ctx, code)
	}
	patch["visa_application_updated_at"] = time.Now()

	res := s.DB.WithContext(ctx).
		Model(&model.VisaApplicationModel{}).
		Where("visa_application_code = ?", code).
		Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.FindByCode(ctx, code)
}

// MarkCompleted sets status=completed plus the submission timestamp.
// Deliberately not guarded against repeat calls: a second submit simply
// overwrites the timestamp.
func (s *ApplicationStore) MarkCompleted(ctx context.Context, code string) (*model.VisaApplicationModel, error) {
	return s.Patch(ctx, code, map[string]interface{}{
		"visa_application_status":       model.StatusCompleted,
		"visa_application_submitted_at": time.Now(),
	})
}

// List returns a page of applications, newest first, with optional status
// filter and passport-number/code search.
func (s *ApplicationStore) List(ctx context.Context, limit, offset int, status, q string) ([]model.VisaApplicationModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.VisaApplicationModel{})

	if status != "" {
		tx = tx.Where("visa_application_status = ?", status)
	}
	if strings.TrimSpace(q) != "" {
		kw := "%" + strings.ToUpper(strings.TrimSpace(q)) + "%"
		tx = tx.Where("(UPPER(visa_application_code) LIKE ? OR UPPER(visa_application_passport_number) LIKE ?)", kw, kw)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.VisaApplicationModel
	if err := tx.
		Order("visa_application_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// LogEvent appends one audit row for a successful step transition. Failures
// are logged, not propagated: the step itself already committed.
func (s *ApplicationStore) LogEvent(ctx context.Context, code, step string, patch map[string]interface{}) {
	fields := make([]string, 0, len(patch))
	for k := range patch {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	payload, err := json.Marshal(patch)
	if err != nil {
		log.Printf("[WARN] event payload marshal failed for %s/%s: %v", code, step, err)
		payload = []byte("{}")
	}

	ev := model.VisaApplicationEventModel{
		VisaApplicationEventCode:          code,
		VisaApplicationEventStep:          step,
		VisaApplicationEventChangedFields: pq.StringArray(fields),
		VisaApplicationEventPayload:       datatypes.JSON(payload),
	}
	if err := s.DB.WithContext(ctx).Create(&ev).Error; err != nil {
		log.Printf("[WARN] event log insert failed for %s/%s: %v", code, step, err)
	}
}

// Events returns the audit trail for one application, oldest first.
func (s *ApplicationStore) Events(ctx context.Context, code string) ([]model.VisaApplicationEventModel, error) {
	var rows []model.VisaApplicationEventModel
	if err := s.DB.WithContext(ctx).
		Where("visa_application_event_code = ?", code).
		Order("visa_application_event_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func isDuplicateKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
