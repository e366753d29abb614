package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vistorialabs/laudoforge/internal/pkg/laudo"
)

// Report statuses
const (
	ReportStatusDraft     = "draft"
	ReportStatusCompleted = "completed"
)

// JSONColumn stores arbitrary JSON in a single database column.
type JSONColumn json.RawMessage

// Value implements driver.Valuer
func (j JSONColumn) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner
func (j *JSONColumn) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSONColumn(v)
		return nil
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
}

// MarshalJSON implements json.Marshaler
func (j JSONColumn) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (j *JSONColumn) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// Report represents a stored inspection report. The report fields and the
// photo list are persisted as JSON documents so the report kinds can carry
// divergent field sets in one table.
type Report struct {
	ID          uint64         `gorm:"primaryKey" json:"id"`
	UUID        string         `gorm:"uniqueIndex;type:varchar(36)" json:"uuid"`
	Title       string         `gorm:"type:varchar(255)" json:"title"`
	Kind        string         `gorm:"type:varchar(32);index" json:"kind" validate:"required,oneof=precautionary accounting extrajudicial"`
	Status      string         `gorm:"type:varchar(16);default:draft" json:"status" validate:"omitempty,oneof=draft completed"`
	CreatedDate string         `gorm:"type:varchar(10)" json:"created_date"`
	ReportData  JSONColumn     `gorm:"type:json" json:"report_data"`
	Photos      JSONColumn     `gorm:"type:json" json:"photos"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Report model
func (Report) TableName() string {
	return "reports"
}

// FieldMap decodes the stored report data. Corrupt or missing JSON yields
// an empty map so a damaged row still loads and renders with fallbacks.
func (r *Report) FieldMap() map[string]string {
	if len(r.ReportData) == 0 {
		return map[string]string{}
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(r.ReportData, &raw); err != nil {
		return map[string]string{}
	}
	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			fields[key] = s
		}
		// non-string values are skipped, not fatal
	}
	return fields
}

// SetFieldMap encodes the field map into the report data column.
func (r *Report) SetFieldMap(fields map[string]string) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	r.ReportData = data
	return nil
}

// PhotoList decodes the stored photos. Corrupt JSON yields an empty list.
func (r *Report) PhotoList() []laudo.Photo {
	if len(r.Photos) == 0 {
		return nil
	}
	var photos []laudo.Photo
	if err := json.Unmarshal(r.Photos, &photos); err != nil {
		return nil
	}
	return photos
}

// SetPhotoList encodes the photo list into the photos column.
func (r *Report) SetPhotoList(photos []laudo.Photo) error {
	data, err := json.Marshal(photos)
	if err != nil {
		return err
	}
	r.Photos = data
	return nil
}

// Field keys for the cover images, stored alongside the report fields.
const (
	reportKeyLocationImage = "locationImage"
	reportKeyLogoImage     = "logoImage"
)

// ToRecord converts the stored row into a normalized record ready for
// rendering or export.
func (r *Report) ToRecord() laudo.Record {
	fields := r.FieldMap()

	locationImage := fields[reportKeyLocationImage]
	logoImage := fields[reportKeyLogoImage]
	delete(fields, reportKeyLocationImage)
	delete(fields, reportKeyLogoImage)

	if _, ok := fields[laudo.FieldTitle]; !ok && r.Title != "" {
		fields[laudo.FieldTitle] = r.Title
	}

	return laudo.Normalize(r.Kind, fields, r.PhotoList(), locationImage, logoImage)
}

// FindReportByUUID retrieves a report by its public UUID
func FindReportByUUID(db *gorm.DB, uuid string) (*Report, error) {
	var report Report
	if err := db.Where("uuid = ?", uuid).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
