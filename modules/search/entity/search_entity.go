package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	slotsEntity "timeslotfinder/modules/slots/entity"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Search struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	ShareSlug       string      `db:"share_slug" json:"share_slug"`
	Participants    StringSlice `db:"participants" json:"participants"`
	StartDate       time.Time   `db:"start_date" json:"start_date"`
	EndDate         time.Time   `db:"end_date" json:"end_date"`
	Timezone        string      `db:"timezone" json:"timezone"`
	DurationMinutes int         `db:"duration_minutes" json:"duration_minutes"`
	Status          string      `db:"status" json:"status"`
	Slots           SlotList    `db:"slots" json:"slots"`
	ErrorMessage    *string     `db:"error_message" json:"error_message,omitempty"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	CompletedAt     *time.Time  `db:"completed_at" json:"completed_at,omitempty"`
}

// StringSlice stores a []string as a JSONB column
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringSlice) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, s)
}

// SlotList stores computed slots as a JSONB column
type SlotList []slotsEntity.TimeSlot

func (s SlotList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *SlotList) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, s)
}
