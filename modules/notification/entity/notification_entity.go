package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeSearchCompleted = "search_completed"
	TypeSearchFailed    = "search_failed"
)

type Notification struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Message   string    `db:"message" json:"message"`
	Type      string    `db:"type" json:"type"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
