package dto

import (
	"time"

	"github.com/google/uuid"

	"timeslotfinder/modules/search/entity"
	slotsDto "timeslotfinder/modules/slots/dto"
)

// ===================== Request DTOs =====================

// CreateSearchRequest creates a saved slot search. With async=true the
// search is enqueued and computed by the background worker.
type CreateSearchRequest struct {
	Participants    []string `json:"participants" validate:"required"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	DurationMinutes int      `json:"duration_minutes"`
	Async           bool     `json:"async"`
}

// ===================== Response DTOs =====================

type SearchResponse struct {
	ID              uuid.UUID           `json:"id"`
	ShareSlug       string              `json:"share_slug"`
	Participants    []string            `json:"participants"`
	StartDate       time.Time           `json:"start_date"`
	EndDate         time.Time           `json:"end_date"`
	Timezone        string              `json:"timezone"`
	DurationMinutes int                 `json:"duration_minutes"`
	Status          string              `json:"status"`
	Slots           []slotsDto.SlotDTO  `json:"slots,omitempty"`
	ErrorMessage    *string             `json:"error_message,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
}

type ListSearchesResponse struct {
	Searches []SearchResponse `json:"searches"`
}

func ToSearchResponse(s *entity.Search) *SearchResponse {
	resp := &SearchResponse{
		ID:              s.ID,
		ShareSlug:       s.ShareSlug,
		Participants:    s.Participants,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		Timezone:        s.Timezone,
		DurationMinutes: s.DurationMinutes,
		Status:          s.Status,
		ErrorMessage:    s.ErrorMessage,
		CreatedAt:       s.CreatedAt,
		CompletedAt:     s.CompletedAt,
	}
	for _, slot := range s.Slots {
		resp.Slots = append(resp.Slots, slotsDto.ToSlotDTO(slot))
	}
	return resp
}
