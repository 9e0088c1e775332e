package dto

import (
	"fmt"
	"time"

	"timeslotfinder/modules/slots/entity"
)

// ===================== Request DTOs =====================

// FindSlotsRequest for finding shared free slots
type FindSlotsRequest struct {
	Participants    []string `json:"participants" validate:"required"`
	StartDate       string   `json:"start_date"` // YYYY-MM-DD, defaults to today
	EndDate         string   `json:"end_date"`   // YYYY-MM-DD, defaults to start + search_days
	DurationMinutes int      `json:"duration_minutes"`
}

// ===================== Response DTOs =====================

// FindSlotsResponse for found slots
type FindSlotsResponse struct {
	Participants    []string  `json:"participants"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Timezone        string    `json:"timezone"`
	Slots           []SlotDTO `json:"slots"`
}

// SlotDTO is a single free slot with display fields
type SlotDTO struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Weekday         string    `json:"weekday"`
	FormattedDate   string    `json:"formatted_date"`
	FormattedTime   string    `json:"formatted_time"`
	Display         string    `json:"display"`
}

// German weekday names, Monday-indexed like the working-hours policy
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

// ToSlotDTO maps a TimeSlot to its response form.
// Display format: Wochentag, DD.MM.YYYY | HH:MM – HH:MM Uhr (N Min.)
func ToSlotDTO(slot entity.TimeSlot) SlotDTO {
	start := slot.TimeRange.Start()
	end := slot.TimeRange.End()
	duration := slot.TimeRange.DurationMinutes()

	weekday := weekdayNames[start.Weekday()]
	formattedDate := start.Format("02.01.2006")
	formattedTime := fmt.Sprintf("%s – %s Uhr", start.Format("15:04"), end.Format("15:04"))

	return SlotDTO{
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Weekday:         weekday,
		FormattedDate:   formattedDate,
		FormattedTime:   formattedTime,
		Display:         fmt.Sprintf("%s, %s | %s (%d Min.)", weekday, formattedDate, formattedTime, duration),
	}
}

// ToFindSlotsResponse maps a result list to the response envelope
func ToFindSlotsResponse(
	participants []string,
	startDate, endDate time.Time,
	durationMinutes int,
	timezone string,
	slots []entity.TimeSlot,
) *FindSlotsResponse {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, ToSlotDTO(s))
	}

	return &FindSlotsResponse{
		Participants:    participants,
		StartDate:       startDate,
		EndDate:         endDate,
		DurationMinutes: durationMinutes,
		Timezone:        timezone,
		Slots:           out,
	}
}
