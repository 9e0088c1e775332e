package dto

import (
	"testing"
	"time"

	"timeslotfinder/modules/slots/entity"
)

func TestToSlotDTOFormatting(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}

	// Monday 2024-11-25, 09:00 to 17:00.
	tr, err := entity.NewTimeRange(
		time.Date(2024, 11, 25, 9, 0, 0, 0, loc),
		time.Date(2024, 11, 25, 17, 0, 0, 0, loc),
	)
	if err != nil {
		t.Fatal(err)
	}

	got := ToSlotDTO(entity.TimeSlot{TimeRange: tr, Participants: []string{"anna@example.com"}})

	if got.Weekday != "Montag" {
		t.Errorf("Weekday = %q, want %q", got.Weekday, "Montag")
	}
	if got.FormattedDate != "25.11.2024" {
		t.Errorf("FormattedDate = %q, want %q", got.FormattedDate, "25.11.2024")
	}
	if got.FormattedTime != "09:00 – 17:00 Uhr" {
		t.Errorf("FormattedTime = %q", got.FormattedTime)
	}
	if got.DurationMinutes != 480 {
		t.Errorf("DurationMinutes = %d, want 480", got.DurationMinutes)
	}

	want := "Montag, 25.11.2024 | 09:00 – 17:00 Uhr (480 Min.)"
	if got.Display != want {
		t.Errorf("Display = %q, want %q", got.Display, want)
	}
}
