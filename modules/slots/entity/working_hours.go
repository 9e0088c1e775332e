package entity

import (
	"fmt"
	"time"
)

// WorkingHours is the working-day policy for slot searches. It is built once
// per search and read-only afterwards.
//
// Weekday indices follow the configuration convention 0=Monday .. 6=Sunday.
type WorkingHours struct {
	startHour   int
	startMinute int
	endHour     int
	endMinute   int
	excluded    map[int]bool
	location    *time.Location
}

// NewWorkingHours validates the policy and resolves the IANA timezone
func NewWorkingHours(startHour, startMinute, endHour, endMinute int, excludeWeekdays []int, timezone string) (*WorkingHours, error) {
	if startHour*60+startMinute >= endHour*60+endMinute {
		return nil, fmt.Errorf("working hours start %02d:%02d must be before end %02d:%02d",
			startHour, startMinute, endHour, endMinute)
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	excluded := make(map[int]bool, len(excludeWeekdays))
	for _, wd := range excludeWeekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("excluded weekday %d out of range 0..6", wd)
		}
		excluded[wd] = true
	}

	return &WorkingHours{
		startHour:   startHour,
		startMinute: startMinute,
		endHour:     endHour,
		endMinute:   endMinute,
		excluded:    excluded,
		location:    location,
	}, nil
}

// Location returns the policy timezone
func (w *WorkingHours) Location() *time.Location {
	return w.location
}

// IsWorkingDay reports whether the date falls on a non-excluded weekday
func (w *WorkingHours) IsWorkingDay(date time.Time) bool {
	return !w.excluded[mondayIndexedWeekday(date.In(w.location))]
}

// WorkingRangeFor derives the working block for a calendar day, or false on a
// non-working day. Start and end share the day's calendar date; overnight
// windows are not supported.
func (w *WorkingHours) WorkingRangeFor(date time.Time) (TimeRange, bool) {
	if !w.IsWorkingDay(date) {
		return TimeRange{}, false
	}

	local := date.In(w.location)
	year, month, day := local.Date()

	start := time.Date(year, month, day, w.startHour, w.startMinute, 0, 0, w.location)
	end := time.Date(year, month, day, w.endHour, w.endMinute, 0, 0, w.location)

	// NewWorkingHours guarantees start < end on the same day.
	tr, err := NewTimeRange(start, end)
	if err != nil {
		return TimeRange{}, false
	}
	return tr, true
}

// mondayIndexedWeekday converts Go's Sunday-based weekday to 0=Monday..6=Sunday
func mondayIndexedWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
