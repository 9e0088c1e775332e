package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"timeslotfinder/core/errors"
)

// TimeRange is an immutable half-open time interval [start, end).
// The zero value is not valid; use NewTimeRange.
type TimeRange struct {
	start time.Time
	end   time.Time
}

// NewTimeRange validates and constructs a range. Start must be strictly
// before end; anything else is a caller contract violation.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, errors.NewAppError(
			errors.ErrInvalidRange,
			fmt.Sprintf("start time %s must be before end time %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
			nil,
		)
	}
	return TimeRange{start: start, end: end}, nil
}

// Start returns the inclusive lower bound
func (r TimeRange) Start() time.Time {
	return r.start
}

// End returns the exclusive upper bound
func (r TimeRange) End() time.Time {
	return r.end
}

// DurationMinutes returns the length in whole minutes, truncated toward zero
func (r TimeRange) DurationMinutes() int {
	return int(r.end.Sub(r.start) / time.Minute)
}

// Overlaps reports whether the ranges share any time. Ranges that merely
// touch at a boundary do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.Before(other.end) && r.end.After(other.start)
}

// Intersect returns the common part of two ranges, or false when they
// do not overlap.
func (r TimeRange) Intersect(other TimeRange) (TimeRange, bool) {
	if !r.Overlaps(other) {
		return TimeRange{}, false
	}

	start := r.start
	if other.start.After(start) {
		start = other.start
	}
	end := r.end
	if other.end.Before(end) {
		end = other.end
	}

	return TimeRange{start: start, end: end}, true
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%s - %s", r.start.Format("02.01.2006 15:04"), r.end.Format("15:04"))
}

type timeRangeJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeRangeJSON{Start: r.start, End: r.end})
}

func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var raw timeRangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	tr, err := NewTimeRange(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*r = tr
	return nil
}
