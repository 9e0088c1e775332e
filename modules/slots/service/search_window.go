package service

import (
	"fmt"
	"time"
)

// ResolveSearchWindow turns optional YYYY-MM-DD bounds into a concrete
// search window in the given timezone. An empty start means today; an empty
// end means start plus defaultDays. The window spans from the start of the
// first day to the end of the last day.
func ResolveSearchWindow(startStr, endStr string, loc *time.Location, defaultDays int) (time.Time, time.Time, error) {
	var start time.Time
	if startStr == "" {
		start = time.Now().In(loc)
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", startStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", startStr)
		}
		start = parsed
	}
	year, month, day := start.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, loc)

	var end time.Time
	if endStr == "" {
		end = start.AddDate(0, 0, defaultDays)
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", endStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", endStr)
		}
		end = parsed
	}
	year, month, day = end.Date()
	end = time.Date(year, month, day, 23, 59, 59, 0, loc)

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	return start, end, nil
}
