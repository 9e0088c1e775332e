package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func mustRange(t *testing.T, start, end time.Time) TimeRange {
	t.Helper()
	tr, err := NewTimeRange(start, end)
	if err != nil {
		t.Fatalf("NewTimeRange(%v, %v): %v", start, end, err)
	}
	return tr
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 11, 25, hour, minute, 0, 0, time.UTC)
}

func TestNewTimeRangeRejectsInvalidBounds(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"start equals end", at(10, 0), at(10, 0)},
		{"start after end", at(11, 0), at(10, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTimeRange(tc.start, tc.end); err == nil {
				t.Errorf("expected error for start=%v end=%v", tc.start, tc.end)
			}
		})
	}
}

func TestTimeRangeDurationMinutes(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"full hour", at(9, 0), at(10, 0), 60},
		{"half hour", at(9, 0), at(9, 30), 30},
		{"seconds truncate", at(9, 0), at(9, 0).Add(90*time.Second + 59*time.Second), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := mustRange(t, tc.start, tc.end)
			if got := tr.DurationMinutes(); got != tc.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTimeRangeOverlaps(t *testing.T) {
	base := mustRange(t, at(10, 0), at(12, 0))

	cases := []struct {
		name  string
		other TimeRange
		want  bool
	}{
		{"partial overlap", mustRange(t, at(11, 0), at(13, 0)), true},
		{"contained", mustRange(t, at(10, 30), at(11, 30)), true},
		{"identical", mustRange(t, at(10, 0), at(12, 0)), true},
		{"touching at end", mustRange(t, at(12, 0), at(13, 0)), false},
		{"touching at start", mustRange(t, at(9, 0), at(10, 0)), false},
		{"disjoint", mustRange(t, at(14, 0), at(15, 0)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Overlaps(tc.other); got != tc.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tc.other, got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.other.Overlaps(base); got != tc.want {
				t.Errorf("reverse Overlaps(%v) = %v, want %v", base, got, tc.want)
			}
		})
	}
}

func TestTimeRangeIntersect(t *testing.T) {
	a := mustRange(t, at(10, 0), at(12, 0))
	b := mustRange(t, at(11, 0), at(13, 0))

	got, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected overlap")
	}
	if !got.Start().Equal(at(11, 0)) || !got.End().Equal(at(12, 0)) {
		t.Errorf("Intersect = %v, want 11:00 - 12:00", got)
	}

	c := mustRange(t, at(12, 0), at(13, 0))
	if _, ok := a.Intersect(c); ok {
		t.Error("touching ranges must not intersect")
	}
}

func TestTimeRangeJSONRoundTrip(t *testing.T) {
	tr := mustRange(t, at(9, 0), at(17, 0))

	raw, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded TimeRange
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Start().Equal(tr.Start()) || !decoded.End().Equal(tr.End()) {
		t.Errorf("round trip changed range: got %v, want %v", decoded, tr)
	}
}

func TestTimeRangeUnmarshalRejectsInvertedBounds(t *testing.T) {
	raw := []byte(`{"start":"2024-11-25T12:00:00Z","end":"2024-11-25T10:00:00Z"}`)

	var tr TimeRange
	if err := json.Unmarshal(raw, &tr); err == nil {
		t.Error("expected error for inverted bounds")
	}
}
