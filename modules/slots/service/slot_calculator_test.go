package service

import (
	"testing"
	"time"

	"timeslotfinder/modules/slots/entity"
)

func testCalculator(t *testing.T) (*SlotCalculator, *time.Location) {
	t.Helper()
	wh, err := entity.NewWorkingHours(9, 0, 17, 0, []int{5, 6}, "Europe/Berlin")
	if err != nil {
		t.Fatalf("NewWorkingHours: %v", err)
	}
	return NewSlotCalculator(wh), wh.Location()
}

func day(loc *time.Location, dayOfMonth, hour, minute int) time.Time {
	return time.Date(2024, 11, dayOfMonth, hour, minute, 0, 0, loc)
}

func busyRange(t *testing.T, loc *time.Location, dayOfMonth, startHour, endHour int) entity.TimeRange {
	t.Helper()
	tr, err := entity.NewTimeRange(day(loc, dayOfMonth, startHour, 0), day(loc, dayOfMonth, endHour, 0))
	if err != nil {
		t.Fatalf("NewTimeRange: %v", err)
	}
	return tr
}

func assertSlot(t *testing.T, slot entity.TimeSlot, wantStart, wantEnd time.Time) {
	t.Helper()
	if !slot.TimeRange.Start().Equal(wantStart) || !slot.TimeRange.End().Equal(wantEnd) {
		t.Errorf("slot = %v, want %v - %v", slot.TimeRange, wantStart, wantEnd)
	}
}

// Monday 2024-11-25, single participant without busy time: the whole
// working day is one free slot.
func TestFindAvailableSlotsFreeDay(t *testing.T) {
	calc, loc := testCalculator(t)

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", nil)

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 9, 0), day(loc, 25, 17, 0))
	if got := slots[0].TimeRange.DurationMinutes(); got != 480 {
		t.Errorf("duration = %d, want 480", got)
	}
}

func TestFindAvailableSlotsSubtractsBusyTime(t *testing.T) {
	calc, loc := testCalculator(t)

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{
		busyRange(t, loc, 25, 9, 10),
		busyRange(t, loc, 25, 12, 14),
		busyRange(t, loc, 25, 15, 17),
	})

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 10, 0), day(loc, 25, 12, 0))
	assertSlot(t, slots[1], day(loc, 25, 14, 0), day(loc, 25, 15, 0))
}

func TestFindAvailableSlotsIntersectsParticipants(t *testing.T) {
	calc, loc := testCalculator(t)

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{busyRange(t, loc, 25, 9, 11)})
	busy.Set("max@example.com", []entity.TimeRange{busyRange(t, loc, 25, 10, 12)})

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 12, 0), day(loc, 25, 17, 0))

	want := []string{"anna@example.com", "max@example.com"}
	if len(slots[0].Participants) != len(want) {
		t.Fatalf("participants = %v, want %v", slots[0].Participants, want)
	}
	for i, p := range want {
		if slots[0].Participants[i] != p {
			t.Errorf("participants[%d] = %q, want %q", i, slots[0].Participants[i], p)
		}
	}
}

// Friday 2024-11-29 through Monday 2024-12-02: the weekend yields no
// slots, and Friday and Monday stay separate slots.
func TestFindAvailableSlotsSkipsWeekend(t *testing.T) {
	calc, loc := testCalculator(t)

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", nil)

	start := day(loc, 29, 0, 0)
	end := time.Date(2024, 12, 2, 23, 59, 0, 0, loc)

	slots, err := calc.FindAvailableSlots(start, end, busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 29, 9, 0), day(loc, 29, 17, 0))
	assertSlot(t, slots[1],
		time.Date(2024, 12, 2, 9, 0, 0, 0, loc),
		time.Date(2024, 12, 2, 17, 0, 0, 0, loc),
	)
}

func TestFindAvailableSlotsFiltersShortGaps(t *testing.T) {
	calc, loc := testCalculator(t)

	// Free gaps: 09:00-10:00 (60 min) and 10:15-10:30 (15 min).
	gapStart := day(loc, 25, 10, 15)
	gapEnd := day(loc, 25, 10, 30)
	first, err := entity.NewTimeRange(day(loc, 25, 10, 0), gapStart)
	if err != nil {
		t.Fatal(err)
	}
	second, err := entity.NewTimeRange(gapEnd, day(loc, 25, 17, 0))
	if err != nil {
		t.Fatal(err)
	}

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{first, second})

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 9, 0), day(loc, 25, 10, 0))
}

// A gap exactly as long as the minimum duration survives the filter;
// the comparison is strictly-less-than.
func TestFindAvailableSlotsKeepsExactMinimumDuration(t *testing.T) {
	calc, loc := testCalculator(t)

	// Free gaps: 09:00-10:00 (60 min) and 10:15-10:30 (exactly 15 min).
	first, err := entity.NewTimeRange(day(loc, 25, 10, 0), day(loc, 25, 10, 15))
	if err != nil {
		t.Fatal(err)
	}
	second, err := entity.NewTimeRange(day(loc, 25, 10, 30), day(loc, 25, 17, 0))
	if err != nil {
		t.Fatal(err)
	}

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{first, second})

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 15)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 9, 0), day(loc, 25, 10, 0))
	assertSlot(t, slots[1], day(loc, 25, 10, 15), day(loc, 25, 10, 30))
	if got := slots[1].TimeRange.DurationMinutes(); got != 15 {
		t.Errorf("boundary slot duration = %d, want 15", got)
	}
}

// Identical inputs yield identical results on every call.
func TestFindAvailableSlotsIdempotent(t *testing.T) {
	calc, loc := testCalculator(t)

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{busyRange(t, loc, 25, 9, 11)})
	busy.Set("max@example.com", []entity.TimeRange{busyRange(t, loc, 25, 14, 16)})

	start := day(loc, 25, 0, 0)
	end := time.Date(2024, 11, 27, 23, 59, 0, 0, loc)

	first, err := calc.FindAvailableSlots(start, end, busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}
	second, err := calc.FindAvailableSlots(start, end, busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots (repeat): %v", err)
	}

	if len(first) == 0 {
		t.Fatal("expected slots in a multi-day window")
	}
	if len(first) != len(second) {
		t.Fatalf("repeat call returned %d slots, first returned %d", len(second), len(first))
	}
	for i := range first {
		if !first[i].TimeRange.Start().Equal(second[i].TimeRange.Start()) ||
			!first[i].TimeRange.End().Equal(second[i].TimeRange.End()) {
			t.Errorf("slot %d differs: %v vs %v", i, first[i].TimeRange, second[i].TimeRange)
		}
		for j, p := range first[i].Participants {
			if second[i].Participants[j] != p {
				t.Errorf("slot %d participants differ: %v vs %v", i, first[i].Participants, second[i].Participants)
			}
		}
	}
}

// A stricter duration filter only removes slots, never changes survivors.
func TestFindAvailableSlotsDurationFilterMonotonic(t *testing.T) {
	calc, loc := testCalculator(t)

	// Free gaps: 09:00-10:00 (60 min) and 12:00-17:00 (300 min).
	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{
		busyRange(t, loc, 25, 10, 12),
	})

	loose, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatal(err)
	}
	strict, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 61)
	if err != nil {
		t.Fatal(err)
	}

	if len(strict) >= len(loose) {
		t.Fatalf("strict filter kept %d of %d slots, want fewer", len(strict), len(loose))
	}
	for _, s := range strict {
		found := false
		for _, l := range loose {
			if s.TimeRange.Start().Equal(l.TimeRange.Start()) && s.TimeRange.End().Equal(l.TimeRange.End()) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("slot %v missing from looser result", s.TimeRange)
		}
	}
}

func TestFindAvailableSlotsEmptyBusyTimes(t *testing.T) {
	calc, loc := testCalculator(t)

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), entity.NewBusyTimes(), 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots for empty busy times, want 0", len(slots))
	}

	slots, err = calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), nil, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots(nil): %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots for nil busy times, want 0", len(slots))
	}
}

func TestFindAvailableSlotsClipsToSearchBounds(t *testing.T) {
	calc, loc := testCalculator(t)

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", nil)

	slots, err := calc.FindAvailableSlots(day(loc, 25, 12, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 12, 0), day(loc, 25, 17, 0))
}

// Busy time outside working hours must not affect the day's free time.
func TestFindAvailableSlotsIgnoresBusyOutsideWorkingHours(t *testing.T) {
	calc, loc := testCalculator(t)

	early, err := entity.NewTimeRange(day(loc, 25, 6, 0), day(loc, 25, 8, 0))
	if err != nil {
		t.Fatal(err)
	}
	late, err := entity.NewTimeRange(day(loc, 25, 18, 0), day(loc, 25, 20, 0))
	if err != nil {
		t.Fatal(err)
	}

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{early, late})

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 9, 0), day(loc, 25, 17, 0))
}

// A busy interval overlapping the start of the working day is clipped,
// not dropped.
func TestFindAvailableSlotsClipsBusyToWorkingBlock(t *testing.T) {
	calc, loc := testCalculator(t)

	overlapping, err := entity.NewTimeRange(day(loc, 25, 8, 0), day(loc, 25, 10, 0))
	if err != nil {
		t.Fatal(err)
	}

	busy := entity.NewBusyTimes()
	busy.Set("anna@example.com", []entity.TimeRange{overlapping})

	slots, err := calc.FindAvailableSlots(day(loc, 25, 0, 0), day(loc, 25, 23, 59), busy, 30)
	if err != nil {
		t.Fatalf("FindAvailableSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 10, 0), day(loc, 25, 17, 0))
}

func TestMergeAdjacentRanges(t *testing.T) {
	loc := time.UTC

	mk := func(startHour, endHour int) entity.TimeRange {
		tr, err := entity.NewTimeRange(
			time.Date(2024, 11, 25, startHour, 0, 0, 0, loc),
			time.Date(2024, 11, 25, endHour, 0, 0, 0, loc),
		)
		if err != nil {
			t.Fatal(err)
		}
		return tr
	}

	merged := mergeAdjacentRanges([]entity.TimeRange{mk(10, 11), mk(9, 10), mk(13, 14)})
	if len(merged) != 2 {
		t.Fatalf("got %d ranges, want 2", len(merged))
	}
	if !merged[0].Start().Equal(mk(9, 11).Start()) || !merged[0].End().Equal(mk(9, 11).End()) {
		t.Errorf("merged[0] = %v, want 09:00 - 11:00", merged[0])
	}
	if !merged[1].Start().Equal(mk(13, 14).Start()) {
		t.Errorf("merged[1] = %v, want 13:00 - 14:00", merged[1])
	}
}
