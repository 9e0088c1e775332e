package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeslotfinder/modules/slots/entity"
)

type stubCalendarClient struct {
	schedule map[string][]entity.TimeRange
	err      error
	calls    int
}

func (s *stubCalendarClient) GetSchedule(ctx context.Context, emails []string, start, end time.Time, timezone string) (map[string][]entity.TimeRange, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.schedule, nil
}

func TestFetchBusyTimesNormalizesMissingParticipants(t *testing.T) {
	calc, loc := testCalculator(t)

	// The provider only returns anna; max has no events.
	client := &stubCalendarClient{
		schedule: map[string][]entity.TimeRange{
			"anna@example.com": {busyRange(t, loc, 25, 10, 11)},
		},
	}
	finder := NewTimeslotFinderService(client, calc)

	busy, err := finder.FetchBusyTimes(
		context.Background(),
		[]string{"anna@example.com", "max@example.com"},
		day(loc, 25, 0, 0), day(loc, 25, 23, 59),
		"Europe/Berlin",
	)
	if err != nil {
		t.Fatalf("FetchBusyTimes: %v", err)
	}

	if busy.Len() != 2 {
		t.Fatalf("participants = %d, want 2", busy.Len())
	}
	if got := busy.Ranges("max@example.com"); len(got) != 0 {
		t.Errorf("max busy ranges = %v, want none", got)
	}
	if got := busy.Ranges("anna@example.com"); len(got) != 1 {
		t.Errorf("anna busy ranges = %v, want 1", got)
	}
}

func TestFetchBusyTimesKeepsExtraEntriesInStableOrder(t *testing.T) {
	calc, loc := testCalculator(t)

	client := &stubCalendarClient{
		schedule: map[string][]entity.TimeRange{
			"anna@example.com":  nil,
			"zoe@example.com":   nil,
			"bernd@example.com": nil,
		},
	}
	finder := NewTimeslotFinderService(client, calc)

	busy, err := finder.FetchBusyTimes(
		context.Background(),
		[]string{"anna@example.com"},
		day(loc, 25, 0, 0), day(loc, 25, 23, 59),
		"Europe/Berlin",
	)
	if err != nil {
		t.Fatalf("FetchBusyTimes: %v", err)
	}

	want := []string{"anna@example.com", "bernd@example.com", "zoe@example.com"}
	got := busy.Participants()
	if len(got) != len(want) {
		t.Fatalf("participants = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("participants[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindSlotsPropagatesCalendarError(t *testing.T) {
	calc, loc := testCalculator(t)

	upstreamErr := errors.New("graph unavailable")
	client := &stubCalendarClient{err: upstreamErr}
	finder := NewTimeslotFinderService(client, calc)

	_, err := finder.FindSlots(
		context.Background(),
		[]string{"anna@example.com"},
		day(loc, 25, 0, 0), day(loc, 25, 23, 59),
		"Europe/Berlin",
		30,
	)
	if !errors.Is(err, upstreamErr) {
		t.Fatalf("err = %v, want %v", err, upstreamErr)
	}
}

func TestFindSlotsEndToEnd(t *testing.T) {
	calc, loc := testCalculator(t)

	client := &stubCalendarClient{
		schedule: map[string][]entity.TimeRange{
			"anna@example.com": {busyRange(t, loc, 25, 9, 12)},
			"max@example.com":  {busyRange(t, loc, 25, 14, 17)},
		},
	}
	finder := NewTimeslotFinderService(client, calc)

	slots, err := finder.FindSlots(
		context.Background(),
		[]string{"anna@example.com", "max@example.com"},
		day(loc, 25, 0, 0), day(loc, 25, 23, 59),
		"Europe/Berlin",
		30,
	)
	if err != nil {
		t.Fatalf("FindSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	assertSlot(t, slots[0], day(loc, 25, 12, 0), day(loc, 25, 14, 0))
	if client.calls != 1 {
		t.Errorf("calendar calls = %d, want 1", client.calls)
	}
}
