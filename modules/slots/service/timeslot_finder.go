package service

import (
	"context"
	"sort"
	"time"

	"timeslotfinder/core/logger"
	"timeslotfinder/modules/slots/entity"
)

// CalendarClient is the capability the finder needs from a calendar
// provider: busy intervals per participant for a time window. Failures are
// opaque to the finder; it neither classifies nor retries them.
type CalendarClient interface {
	GetSchedule(ctx context.Context, emails []string, start, end time.Time, timezone string) (map[string][]entity.TimeRange, error)
}

// TimeslotFinderService orchestrates busy-time retrieval and slot
// calculation. The calendar dependency is injected so tests and the mock
// adapter can stand in for Microsoft Graph.
type TimeslotFinderService struct {
	calendarClient CalendarClient
	calculator     *SlotCalculator
}

func NewTimeslotFinderService(calendarClient CalendarClient, calculator *SlotCalculator) *TimeslotFinderService {
	return &TimeslotFinderService{
		calendarClient: calendarClient,
		calculator:     calculator,
	}
}

// FindSlots retrieves busy data for the participants, normalizes it, and
// computes the shared free slots.
func (s *TimeslotFinderService) FindSlots(
	ctx context.Context,
	participants []string,
	startDate, endDate time.Time,
	timezone string,
	minDurationMinutes int,
) ([]entity.TimeSlot, error) {
	busyTimes, err := s.FetchBusyTimes(ctx, participants, startDate, endDate, timezone)
	if err != nil {
		return nil, err
	}

	return s.CalculateSlots(startDate, endDate, busyTimes, minDurationMinutes)
}

// FetchBusyTimes fetches the busy-time map for the requested participants.
// Every requested participant appears in the result: the provider may omit
// users without events, which is normalized to an explicit empty list so
// they are never treated as unavailable.
func (s *TimeslotFinderService) FetchBusyTimes(
	ctx context.Context,
	participants []string,
	startDate, endDate time.Time,
	timezone string,
) (*entity.BusyTimes, error) {
	schedule, err := s.calendarClient.GetSchedule(ctx, participants, startDate, endDate, timezone)
	if err != nil {
		return nil, err
	}

	busyTimes := entity.NewBusyTimes()
	requested := make(map[string]bool, len(participants))
	for _, participant := range participants {
		busyTimes.Set(participant, schedule[participant])
		requested[participant] = true
	}

	// Keep extra entries the provider returned beyond what was requested,
	// in a stable order.
	extras := make([]string, 0)
	for participant := range schedule {
		if !requested[participant] {
			extras = append(extras, participant)
		}
	}
	sort.Strings(extras)
	for _, participant := range extras {
		busyTimes.Set(participant, schedule[participant])
	}

	logger.Debug("FetchBusyTimes:Normalized",
		"requested", len(participants),
		"participants", busyTimes.Len(),
	)

	return busyTimes, nil
}

// CalculateSlots runs the calculator on already-fetched busy data
func (s *TimeslotFinderService) CalculateSlots(
	startDate, endDate time.Time,
	busyTimes *entity.BusyTimes,
	minDurationMinutes int,
) ([]entity.TimeSlot, error) {
	return s.calculator.FindAvailableSlots(startDate, endDate, busyTimes, minDurationMinutes)
}
