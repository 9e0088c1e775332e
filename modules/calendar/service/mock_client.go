package service

import (
	"context"
	"time"

	"timeslotfinder/core/logger"
	"timeslotfinder/modules/slots/entity"
)

// MockCalendarClient serves a fixed busy-time scenario so the whole
// pipeline can run without Graph credentials.
type MockCalendarClient struct{}

func NewMockCalendarClient() *MockCalendarClient {
	return &MockCalendarClient{}
}

func (m *MockCalendarClient) GetSchedule(ctx context.Context, emails []string, start, end time.Time, timezone string) (map[string][]entity.TimeRange, error) {
	loc := start.Location()
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			loc = parsed
		}
	}

	tomorrow := time.Now().In(loc).AddDate(0, 0, 1)
	day := func(h, min int) time.Time {
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), h, min, 0, 0, loc)
	}

	window, err := entity.NewTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]entity.TimeRange, len(emails))
	for i, email := range emails {
		var blocks []entity.TimeRange
		switch i {
		case 0:
			blocks = mockRanges(day(9, 0), day(11, 0))
		case 1:
			blocks = mockRanges(day(10, 0), day(12, 0))
		default:
			blocks = append(
				mockRanges(day(13, 0), day(14, 0)),
				mockRanges(day(15, 0), day(16, 0))...,
			)
		}

		var busy []entity.TimeRange
		for _, block := range blocks {
			if block.Overlaps(window) {
				busy = append(busy, block)
			}
		}
		result[email] = busy
	}

	logger.Info("MockCalendarClient:GetSchedule", "participants", len(emails))
	return result, nil
}

func mockRanges(start, end time.Time) []entity.TimeRange {
	r, err := entity.NewTimeRange(start, end)
	if err != nil {
		return nil
	}
	return []entity.TimeRange{r}
}

// MockTokenProvider satisfies TokenProvider without any real auth
type MockTokenProvider struct{}

func (MockTokenProvider) AccessToken(ctx context.Context) (string, error) {
	return "mock-token", nil
}
