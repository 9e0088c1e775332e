package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"timeslotfinder/core/errors"
	"timeslotfinder/core/logger"
	"timeslotfinder/modules/calendar/dto"
	"timeslotfinder/modules/slots/entity"
)

const graphAPIEndpoint = "https://graph.microsoft.com/v1.0"

// availabilityViewInterval is the granularity Graph uses for the
// availability view string; schedule items are unaffected.
const availabilityViewInterval = 60

// busyStatuses are the schedule-item statuses counted as busy time
var busyStatuses = map[string]bool{
	"busy":             true,
	"tentative":        true,
	"oof":              true,
	"workingelsewhere": true,
}

// TokenProvider supplies a valid Graph access token
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// GraphClient fetches free/busy information from the Microsoft Graph
// /me/calendar/getSchedule endpoint. It implements the slots module's
// CalendarClient capability.
type GraphClient struct {
	tokens     TokenProvider
	httpClient *http.Client
	baseURL    string
}

func NewGraphClient(tokens TokenProvider, timeout time.Duration) *GraphClient {
	return &GraphClient{
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    graphAPIEndpoint,
	}
}

// NewGraphClientWithBaseURL is used by tests to point at a fake server
func NewGraphClientWithBaseURL(tokens TokenProvider, timeout time.Duration, baseURL string) *GraphClient {
	c := NewGraphClient(tokens, timeout)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// GetSchedule returns busy intervals per email for the given window. All
// instants are converted into the requested timezone.
func (c *GraphClient) GetSchedule(
	ctx context.Context,
	emails []string,
	start, end time.Time,
	timezone string,
) (map[string][]entity.TimeRange, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCalendarUpstream, "Failed to acquire Graph access token", err)
	}

	// Graph wants wall time plus a separate timeZone field, no offset.
	const graphLayout = "2006-01-02T15:04:05"
	payload := dto.GetScheduleRequest{
		Schedules: emails,
		StartTime: dto.DateTimeTimeZone{
			DateTime: start.Format(graphLayout),
			TimeZone: timezone,
		},
		EndTime: dto.DateTimeTimeZone{
			DateTime: end.Format(graphLayout),
			TimeZone: timezone,
		},
		AvailabilityViewInterval: availabilityViewInterval,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/me/calendar/getSchedule"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCalendarUpstream, "Failed to fetch schedule from Microsoft Graph", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, errors.NewAppError(
			errors.ErrCalendarUpstream,
			fmt.Sprintf("Microsoft Graph returned status %d: %s", resp.StatusCode, string(raw)),
			nil,
		)
	}

	var data dto.GetScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.NewAppError(errors.ErrCalendarUpstream, "Failed to parse Graph schedule response", err)
	}

	return parseScheduleResponse(data, timezone)
}

// parseScheduleResponse maps the Graph response into busy ranges per email.
// Items that cannot be parsed are logged and skipped rather than failing
// the whole schedule.
func parseScheduleResponse(data dto.GetScheduleResponse, timezone string) (map[string][]entity.TimeRange, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}

	busyTimes := make(map[string][]entity.TimeRange, len(data.Value))

	for _, schedule := range data.Value {
		email := schedule.ScheduleID
		busyRanges := make([]entity.TimeRange, 0, len(schedule.ScheduleItems))

		for _, item := range schedule.ScheduleItems {
			if !busyStatuses[strings.ToLower(item.Status)] {
				continue
			}

			start, err := parseGraphDateTime(item.Start.DateTime, loc)
			if err != nil {
				logger.Warn("GraphClient:SkipScheduleItem", "email", email, "error", err)
				continue
			}
			end, err := parseGraphDateTime(item.End.DateTime, loc)
			if err != nil {
				logger.Warn("GraphClient:SkipScheduleItem", "email", email, "error", err)
				continue
			}

			tr, err := entity.NewTimeRange(start, end)
			if err != nil {
				logger.Warn("GraphClient:SkipScheduleItem", "email", email, "error", err)
				continue
			}
			busyRanges = append(busyRanges, tr)
		}

		busyTimes[email] = busyRanges
	}

	return busyTimes, nil
}

// parseGraphDateTime parses Graph's datetime strings. Graph omits the
// offset on getSchedule items and returns wall time in the requested
// timezone, with up to seven fractional digits.
func parseGraphDateTime(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}

	layouts := []string{
		"2006-01-02T15:04:05.9999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("could not parse datetime %q", value)
}

// TestConnection verifies authentication by fetching the user profile
func (c *GraphClient) TestConnection(ctx context.Context) (*dto.UserProfile, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCalendarUpstream, "Failed to acquire Graph access token", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCalendarUpstream, "Connection test failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(
			errors.ErrCalendarUpstream,
			fmt.Sprintf("Connection test failed with status %d", resp.StatusCode),
			nil,
		)
	}

	var profile dto.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
