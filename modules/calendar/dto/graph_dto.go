package dto

// Wire types for the Microsoft Graph getSchedule API.
// https://graph.microsoft.com/v1.0/me/calendar/getSchedule

// DateTimeTimeZone is Graph's dateTime + timeZone pair
type DateTimeTimeZone struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// GetScheduleRequest is the getSchedule request body
type GetScheduleRequest struct {
	Schedules                []string         `json:"schedules"`
	StartTime                DateTimeTimeZone `json:"startTime"`
	EndTime                  DateTimeTimeZone `json:"endTime"`
	AvailabilityViewInterval int              `json:"availabilityViewInterval"`
}

// ScheduleItem is one calendar entry in a schedule
type ScheduleItem struct {
	Status string           `json:"status"`
	Start  DateTimeTimeZone `json:"start"`
	End    DateTimeTimeZone `json:"end"`
}

// ScheduleInformation is the per-mailbox schedule
type ScheduleInformation struct {
	ScheduleID       string         `json:"scheduleId"`
	AvailabilityView string         `json:"availabilityView"`
	ScheduleItems    []ScheduleItem `json:"scheduleItems"`
}

// GetScheduleResponse is the getSchedule response body
type GetScheduleResponse struct {
	Value []ScheduleInformation `json:"value"`
}

// UserProfile is the subset of /me used by the connection test
type UserProfile struct {
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
}
