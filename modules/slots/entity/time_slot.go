package entity

// TimeSlot is a found free interval together with the participants it
// applies to. A slot is only emitted when every requested participant
// is free for its whole range.
type TimeSlot struct {
	TimeRange    TimeRange `json:"time_range"`
	Participants []string  `json:"participants"`
}
