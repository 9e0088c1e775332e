package entity

// BusyTimes maps participant emails to their busy intervals while keeping
// the order participants were presented in. Go maps iterate in random
// order; the calculator folds participants in presentation order so that
// results are reproducible.
type BusyTimes struct {
	order  []string
	ranges map[string][]TimeRange
}

func NewBusyTimes() *BusyTimes {
	return &BusyTimes{
		ranges: make(map[string][]TimeRange),
	}
}

// Set records the busy ranges for a participant, appending the participant
// to the order on first sight. A nil ranges slice means "no busy time".
func (b *BusyTimes) Set(email string, busy []TimeRange) {
	if _, seen := b.ranges[email]; !seen {
		b.order = append(b.order, email)
	}
	b.ranges[email] = busy
}

// Ranges returns the busy intervals for a participant. An unknown
// participant yields nil, which downstream treats as fully free.
func (b *BusyTimes) Ranges(email string) []TimeRange {
	return b.ranges[email]
}

// Participants returns emails in presentation order
func (b *BusyTimes) Participants() []string {
	return b.order
}

// Len returns the number of participants
func (b *BusyTimes) Len() int {
	return len(b.order)
}
