package service

import (
	"sort"
	"time"

	"timeslotfinder/modules/slots/entity"
)

// SlotCalculator computes shared free slots from busy times and a
// working-hours policy. It is a pure function of its inputs: no I/O, no
// shared state, safe for concurrent use.
//
// Algorithm:
//  1. Build the working block for every working day in the range, clipped
//     to the search bounds.
//  2. Invert each participant's busy time into free time, block by block.
//  3. Fold the participants' free-time lists into their intersection.
//  4. Merge overlapping or adjacent intervals, filter by minimum duration.
type SlotCalculator struct {
	workingHours *entity.WorkingHours
}

func NewSlotCalculator(workingHours *entity.WorkingHours) *SlotCalculator {
	return &SlotCalculator{workingHours: workingHours}
}

// FindAvailableSlots returns every interval within [startDate, endDate] in
// which all participants in busyTimes are simultaneously free for at least
// minDurationMinutes. An empty busyTimes means there is nobody to schedule,
// so the result is empty.
func (c *SlotCalculator) FindAvailableSlots(
	startDate, endDate time.Time,
	busyTimes *entity.BusyTimes,
	minDurationMinutes int,
) ([]entity.TimeSlot, error) {
	if busyTimes == nil || busyTimes.Len() == 0 {
		return nil, nil
	}

	participants := busyTimes.Participants()

	workingBlocks := c.workingBlocks(startDate, endDate)
	if len(workingBlocks) == 0 {
		return nil, nil
	}

	// Free time per participant, folded into the common intersection in
	// presentation order. Intersection over interval sets is commutative,
	// the fixed order only keeps runs reproducible.
	var common []entity.TimeRange
	for i, email := range participants {
		free := invertBusyToFree(workingBlocks, busyTimes.Ranges(email))
		if i == 0 {
			common = free
		} else {
			common = intersectRangeLists(common, free)
		}
		if len(common) == 0 {
			return nil, nil
		}
	}

	slots := make([]entity.TimeSlot, 0, len(common))
	for _, tr := range common {
		if tr.DurationMinutes() < minDurationMinutes {
			continue
		}
		slots = append(slots, entity.TimeSlot{
			TimeRange:    tr,
			Participants: participants,
		})
	}

	return slots, nil
}

// workingBlocks derives the clipped working block for each day of the
// search window. Days are walked in the policy timezone from the start of
// the first day through endDate inclusive.
func (c *SlotCalculator) workingBlocks(startDate, endDate time.Time) []entity.TimeRange {
	loc := c.workingHours.Location()

	var blocks []entity.TimeRange

	current := startOfDay(startDate.In(loc))
	for !current.After(endDate) {
		if block, ok := c.workingHours.WorkingRangeFor(current); ok {
			if clipped, ok := clipToBounds(block, startDate, endDate); ok {
				blocks = append(blocks, clipped)
			}
		}
		current = current.AddDate(0, 0, 1)
	}

	return blocks
}

// clipToBounds trims a range to [minBound, maxBound]; a range entirely
// outside the bounds is dropped.
func clipToBounds(tr entity.TimeRange, minBound, maxBound time.Time) (entity.TimeRange, bool) {
	if !tr.End().After(minBound) || !tr.Start().Before(maxBound) {
		return entity.TimeRange{}, false
	}

	start := tr.Start()
	if minBound.After(start) {
		start = minBound
	}
	end := tr.End()
	if maxBound.Before(end) {
		end = maxBound
	}

	clipped, err := entity.NewTimeRange(start, end)
	if err != nil {
		return entity.TimeRange{}, false
	}
	return clipped, true
}

// invertBusyToFree subtracts busy intervals from the working blocks,
// block by block. Subtracting per day keeps a non-working gap between two
// blocks from turning into a fabricated cross-day free interval.
func invertBusyToFree(workingBlocks []entity.TimeRange, busy []entity.TimeRange) []entity.TimeRange {
	sortedBusy := make([]entity.TimeRange, len(busy))
	copy(sortedBusy, busy)
	sort.Slice(sortedBusy, func(i, j int) bool {
		return sortedBusy[i].Start().Before(sortedBusy[j].Start())
	})

	var free []entity.TimeRange
	for _, block := range workingBlocks {
		free = append(free, subtractBusyFromBlock(block, sortedBusy)...)
	}
	return free
}

// subtractBusyFromBlock walks a cursor through one working block and emits
// the gaps between busy intervals.
//
// Working 09:00-17:00 with busy [10:00-11:00, 14:00-15:00] yields
// [09:00-10:00, 11:00-14:00, 15:00-17:00].
func subtractBusyFromBlock(block entity.TimeRange, sortedBusy []entity.TimeRange) []entity.TimeRange {
	var free []entity.TimeRange

	cursor := block.Start()
	for _, busy := range sortedBusy {
		if !block.Overlaps(busy) {
			continue
		}

		// Clip the busy interval to the block bounds.
		busyStart := busy.Start()
		if block.Start().After(busyStart) {
			busyStart = block.Start()
		}
		busyEnd := busy.End()
		if block.End().Before(busyEnd) {
			busyEnd = block.End()
		}

		if cursor.Before(busyStart) {
			if tr, err := entity.NewTimeRange(cursor, busyStart); err == nil {
				free = append(free, tr)
			}
		}

		if busyEnd.After(cursor) {
			cursor = busyEnd
		}
	}

	if cursor.Before(block.End()) {
		if tr, err := entity.NewTimeRange(cursor, block.End()); err == nil {
			free = append(free, tr)
		}
	}

	return free
}

// intersectRangeLists returns every overlap between any range of a and any
// range of b, merged afterwards.
func intersectRangeLists(a, b []entity.TimeRange) []entity.TimeRange {
	var intersections []entity.TimeRange
	for _, ra := range a {
		for _, rb := range b {
			if common, ok := ra.Intersect(rb); ok {
				intersections = append(intersections, common)
			}
		}
	}
	return mergeAdjacentRanges(intersections)
}

// mergeAdjacentRanges merges overlapping or touching intervals.
// [09:00-10:00, 10:00-11:00] becomes [09:00-11:00].
func mergeAdjacentRanges(ranges []entity.TimeRange) []entity.TimeRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := make([]entity.TimeRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start().Before(sorted[j].Start())
	})

	merged := []entity.TimeRange{sorted[0]}
	for _, current := range sorted[1:] {
		last := merged[len(merged)-1]

		if current.Start().After(last.End()) {
			merged = append(merged, current)
			continue
		}

		end := last.End()
		if current.End().After(end) {
			end = current.End()
		}
		extended, err := entity.NewTimeRange(last.Start(), end)
		if err != nil {
			continue
		}
		merged[len(merged)-1] = extended
	}

	return merged
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
