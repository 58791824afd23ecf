package availability

import (
	"time"

	"bookly/models"
)

// SlotStepMinutes is the quantization of candidate start times. It is fixed
// and independent of service duration.
const SlotStepMinutes = 15

// GenerateSlots produces the ordered sequence of bookable start times for a
// business on a calendar date, for a service of the given duration. Candidate
// starts step through the day's open window in 15-minute increments; a
// candidate survives when the whole [start, start+duration) interval fits the
// window and overlaps none of the busy intervals.
//
// The window's minutes-from-midnight bounds are anchored onto the date's
// calendar day in the date's location. Closed days and non-positive durations
// yield an empty sequence. The result is recomputed fresh on every call.
func GenerateSlots(business *models.Business, date time.Time, durationMinutes int, busy []models.TimeSlot) []models.TimeSlot {
	if durationMinutes <= 0 {
		return nil
	}
	window, open := Window(business, date.Weekday())
	if !open {
		return nil
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	windowEnd := midnight.Add(time.Duration(window.End) * time.Minute)
	duration := time.Duration(durationMinutes) * time.Minute

	var slots []models.TimeSlot
	for startMin := window.Start; ; startMin += SlotStepMinutes {
		start := midnight.Add(time.Duration(startMin) * time.Minute)
		candidate := models.TimeSlot{Start: start, End: start.Add(duration)}
		// The candidate end only grows, so the first overflow ends the scan.
		if candidate.End.After(windowEnd) {
			break
		}
		if overlapsAny(candidate, busy) {
			continue
		}
		slots = append(slots, candidate)
	}
	return slots
}

func overlapsAny(slot models.TimeSlot, busy []models.TimeSlot) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}
