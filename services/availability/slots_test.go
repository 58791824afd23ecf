package availability

import (
	"testing"
	"time"

	"bookly/models"
)

// monday 2026-03-02 is a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func openBusiness(day time.Weekday, start, end int) *models.Business {
	b := &models.Business{ID: "biz-test"}
	b.Availability[day] = models.DayWindow{Open: true, Start: start, End: end}
	return b
}

func at(hour, min int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func TestGenerateSlotsFullDay(t *testing.T) {
	// Open Monday 09:00-17:00, 30-minute service, no existing bookings:
	// every 15-minute-stepped start from 09:00 through 16:30 inclusive.
	b := openBusiness(time.Monday, 9*60, 17*60)

	slots := GenerateSlots(b, monday, 30, nil)
	if len(slots) != 31 {
		t.Fatalf("expected 31 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(9, 0)) {
		t.Errorf("first slot starts %s, want 09:00", slots[0].Start)
	}
	if !slots[len(slots)-1].Start.Equal(at(16, 30)) {
		t.Errorf("last slot starts %s, want 16:30", slots[len(slots)-1].Start)
	}
	for i, s := range slots {
		if s.Duration() != 30*time.Minute {
			t.Errorf("slot %d has duration %v, want 30m", i, s.Duration())
		}
		if s.Start.Before(at(9, 0)) || s.End.After(at(17, 0)) {
			t.Errorf("slot %d [%s, %s) escapes the window", i, s.Start, s.End)
		}
		if i > 0 && !slots[i-1].Start.Before(s.Start) {
			t.Errorf("slot %d out of order", i)
		}
	}
}

func TestGenerateSlotsExcludesBookedIntervals(t *testing.T) {
	// One confirmed booking 10:00-10:30; for a 30-minute service the 09:45,
	// 10:00 and 10:15 starts are gone, 09:30 and 10:30 survive.
	b := openBusiness(time.Monday, 9*60, 17*60)
	busy := []models.TimeSlot{{Start: at(10, 0), End: at(10, 30)}}

	slots := GenerateSlots(b, monday, 30, busy)

	removed := []time.Time{at(9, 45), at(10, 0), at(10, 15)}
	kept := []time.Time{at(9, 30), at(10, 30)}

	starts := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		starts[s.Start.UTC()] = true
	}
	for _, want := range removed {
		if starts[want] {
			t.Errorf("start %s should have been excluded", want.Format("15:04"))
		}
	}
	for _, want := range kept {
		if !starts[want] {
			t.Errorf("start %s should have survived", want.Format("15:04"))
		}
	}
	if len(slots) != 31-len(removed) {
		t.Errorf("expected %d slots, got %d", 31-len(removed), len(slots))
	}
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	// Closed flag wins regardless of the window fields.
	b := &models.Business{ID: "biz-test"}
	b.Availability[time.Monday] = models.DayWindow{Open: false, Start: 9 * 60, End: 17 * 60}

	if slots := GenerateSlots(b, monday, 30, nil); len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %d", len(slots))
	}
}

func TestGenerateSlotsUnconfiguredDay(t *testing.T) {
	b := openBusiness(time.Tuesday, 9*60, 17*60)

	// Monday was never configured.
	if slots := GenerateSlots(b, monday, 30, nil); len(slots) != 0 {
		t.Fatalf("expected no slots on an unconfigured day, got %d", len(slots))
	}
}

func TestGenerateSlotsDurationLongerThanWindow(t *testing.T) {
	b := openBusiness(time.Monday, 9*60, 10*60)

	if slots := GenerateSlots(b, monday, 90, nil); len(slots) != 0 {
		t.Fatalf("expected no slots when the service outlasts the window, got %d", len(slots))
	}
}

func TestGenerateSlotsNonPositiveDuration(t *testing.T) {
	b := openBusiness(time.Monday, 9*60, 17*60)

	if slots := GenerateSlots(b, monday, 0, nil); len(slots) != 0 {
		t.Fatalf("expected no slots for zero duration, got %d", len(slots))
	}
	if slots := GenerateSlots(b, monday, -15, nil); len(slots) != 0 {
		t.Fatalf("expected no slots for negative duration, got %d", len(slots))
	}
}

func TestGenerateSlotsDurationNotMultipleOfStep(t *testing.T) {
	// 20-minute service in a 09:00-10:00 window: starts 09:00..09:40,
	// quantized every 15 minutes -> 09:00, 09:15, 09:30.
	b := openBusiness(time.Monday, 9*60, 10*60)

	slots := GenerateSlots(b, monday, 20, nil)
	want := []time.Time{at(9, 0), at(9, 15), at(9, 30)}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i, s := range slots {
		if !s.Start.Equal(want[i]) {
			t.Errorf("slot %d starts %s, want %s", i, s.Start, want[i])
		}
	}
}

func TestWindowClosedForZeroValue(t *testing.T) {
	b := &models.Business{ID: "biz-test"}
	if _, open := Window(b, time.Sunday); open {
		t.Fatal("zero-value day should read as closed")
	}
}
