package booking

import (
	"sync"
	"testing"
	"time"

	"bookly/models"
)

// monday 2026-03-02 is a Monday; tests reserve in the middle of the month so
// the quota window never straddles the calls.
var (
	monday  = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	testNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)
)

func testBusiness(plan models.Plan, quota int) models.Business {
	b := models.Business{
		ID:                  "biz1",
		OwnerID:             "owner1",
		Name:                "Fresh Cuts Salon",
		Plan:                plan,
		MonthlyBookingQuota: quota,
		Services: []models.Service{
			{ID: "svc30", Name: "Haircut", DurationMinutes: 30},
		},
	}
	b.Availability[time.Monday] = models.DayWindow{Open: true, Start: 9 * 60, End: 17 * 60}
	return b
}

func newTestEngine(businesses ...models.Business) (*DefaultBookingService, *fakeLedger) {
	ledger := &fakeLedger{}
	engine := NewBookingService(ledger, newFakeBusinessRepo(businesses...))
	engine.Clock = func() time.Time { return testNow }
	return engine, ledger
}

func slotAt(hour, min, durationMinutes int) models.TimeSlot {
	start := monday.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	return models.TimeSlot{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}
}

func TestReserveCommitsConfirmedBooking(t *testing.T) {
	engine, ledger := newTestEngine(testBusiness(models.PlanPremium, 0))

	booking, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 30))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if booking.Status != models.BookingConfirmed {
		t.Errorf("status = %s, want Confirmed", booking.Status)
	}
	if booking.ID == "" {
		t.Error("booking has no id")
	}
	if !booking.CreatedAt.Equal(testNow) {
		t.Errorf("createdAt = %s, want clock time", booking.CreatedAt)
	}
	if got := len(ledger.confirmed()); got != 1 {
		t.Errorf("ledger holds %d confirmed bookings, want 1", got)
	}
}

func TestReserveUnknownBusiness(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	_, err := engine.Reserve("client1", "nope", "svc30", slotAt(10, 0, 30))
	if CodeOf(err) != CodeNotFound {
		t.Fatalf("expected notFound, got %v", err)
	}
}

func TestReserveUnknownService(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	_, err := engine.Reserve("client1", "biz1", "nope", slotAt(10, 0, 30))
	if CodeOf(err) != CodeNotFound {
		t.Fatalf("expected notFound, got %v", err)
	}
}

func TestReserveDurationMismatch(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	// 45-minute slot for a 30-minute service.
	_, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 45))
	if CodeOf(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput, got %v", err)
	}

	// Inverted interval.
	inverted := models.TimeSlot{Start: monday.Add(11 * time.Hour), End: monday.Add(10 * time.Hour)}
	_, err = engine.Reserve("client1", "biz1", "svc30", inverted)
	if CodeOf(err) != CodeInvalidInput {
		t.Fatalf("expected invalidInput for inverted slot, got %v", err)
	}
}

func TestReserveSlotConflict(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 30)); err != nil {
		t.Fatalf("first Reserve failed: %v", err)
	}
	// Overlapping request from another client.
	_, err := engine.Reserve("client2", "biz1", "svc30", slotAt(10, 15, 30))
	if CodeOf(err) != CodeSlotConflict {
		t.Fatalf("expected slotConflict, got %v", err)
	}
	// Adjacent half-open interval is fine.
	if _, err := engine.Reserve("client2", "biz1", "svc30", slotAt(10, 30, 30)); err != nil {
		t.Fatalf("adjacent Reserve failed: %v", err)
	}
}

func TestReserveIgnoresCancelledBookings(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	first, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 30))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if _, err := engine.Cancel(first.ID, "client1"); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if _, err := engine.Reserve("client2", "biz1", "svc30", slotAt(10, 0, 30)); err != nil {
		t.Fatalf("Reserve over a cancelled booking failed: %v", err)
	}
}

func TestReserveQuotaBoundary(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 2))

	if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(9, 0, 30)); err != nil {
		t.Fatalf("booking 1 failed: %v", err)
	}
	if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(11, 0, 30)); err != nil {
		t.Fatalf("booking 2 failed: %v", err)
	}
	_, err := engine.Reserve("client1", "biz1", "svc30", slotAt(13, 0, 30))
	if CodeOf(err) != CodeQuotaExceeded {
		t.Fatalf("expected quotaExceeded on booking 3, got %v", err)
	}
}

func TestReserveQuotaCheckedBeforeConflict(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 1))

	if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(9, 0, 30)); err != nil {
		t.Fatalf("booking 1 failed: %v", err)
	}
	// The slot is also taken, but quota exhaustion is reported first.
	_, err := engine.Reserve("client2", "biz1", "svc30", slotAt(9, 0, 30))
	if CodeOf(err) != CodeQuotaExceeded {
		t.Fatalf("expected quotaExceeded, got %v", err)
	}
}

func TestReservePremiumSkipsQuota(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanPremium, 1))

	for i := 0; i < 5; i++ {
		if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(9+i, 0, 30)); err != nil {
			t.Fatalf("booking %d failed: %v", i+1, err)
		}
	}
}

func TestReserveQuotaWindowIsCurrentMonth(t *testing.T) {
	engine, ledger := newTestEngine(testBusiness(models.PlanFree, 1))

	// A booking created last month does not count against this month.
	ledger.seed(models.Booking{
		ID:         "old",
		UserID:     "client1",
		BusinessID: "biz1",
		ServiceID:  "svc30",
		Slot:       slotAt(9, 0, 30),
		Status:     models.BookingConfirmed,
		CreatedAt:  testNow.AddDate(0, -1, 0),
	})

	if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(11, 0, 30)); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	_, err := engine.Reserve("client1", "biz1", "svc30", slotAt(13, 0, 30))
	if CodeOf(err) != CodeQuotaExceeded {
		t.Fatalf("expected quotaExceeded, got %v", err)
	}
}

func TestConcurrentReservesSameSlot(t *testing.T) {
	engine, ledger := newTestEngine(testBusiness(models.PlanPremium, 0))

	const callers = 16
	slot := slotAt(10, 0, 30)

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Reserve("client1", "biz1", "svc30", slot)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case CodeOf(err) == CodeSlotConflict:
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("%d reserves succeeded, want exactly 1", successes)
	}
	if conflicts != callers-1 {
		t.Errorf("%d reserves conflicted, want %d", conflicts, callers-1)
	}

	// The ledger invariant: no two confirmed bookings overlap.
	confirmed := ledger.confirmed()
	for i := range confirmed {
		for j := i + 1; j < len(confirmed); j++ {
			if confirmed[i].Slot.Overlaps(confirmed[j].Slot) {
				t.Fatalf("confirmed bookings %s and %s overlap", confirmed[i].ID, confirmed[j].ID)
			}
		}
	}
}

func TestCancelIdempotent(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	booking, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 30))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	first, err := engine.Cancel(booking.ID, "client1")
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if first.Status != models.BookingCancelled {
		t.Errorf("status = %s, want Cancelled", first.Status)
	}

	second, err := engine.Cancel(booking.ID, "client1")
	if err != nil {
		t.Fatalf("second Cancel errored: %v", err)
	}
	if second.Status != models.BookingCancelled {
		t.Errorf("re-cancel status = %s, want Cancelled", second.Status)
	}
}

func TestCancelNotFound(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	_, err := engine.Cancel("missing", "client1")
	if CodeOf(err) != CodeNotFound {
		t.Fatalf("expected notFound, got %v", err)
	}
}

func TestCancelAuthorization(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	booking, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 30))
	if err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	// A stranger may not cancel.
	if _, err := engine.Cancel(booking.ID, "client2"); CodeOf(err) != CodeForbidden {
		t.Fatalf("expected forbidden for stranger, got %v", err)
	}
	// The business owner may.
	if _, err := engine.Cancel(booking.ID, "owner1"); err != nil {
		t.Fatalf("owner Cancel failed: %v", err)
	}
}

func TestListAvailableSlotsExcludesReserved(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	before, err := engine.ListAvailableSlots("biz1", "svc30", monday)
	if err != nil {
		t.Fatalf("ListAvailableSlots failed: %v", err)
	}
	if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 30)); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	after, err := engine.ListAvailableSlots("biz1", "svc30", monday)
	if err != nil {
		t.Fatalf("ListAvailableSlots failed: %v", err)
	}

	if len(after) >= len(before) {
		t.Fatalf("slot count did not shrink: before %d, after %d", len(before), len(after))
	}
	taken := slotAt(10, 0, 30)
	for _, s := range after {
		if s.Overlaps(taken) {
			t.Errorf("slot [%s, %s) overlaps the reserved interval", s.Start, s.End)
		}
	}
}

func TestListBookingsForBusinessOwnerOnly(t *testing.T) {
	engine, _ := newTestEngine(testBusiness(models.PlanFree, 10))

	if _, err := engine.Reserve("client1", "biz1", "svc30", slotAt(10, 0, 30)); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}

	if _, err := engine.ListBookingsForBusiness("biz1", "client1"); CodeOf(err) != CodeForbidden {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	bookings, err := engine.ListBookingsForBusiness("biz1", "owner1")
	if err != nil {
		t.Fatalf("owner listing failed: %v", err)
	}
	if len(bookings) != 1 {
		t.Errorf("owner sees %d bookings, want 1", len(bookings))
	}
}
