package models

import "time"

// BookingStatus is the lifecycle state of a booking. The only transition is
// Confirmed -> Cancelled; cancelled is terminal and records are never deleted.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingPending   BookingStatus = "Pending"
)

// TimeSlot is a half-open interval [Start, End).
type TimeSlot struct {
	Start time.Time `bson:"start" json:"startTime"`
	End   time.Time `bson:"end" json:"endTime"`
}

// Overlaps reports whether two half-open intervals intersect:
// startA < endB && endA > startB.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End) && s.End.After(other.Start)
}

// Duration returns the length of the slot.
func (s TimeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Booking represents a reservation of one slot with one business.
// BusinessID, ServiceID and UserID are denormalized onto the record for
// filtering. CreatedAt anchors quota accounting, not the slot time.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	UserID     string        `bson:"user_id" json:"userId"`
	BusinessID string        `bson:"business_id" json:"businessId"`
	ServiceID  string        `bson:"service_id" json:"serviceId"`
	Slot       TimeSlot      `bson:"slot" json:"slot"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
}

// AvailableSlot is one bookable interval offered to a client, with a
// display label such as "9:00 AM - 9:30 AM".
type AvailableSlot struct {
	Slot  TimeSlot `json:"slot"`
	Label string   `json:"label"`
}
