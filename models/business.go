package models

import "time"

// Plan is the subscription tier of a business. The monthly booking quota is
// enforced only for FREE businesses.
type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanPremium Plan = "PREMIUM"
)

// DayWindow describes one weekday's open hours. Start and End are minutes
// from midnight (e.g., 540 for 9:00 AM). End must be after Start when the
// day is open; overnight windows are not supported.
type DayWindow struct {
	Open  bool `bson:"open" json:"open"`
	Start int  `bson:"start" json:"start"`
	End   int  `bson:"end" json:"end"`
}

// WeeklyAvailability holds exactly one window per weekday, indexed by
// time.Weekday (Sunday = 0). A day the owner never configured is the zero
// DayWindow, which reads as closed.
type WeeklyAvailability [7]DayWindow

// Service is a bookable offering belonging to exactly one business.
type Service struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	Description     string `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"`
}

// Business represents a service provider with weekly open hours and an
// ordered list of offered services.
type Business struct {
	ID                  string             `bson:"id" json:"id"`
	OwnerID             string             `bson:"owner_id" json:"ownerId"`
	Name                string             `bson:"name" json:"name"`
	Category            string             `bson:"category" json:"category"`
	Address             string             `bson:"address" json:"address"`
	Description         string             `bson:"description" json:"description"`
	ImageURL            string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Rating              float64            `bson:"rating" json:"rating"`
	Plan                Plan               `bson:"plan" json:"plan"`
	MonthlyBookingQuota int                `bson:"monthlyBookingQuota" json:"monthlyBookingQuota"`
	Availability        WeeklyAvailability `bson:"availability" json:"availability"`
	Services            []Service          `bson:"services" json:"services"`
	CreatedAt           time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ServiceByID returns the service with the given id, or nil if the business
// does not offer it.
func (b *Business) ServiceByID(id string) *Service {
	for i := range b.Services {
		if b.Services[i].ID == id {
			return &b.Services[i]
		}
	}
	return nil
}
