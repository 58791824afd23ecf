// Package seed loads the demo data set on first start so a fresh deployment
// has businesses to browse and accounts to log in with. It never touches a
// non-empty collection.
package seed

import (
	"fmt"
	"time"

	businessRepo "bookly/database/repository/business"
	userRepo "bookly/database/repository/user"
	"bookly/models"
	"bookly/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// demo account password, bcrypt-hashed at seed time.
const demoPassword = "password123"

// Run inserts the demo users and businesses when the corresponding
// collections are empty.
func Run(users userRepo.UserRepository, businesses businessRepo.BusinessRepository) error {
	logger := utils.GetLogger()

	if n, err := users.Count(); err != nil {
		return fmt.Errorf("seed: counting users: %w", err)
	} else if n == 0 {
		for _, u := range demoUsers() {
			if err := users.Create(u); err != nil {
				return fmt.Errorf("seed: creating user %s: %w", u.ID, err)
			}
		}
		logger.Info("Seeded demo users")
	}

	if n, err := businesses.Count(); err != nil {
		return fmt.Errorf("seed: counting businesses: %w", err)
	} else if n == 0 {
		for _, b := range demoBusinesses() {
			if err := businesses.Create(b); err != nil {
				return fmt.Errorf("seed: creating business %s: %w", b.ID, err)
			}
		}
		logger.Info("Seeded demo businesses", zap.Int("count", len(demoBusinesses())))
	}

	return nil
}

func demoUsers() []*models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("seed: hashing demo password: %v", err))
	}
	return []*models.User{
		{
			ID:           "client1",
			Name:         "Alice Johnson",
			Email:        "alice@example.com",
			Role:         models.RoleClient,
			PasswordHash: string(hash),
		},
		{
			ID:           "owner1",
			Name:         "Bob Smith",
			Email:        "bob@example.com",
			Role:         models.RoleBusinessOwner,
			BusinessID:   "biz1",
			PasswordHash: string(hash),
		},
	}
}

func demoBusinesses() []*models.Business {
	return []*models.Business{
		{
			ID:                  "biz1",
			OwnerID:             "owner1",
			Name:                "The Gourmet Place",
			Category:            "Restaurant",
			Address:             "123 Foodie Lane, Flavor Town",
			Description:         "Exquisite dining experience with a modern twist on classic cuisine. Perfect for special occasions.",
			ImageURL:            "https://picsum.photos/seed/restaurant/800/600",
			Rating:              4.5,
			Plan:                models.PlanPremium,
			MonthlyBookingQuota: 0, // unenforced on PREMIUM
			Services: []models.Service{
				{ID: "serv1-1", Name: "Table Reservation", Description: "A table for your dining experience.", DurationMinutes: 90},
			},
			Availability: weekly(map[time.Weekday][2]string{
				time.Monday:    {"17:00", "22:00"},
				time.Tuesday:   {"17:00", "22:00"},
				time.Wednesday: {"17:00", "22:00"},
				time.Thursday:  {"17:00", "22:00"},
				time.Friday:    {"17:00", "23:00"},
				time.Saturday:  {"17:00", "23:00"},
			}),
		},
		{
			ID:                  "biz2",
			OwnerID:             "owner2-temp",
			Name:                "City Central Clinic",
			Category:            "Medical Clinic",
			Address:             "456 Health Ave, Wellness City",
			Description:         "Comprehensive medical services with state-of-the-art facilities and experienced doctors.",
			ImageURL:            "https://picsum.photos/seed/doctor/800/600",
			Rating:              4.8,
			Plan:                models.PlanFree,
			MonthlyBookingQuota: 10,
			Services: []models.Service{
				{ID: "serv2-1", Name: "Regular Check-up", Description: "A standard consultation with a doctor.", DurationMinutes: 20},
				{ID: "serv2-2", Name: "Follow-up Visit", Description: "A follow-up appointment.", DurationMinutes: 15},
			},
			Availability: weekly(map[time.Weekday][2]string{
				time.Monday:    {"09:00", "17:00"},
				time.Tuesday:   {"09:00", "17:00"},
				time.Wednesday: {"09:00", "17:00"},
				time.Thursday:  {"09:00", "17:00"},
				time.Friday:    {"09:00", "13:00"},
			}),
		},
		{
			ID:                  "biz3",
			OwnerID:             "owner3-temp",
			Name:                "Fresh Cuts Salon",
			Category:            "Hair Salon",
			Address:             "789 Style St, Glamour Ville",
			Description:         "Trendy haircuts, vibrant colors, and relaxing treatments from our expert stylists.",
			ImageURL:            "https://picsum.photos/seed/hair/800/600",
			Rating:              3.9,
			Plan:                models.PlanFree,
			MonthlyBookingQuota: 10,
			Services: []models.Service{
				{ID: "serv3-1", Name: "Men's Haircut", Description: "Classic men's haircut and style.", DurationMinutes: 30},
				{ID: "serv3-2", Name: "Women's Haircut", Description: "Shampoo, cut, and blow-dry.", DurationMinutes: 60},
				{ID: "serv3-3", Name: "Hair Coloring", Description: "Full hair coloring service. Price varies.", DurationMinutes: 120},
			},
			Availability: weekly(map[time.Weekday][2]string{
				time.Tuesday:   {"10:00", "19:00"},
				time.Wednesday: {"10:00", "19:00"},
				time.Thursday:  {"10:00", "20:00"},
				time.Friday:    {"10:00", "20:00"},
				time.Saturday:  {"09:00", "18:00"},
			}),
		},
	}
}

// weekly builds a WeeklyAvailability from "HH:MM" window pairs; weekdays not
// present stay closed.
func weekly(days map[time.Weekday][2]string) models.WeeklyAvailability {
	var avail models.WeeklyAvailability
	for day, window := range days {
		start, err := utils.ParseClock(window[0])
		if err != nil {
			panic(fmt.Sprintf("seed: %v", err))
		}
		end, err := utils.ParseClock(window[1])
		if err != nil {
			panic(fmt.Sprintf("seed: %v", err))
		}
		avail[day] = models.DayWindow{Open: true, Start: start, End: end}
	}
	return avail
}
