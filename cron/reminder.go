// Package cron runs the background reminder queue. Reservations enqueue a
// task that fires shortly before the booked slot; the worker hands the text
// to a Notifier, keeping actual delivery outside the booking core.
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookly/config"
	bookingRepo "bookly/database/repository/booking"
	"bookly/models"
	"bookly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "booking:reminder"

type reminderPayload struct {
	BookingID string `json:"bookingId"`
}

// Notifier delivers a reminder to a user. Implementations live outside the
// booking core; LogNotifier is the default stand-in.
type Notifier interface {
	Notify(userID, title, body string) error
}

// LogNotifier writes reminders to the application log.
type LogNotifier struct{}

func (LogNotifier) Notify(userID, title, body string) error {
	utils.GetLogger().Info("Booking reminder",
		zap.String("userID", userID), zap.String("title", title), zap.String("body", body))
	return nil
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReminderScheduler enqueues reminder tasks for confirmed bookings.
type ReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler connects a task producer to the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	return &ReminderScheduler{client: asynq.NewClient(redisOpts()), lead: lead}
}

// ScheduleBookingReminder enqueues a reminder that fires before the slot
// starts. Bookings starting inside the lead window get no reminder.
func (s *ReminderScheduler) ScheduleBookingReminder(booking *models.Booking) error {
	fireAt := booking.Slot.Start.Add(-s.lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(reminderPayload{BookingID: booking.ID})
	if err != nil {
		return fmt.Errorf("marshalling reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("enqueueing reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(ledger bookingRepo.BookingRepository, notifier Notifier) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask(ledger, notifier))

	go func() {
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("Reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(ledger bookingRepo.BookingRepository, notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload reminderPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("decoding reminder payload: %w", err)
		}

		booking, err := ledger.GetByID(payload.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("fetching booking %s: %w", payload.BookingID, err)
		}
		// Cancelled since being scheduled: drop silently.
		if booking.Status != models.BookingConfirmed {
			return nil
		}

		body := fmt.Sprintf("Your appointment starts at %s.", booking.Slot.Start.Format("Mon Jan 2 15:04"))
		return notifier.Notify(booking.UserID, "Upcoming appointment", body)
	}
}
