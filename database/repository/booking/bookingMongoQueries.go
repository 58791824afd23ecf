package bookingRepo

import (
	"errors"
	"fmt"
	"time"

	"bookly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindConflict returns a confirmed booking for the business that overlaps the
// given half-open slot, or nil when the slot is free. Overlap is
// start < slotEnd && end > slotStart.
func (r *MongoBookingRepo) FindConflict(businessID string, slot models.TimeSlot) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"status":      models.BookingConfirmed,
		"slot.start":  bson.M{"$lt": slot.End},
		"slot.end":    bson.M{"$gt": slot.Start},
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding conflicting booking: %w", err)
	}
	return &booking, nil
}

// CountConfirmedSince counts confirmed bookings created at or after the given
// instant. The caller supplies the start of the current quota period.
func (r *MongoBookingRepo) CountConfirmedSince(businessID string, since time.Time) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"status":      models.BookingConfirmed,
		"created_at":  bson.M{"$gte": since},
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting confirmed bookings: %w", err)
	}
	return int(n), nil
}

// ListConfirmedInWindow returns confirmed bookings whose slots overlap
// [from, to), ordered by slot start.
func (r *MongoBookingRepo) ListConfirmedInWindow(businessID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"business_id": businessID,
		"status":      models.BookingConfirmed,
		"slot.start":  bson.M{"$lt": to},
		"slot.end":    bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "slot.start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing confirmed bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListByUser returns all bookings made by the given user, newest first.
func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	return r.list(bson.M{"user_id": userID})
}

// ListByBusiness returns all bookings held against the given business,
// newest first.
func (r *MongoBookingRepo) ListByBusiness(businessID string) ([]models.Booking, error) {
	return r.list(bson.M{"business_id": businessID})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
