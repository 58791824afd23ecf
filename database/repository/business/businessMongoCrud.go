package businessRepo

import (
	"errors"
	"fmt"
	"time"

	"bookly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a business document by its ID.
func (r *MongoBusinessRepo) GetByID(id string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("business %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching business with id %s: %w", id, err)
	}
	return &business, nil
}

// GetAll retrieves all business documents.
func (r *MongoBusinessRepo) GetAll() ([]models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var businesses []models.Business
	if err := cursor.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("error decoding businesses: %w", err)
	}
	return businesses, nil
}

// GetByOwner retrieves the business owned by the given user.
func (r *MongoBusinessRepo) GetByOwner(ownerID string) (*models.Business, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var business models.Business
	filter := bson.M{"owner_id": ownerID}
	if err := r.coll.FindOne(ctx, filter).Decode(&business); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("business owned by %s: %w", ownerID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching business owned by %s: %w", ownerID, err)
	}
	return &business, nil
}

// Create inserts a new business document.
func (r *MongoBusinessRepo) Create(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// Update modifies an existing business document.
func (r *MongoBusinessRepo) Update(business *models.Business) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	business.UpdatedAt = time.Now()
	filter := bson.M{"id": business.ID}
	update := bson.M{"$set": business}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update business with id %s: %w", business.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business %s: %w", business.ID, ErrNotFound)
	}
	return nil
}

// Count returns the number of business documents.
func (r *MongoBusinessRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return n, nil
}
