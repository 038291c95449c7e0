package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"probook/config"
	"probook/database"
	"probook/models"
)

// MongoAvailabilityRepo is the MongoDB implementation of AvailabilityRepository.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a repo backed by the "availability" collection.
func NewMongoAvailabilityRepo() *MongoAvailabilityRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAvailabilityRepo{coll: db.Collection("availability")}
}

// GetDay returns the configured slots for one date of one professional.
func (repo *MongoAvailabilityRepo) GetDay(ctx context.Context, professionalID, date string) ([]string, bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Availability
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"professionalId": professionalID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error fetching availability for %s: %w", professionalID, err)
	}

	slots, ok := doc.Days[date]
	if !ok {
		return nil, false, nil
	}
	return slots, true, nil
}

// SetDay upserts the configured grid for one date.
func (repo *MongoAvailabilityRepo) SetDay(ctx context.Context, professionalID, date string, slots []string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professionalId": professionalID}
	update := bson.M{"$set": bson.M{"days." + date: slots}}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update, opts); err != nil {
		return fmt.Errorf("error setting availability for %s on %s: %w", professionalID, date, err)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the availability collection.
func (repo *MongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "professionalId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_professional"),
	})
	if err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
