// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"probook/models"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
// The partial unique index on (professionalId, date, time) over live statuses
// is the invariant "no two live bookings share the same slot"; it is what
// makes booking creation an atomic reservation.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Atomic slot reservation: only one live booking per professional+date+time
		{
			Keys: bson.D{
				{Key: "professionalId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_live_slot").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": models.LiveStatuses},
				}),
		},
		// Compound index for professionalId and date (primary query pattern)
		{
			Keys:    bson.D{{Key: "professionalId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("professional_date_idx"),
		},
		// Compound index for professionalId + status dashboards
		{
			Keys:    bson.D{{Key: "professionalId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("professional_status_idx"),
		},
		// Customer-side lookups
		{
			Keys:    bson.D{{Key: "customerEmail", Value: 1}},
			Options: options.Index().SetName("customer_email_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
