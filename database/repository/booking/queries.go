package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"probook/models"
)

// List returns bookings matching the filter, most recent first.
func (repo *MongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.ProfessionalID != "" {
		query["professionalId"] = filter.ProfessionalID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.CustomerEmail != "" {
		query["customerEmail"] = filter.CustomerEmail
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.Booking
	if err := cursor.All(ctxWithTimeout, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ReservedTimes returns the slot labels held by live bookings for the given
// professional and date.
func (repo *MongoBookingRepo) ReservedTimes(ctx context.Context, professionalID, date string) ([]string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"professionalId": professionalID,
		"date":           date,
		"status":         bson.M{"$in": models.LiveStatuses},
	}
	cursor, err := repo.coll.Find(ctxWithTimeout, query,
		options.Find().SetProjection(bson.M{"time": 1}))
	if err != nil {
		return nil, fmt.Errorf("error fetching reserved slots: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var docs []struct {
		Time string `bson:"time"`
	}
	if err := cursor.All(ctxWithTimeout, &docs); err != nil {
		return nil, fmt.Errorf("error decoding reserved slots: %w", err)
	}

	times := make([]string, 0, len(docs))
	for _, d := range docs {
		times = append(times, d.Time)
	}
	return times, nil
}
