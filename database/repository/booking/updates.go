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

// AdvanceStatus performs the lifecycle transition as a single conditional
// write: the filter pins the expected prior status, so a concurrent actor
// that already moved the booking makes this call a no-op (ErrNoMatch) rather
// than a lost update.
func (repo *MongoBookingRepo) AdvanceStatus(
	ctx context.Context,
	id string,
	from []models.BookingStatus,
	to models.BookingStatus,
	set map[string]interface{},
) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": from},
	}
	fields := bson.M{
		"status":    to,
		"updatedAt": time.Now(),
	}
	for k, v := range set {
		fields[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := repo.coll.FindOneAndUpdate(ctxWithTimeout, filter, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("error advancing booking %s to %s: %w", id, to, err)
	}
	return &updated, nil
}

// MarkPaid records payment with the preconditions in the filter itself:
// status must still allow payment and paymentStatus must not already be paid.
func (repo *MongoBookingRepo) MarkPaid(ctx context.Context, id string, amount float64, methodRef string, paidAt time.Time) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":            id,
		"status":        bson.M{"$in": []models.BookingStatus{models.StatusConfirmed, models.StatusQuoteAccepted}},
		"paymentStatus": bson.M{"$ne": models.PaymentPaid},
	}
	update := bson.M{"$set": bson.M{
		"paymentStatus":    models.PaymentPaid,
		"amountPaid":       amount,
		"paidAt":           paidAt,
		"paymentMethodRef": methodRef,
		"updatedAt":        time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := repo.coll.FindOneAndUpdate(ctxWithTimeout, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("error marking booking %s paid: %w", id, err)
	}
	return &updated, nil
}
