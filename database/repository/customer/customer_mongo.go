package customerRepo

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

// MongoCustomerRepo is the MongoDB implementation of CustomerRepository.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo constructs a repo backed by the "customers" collection.
func NewMongoCustomerRepo() *MongoCustomerRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCustomerRepo{coll: db.Collection("customers")}
}

// Create inserts a new customer document.
func (repo *MongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error creating customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID, scoped to the owner.
func (repo *MongoCustomerRepo) GetByID(ctx context.Context, userID, id string) (*models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id, "userId": userID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching customer %s: %w", id, err)
	}
	return &customer, nil
}

// FindByEmail performs the case-sensitive dedup lookup.
func (repo *MongoCustomerRepo) FindByEmail(ctx context.Context, userID, email string) (*models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"userId": userID, "email": email}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error looking up customer by email: %w", err)
	}
	return &customer, nil
}

// ListByOwner returns the professional's full roster, newest first.
func (repo *MongoCustomerRepo) ListByOwner(ctx context.Context, userID string) ([]models.Customer, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing customers: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var customers []models.Customer
	if err := cursor.All(ctxWithTimeout, &customers); err != nil {
		return nil, fmt.Errorf("error decoding customers: %w", err)
	}
	return customers, nil
}

// Update replaces mutable customer fields, scoped to the owner.
func (repo *MongoCustomerRepo) Update(ctx context.Context, userID string, customer *models.Customer) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": customer.ID, "userId": userID}
	update := bson.M{"$set": bson.M{
		"name":      customer.Name,
		"email":     customer.Email,
		"phone":     customer.Phone,
		"company":   customer.Company,
		"address":   customer.Address,
		"notes":     customer.Notes,
		"updatedAt": time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("error updating customer %s: %w", customer.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a customer record, scoped to the owner.
func (repo *MongoCustomerRepo) Delete(ctx context.Context, userID, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("error deleting customer %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
