package jobRepo

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

// MongoJobRepo is the MongoDB implementation of JobRepository.
type MongoJobRepo struct {
	coll *mongo.Collection
}

// NewMongoJobRepo constructs a repo backed by the "jobs" collection.
func NewMongoJobRepo() *MongoJobRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoJobRepo{coll: db.Collection("jobs")}
}

// Create inserts a new job document.
func (repo *MongoJobRepo) Create(ctx context.Context, job *models.Job) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, job); err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetByID retrieves a job by ID, scoped to the owner.
func (repo *MongoJobRepo) GetByID(ctx context.Context, userID, id string) (*models.Job, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var job models.Job
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id, "userId": userID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching job %s: %w", id, err)
	}
	return &job, nil
}

// ListByOwner returns the professional's jobs, newest first.
func (repo *MongoJobRepo) ListByOwner(ctx context.Context, userID string) ([]models.Job, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var jobs []models.Job
	if err := cursor.All(ctxWithTimeout, &jobs); err != nil {
		return nil, fmt.Errorf("error decoding jobs: %w", err)
	}
	return jobs, nil
}

// Update replaces mutable job fields, scoped to the owner.
func (repo *MongoJobRepo) Update(ctx context.Context, userID string, job *models.Job) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": job.ID, "userId": userID}
	update := bson.M{"$set": bson.M{
		"client":        job.Client,
		"service":       job.Service,
		"status":        job.Status,
		"scheduledDate": job.ScheduledDate,
		"price":         job.Price,
		"notes":         job.Notes,
		"updatedAt":     time.Now(),
	}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error updating job %s: %w", job.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the jobs collection.
func (repo *MongoJobRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("owner_status_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create job indexes: %w", err)
	}
	return nil
}
