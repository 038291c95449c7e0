package jobRepo

import (
	"context"
	"errors"

	"probook/models"
)

// ErrNotFound indicates the job does not exist for that owner.
var ErrNotFound = errors.New("job not found")

// JobRepository defines persistence operations for legacy job records.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, userID, id string) (*models.Job, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Job, error)
	Update(ctx context.Context, userID string, job *models.Job) error

	EnsureIndexes() error
}
