package customerRepo

import (
	"context"
	"errors"

	"probook/models"
)

var (
	// ErrNotFound indicates the customer does not exist for that owner.
	ErrNotFound = errors.New("customer not found")
	// ErrDuplicateEmail indicates another customer with the same email
	// already exists for the owning professional.
	ErrDuplicateEmail = errors.New("customer email already exists for this professional")
)

// CustomerRepository defines persistence operations for the customer roster.
// All operations are scoped to the owning professional.
type CustomerRepository interface {
	// Create inserts a new customer. Returns ErrDuplicateEmail when the
	// partial unique index on (userId, email) rejects the insert; concurrent
	// auto-provisioning treats that as "existed".
	Create(ctx context.Context, customer *models.Customer) error

	GetByID(ctx context.Context, userID, id string) (*models.Customer, error)

	// FindByEmail performs the dedup lookup: case-sensitive exact match on
	// (userId, email). Returns ErrNotFound when there is no match.
	FindByEmail(ctx context.Context, userID, email string) (*models.Customer, error)

	ListByOwner(ctx context.Context, userID string) ([]models.Customer, error)
	Update(ctx context.Context, userID string, customer *models.Customer) error
	Delete(ctx context.Context, userID, id string) error

	EnsureIndexes() error
}
