package customer

import (
	"context"

	"go.uber.org/zap"

	customerRepo "probook/database/repository/customer"
	"probook/models"
)

// JobLister is the slice of the job repository the roster needs.
type JobLister interface {
	ListByOwner(ctx context.Context, userID string) ([]models.Job, error)
}

// BookingLister is the slice of the booking repository the roster needs.
type BookingLister interface {
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
}

// Provisioning outcomes.
const (
	OutcomeCreated = "created"
	OutcomeExisted = "existed"
)

// CustomerService manages the professional's client roster, including the
// auto-provisioning that keeps it in sync with booking activity.
type CustomerService interface {
	// EnsureCustomer creates or reuses a roster entry for the booking's
	// customer. Trigger names the lifecycle event for the provenance note.
	EnsureCustomer(ctx context.Context, b *models.Booking, trigger string) (outcome string, customerID string, err error)

	// ListCustomers returns the roster with the derived hasJobs flag
	// recomputed against current jobs and bookings.
	ListCustomers(ctx context.Context, professionalID string) ([]models.Customer, error)

	CreateCustomer(ctx context.Context, c *models.Customer) error
	UpdateCustomer(ctx context.Context, professionalID string, c *models.Customer) error
	DeleteCustomer(ctx context.Context, professionalID, id string) error
}

// DefaultCustomerService implements CustomerService.
type DefaultCustomerService struct {
	Repo     customerRepo.CustomerRepository
	Jobs     JobLister
	Bookings BookingLister
	Logger   *zap.Logger
}
