package customer

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"probook/models"
)

// ListCustomers returns the roster with the hasJobs flag recomputed on every
// fetch by matching customer names against non-cancelled jobs and bookings.
// The flag is derived display state and is never persisted.
func (s *DefaultCustomerService) ListCustomers(ctx context.Context, professionalID string) ([]models.Customer, error) {
	customers, err := s.Repo.ListByOwner(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	activeClients := s.activeClientNames(ctx, professionalID)
	for i := range customers {
		_, ok := activeClients[normalizeName(customers[i].Name)]
		customers[i].HasJobs = ok
	}
	return customers, nil
}

// activeClientNames collects normalized client names from the professional's
// non-cancelled jobs and bookings. Read failures degrade to an empty set; the
// roster still renders, just without the derived flag.
func (s *DefaultCustomerService) activeClientNames(ctx context.Context, professionalID string) map[string]struct{} {
	names := make(map[string]struct{})

	jobs, err := s.Jobs.ListByOwner(ctx, professionalID)
	if err != nil {
		s.Logger.Warn("roster: job read failed, hasJobs may be incomplete",
			zap.String("professionalID", professionalID), zap.Error(err))
	} else {
		for _, j := range jobs {
			if j.Status != models.JobCancelled {
				names[normalizeName(j.Client)] = struct{}{}
			}
		}
	}

	bookings, err := s.Bookings.List(ctx, models.BookingFilter{ProfessionalID: professionalID})
	if err != nil {
		s.Logger.Warn("roster: booking read failed, hasJobs may be incomplete",
			zap.String("professionalID", professionalID), zap.Error(err))
	} else {
		for i := range bookings {
			if bookings[i].Status != models.StatusCancelled {
				names[normalizeName(bookings[i].ClientName())] = struct{}{}
			}
		}
	}

	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CreateCustomer adds a manually-entered roster entry.
func (s *DefaultCustomerService) CreateCustomer(ctx context.Context, c *models.Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Source == "" {
		c.Source = models.CustomerSourceManual
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.Repo.Create(ctx, c)
}

// UpdateCustomer edits a roster entry owned by the professional.
func (s *DefaultCustomerService) UpdateCustomer(ctx context.Context, professionalID string, c *models.Customer) error {
	return s.Repo.Update(ctx, professionalID, c)
}

// DeleteCustomer removes a roster entry. Customers are never auto-deleted;
// this is the only deletion path.
func (s *DefaultCustomerService) DeleteCustomer(ctx context.Context, professionalID, id string) error {
	return s.Repo.Delete(ctx, professionalID, id)
}
