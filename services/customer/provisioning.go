package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	customerRepo "probook/database/repository/customer"
	"probook/models"
)

// EnsureCustomer dedups by exact email within the owning professional, then
// creates a roster entry from the booking's fields. A duplicate-key rejection
// from a concurrent trigger is folded into "existed" rather than an error.
func (s *DefaultCustomerService) EnsureCustomer(ctx context.Context, b *models.Booking, trigger string) (string, string, error) {
	professionalID := b.ProfessionalID

	if b.CustomerEmail != "" {
		existing, err := s.Repo.FindByEmail(ctx, professionalID, b.CustomerEmail)
		if err == nil {
			return OutcomeExisted, existing.ID, nil
		}
		if !errors.Is(err, customerRepo.ErrNotFound) {
			return "", "", err
		}
	}

	now := time.Now()
	c := &models.Customer{
		ID:              uuid.New().String(),
		UserID:          professionalID,
		Name:            b.ClientName(),
		Email:           b.CustomerEmail,
		Phone:           b.CustomerPhone,
		Notes:           fmt.Sprintf("auto-created from %s: %s booking on %s", trigger, b.Service, b.Date),
		Source:          models.CustomerSourceBooking,
		SourceBookingID: b.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		if errors.Is(err, customerRepo.ErrDuplicateEmail) {
			// Lost the insert race to a concurrent trigger; the record exists.
			existing, ferr := s.Repo.FindByEmail(ctx, professionalID, b.CustomerEmail)
			if ferr != nil {
				return "", "", ferr
			}
			return OutcomeExisted, existing.ID, nil
		}
		return "", "", err
	}

	s.Logger.Info("customer auto-provisioned",
		zap.String("customerID", c.ID),
		zap.String("professionalID", professionalID),
		zap.String("trigger", trigger),
		zap.String("bookingID", b.ID))
	return OutcomeCreated, c.ID, nil
}
