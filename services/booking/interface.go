package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingRepo "probook/database/repository/booking"
	"probook/models"
	"probook/services/scheduling"
)

// CustomerProvisioner is the slice of the customer service the lifecycle
// engine needs: ensure a roster entry exists for the booking's customer.
type CustomerProvisioner interface {
	EnsureCustomer(ctx context.Context, b *models.Booking, trigger string) (outcome string, customerID string, err error)
}

// BookingService drives the booking lifecycle: creation with atomic slot
// reservation, the quote sub-workflow, and the remaining status transitions.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)

	// Advance moves the booking to the target status if the transition table
	// allows it from the current status.
	Advance(ctx context.Context, id string, target models.BookingStatus, actor string) (*models.Booking, error)

	SubmitQuote(ctx context.Context, id string, price float64, message string, validUntil *time.Time) (*models.Booking, error)
	RespondToQuote(ctx context.Context, id string, accept bool) (*models.Booking, error)
	DeclineRequest(ctx context.Context, id string) (*models.Booking, error)

	Confirm(ctx context.Context, id string) (*models.Booking, error)
	Complete(ctx context.Context, id string) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Resolver  scheduling.Resolver
	Customers CustomerProvisioner
	Logger    *zap.Logger

	// Now is the clock; tests pin it.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
