package bookingRepo

import (
	"context"
	"errors"
	"time"

	"probook/models"
)

var (
	// ErrNotFound indicates the booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken indicates another live booking already holds the slot.
	ErrSlotTaken = errors.New("slot already reserved")
	// ErrNoMatch indicates a conditional update found no booking in the
	// expected prior state.
	ErrNoMatch = errors.New("no booking matched the expected state")
)

// BookingRepository defines persistence operations for bookings. All
// state-changing operations are conditional on the stored prior state, so
// concurrent actors cannot apply a transition twice.
type BookingRepository interface {
	// Create inserts a new booking. Returns ErrSlotTaken when a live booking
	// already occupies (professionalId, date, time).
	Create(ctx context.Context, booking *models.Booking) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)

	// ReservedTimes returns the slot labels held by live bookings for the
	// professional on the given date.
	ReservedTimes(ctx context.Context, professionalID, date string) ([]string, error)

	// AdvanceStatus atomically moves a booking from one of the expected
	// statuses to the target status, applying the extra field updates in the
	// same write. Returns ErrNoMatch when the stored status is not in `from`.
	AdvanceStatus(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus, set map[string]interface{}) (*models.Booking, error)

	// MarkPaid atomically records payment on a booking that is confirmed or
	// quote-accepted and not already paid. Returns ErrNoMatch otherwise.
	MarkPaid(ctx context.Context, id string, amount float64, methodRef string, paidAt time.Time) (*models.Booking, error)

	EnsureIndexes() error
}
