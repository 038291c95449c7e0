package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "probook/database/repository/booking"
	"probook/models"
)

// CreateBooking validates the request, checks the slot against resolved
// availability, and inserts the booking. The insert itself is the atomic
// reservation: the availability check only pre-filters, the unique index on
// live (professionalId, date, time) is what prevents double booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	if req.Time == "" {
		return nil, &ValidationError{Field: "time", Reason: "slot label is required"}
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return nil, &ValidationError{Field: "date", Reason: "cannot book a past date"}
	}

	free := s.Resolver.AvailableSlots(ctx, req.ProfessionalID, req.Date)
	if !slotIn(free, req.Time) {
		return nil, &SlotConflictError{ProfessionalID: req.ProfessionalID, Date: req.Date, Time: req.Time}
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		ProfessionalID: req.ProfessionalID,
		CustomerEmail:  req.CustomerEmail,
		CustomerName:   req.CustomerName,
		ContactName:    req.ContactName,
		CustomerPhone:  req.CustomerPhone,
		Service:        req.Service,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		Datetime:       slotDatetime(day, req.Time),
		Status:         models.StatusPending,
		HourlyRate:     req.HourlyRate,
		Attachments:    req.Attachments,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &SlotConflictError{ProfessionalID: req.ProfessionalID, Date: req.Date, Time: req.Time}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &UnavailableError{Op: "create booking", Err: err}
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.Resolver.InvalidateDay(ctx, req.ProfessionalID, req.Date)
	s.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("professionalID", booking.ProfessionalID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))
	return booking, nil
}

// GetBooking fetches a single booking by ID.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{BookingID: id}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &UnavailableError{Op: "get booking", Err: err}
		}
		return nil, err
	}
	return b, nil
}

// ListBookings returns bookings matching the filter.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.Repo.List(ctx, filter)
}

func slotIn(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}

// slotDatetime derives the combined timestamp from the day and slot label.
func slotDatetime(day time.Time, slot string) time.Time {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}
