package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	bookingRepo "probook/database/repository/booking"
	"probook/models"
)

// transitions is the closed table of legal lifecycle moves. Anything not
// listed is rejected; cancellation is legal from every non-terminal state.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:       {models.StatusQuoted, models.StatusConfirmed, models.StatusDeclined, models.StatusCancelled},
	models.StatusQuoted:        {models.StatusQuoteAccepted, models.StatusQuoteDeclined, models.StatusCancelled},
	models.StatusQuoteAccepted: {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:     {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether the move appears in the transition table.
func CanTransition(from, to models.BookingStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Advance moves the booking to the target status. Quote-flow targets are
// routed through their dedicated operations so their extra preconditions
// (payload, expiry) always apply.
func (s *DefaultBookingService) Advance(ctx context.Context, id string, target models.BookingStatus, actor string) (*models.Booking, error) {
	switch target {
	case models.StatusQuoted:
		return nil, &ValidationError{Field: "status", Reason: "use the quote submission operation to move a booking to quoted"}
	case models.StatusQuoteAccepted:
		return nil, errRequireRespond(id)
	case models.StatusQuoteDeclined:
		return nil, errRequireRespond(id)
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, target) {
		return nil, &InvalidTransitionError{BookingID: id, From: b.Status, To: target}
	}

	set := map[string]interface{}{}
	now := s.now()
	switch target {
	case models.StatusConfirmed:
		set["confirmedAt"] = now
	case models.StatusCompleted:
		set["completedAt"] = now
	case models.StatusCancelled:
		set["cancelledAt"] = now
	case models.StatusDeclined:
		set["declinedAt"] = now
	}

	updated, err := s.applyTransition(ctx, b, target, set)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("booking status advanced",
		zap.String("bookingID", id),
		zap.String("from", string(b.Status)),
		zap.String("to", string(target)),
		zap.String("actor", actor))
	return updated, nil
}

// Confirm finalizes a booking (direct accept, or after quote acceptance).
func (s *DefaultBookingService) Confirm(ctx context.Context, id string) (*models.Booking, error) {
	return s.Advance(ctx, id, models.StatusConfirmed, "professional")
}

// Complete marks the service as delivered.
func (s *DefaultBookingService) Complete(ctx context.Context, id string) (*models.Booking, error) {
	return s.Advance(ctx, id, models.StatusCompleted, "professional")
}

// Cancel cancels the booking from any non-terminal state.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	return s.Advance(ctx, id, models.StatusCancelled, "either")
}

// DeclineRequest declines the original request before any quote exists.
func (s *DefaultBookingService) DeclineRequest(ctx context.Context, id string) (*models.Booking, error) {
	return s.Advance(ctx, id, models.StatusDeclined, "professional")
}

// applyTransition performs the conditional write pinned to the status the
// caller just read. A concurrent transition makes the write miss; the fresh
// status is re-read so the rejection names what actually happened.
func (s *DefaultBookingService) applyTransition(
	ctx context.Context,
	b *models.Booking,
	target models.BookingStatus,
	set map[string]interface{},
) (*models.Booking, error) {
	updated, err := s.Repo.AdvanceStatus(ctx, b.ID, []models.BookingStatus{b.Status}, target, set)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNoMatch) {
			fresh, ferr := s.GetBooking(ctx, b.ID)
			if ferr != nil {
				return nil, ferr
			}
			return nil, &InvalidTransitionError{BookingID: b.ID, From: fresh.Status, To: target}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &UnavailableError{Op: "advance booking", Err: err}
		}
		return nil, err
	}

	// Liveness may have changed either way; the cached availability for that
	// day is stale regardless.
	s.Resolver.InvalidateDay(ctx, updated.ProfessionalID, updated.Date)
	return updated, nil
}

func errRequireRespond(id string) error {
	return &ValidationError{Field: "status", Reason: "use the quote response operation to resolve booking " + id}
}
