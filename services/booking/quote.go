package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	bookingRepo "probook/database/repository/booking"
	"probook/models"
)

// DefaultQuoteValidity is how long a quote stays open when the professional
// does not pick an expiry.
const DefaultQuoteValidity = 7 * 24 * time.Hour

// SubmitQuote records the professional's counter-offer and moves the booking
// from pending to quoted.
func (s *DefaultBookingService) SubmitQuote(ctx context.Context, id string, price float64, message string, validUntil *time.Time) (*models.Booking, error) {
	if price <= 0 {
		return nil, &ValidationError{Field: "quotedPrice", Reason: "must be greater than zero"}
	}
	if strings.TrimSpace(message) == "" {
		return nil, &ValidationError{Field: "message", Reason: "must not be empty"}
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, models.StatusQuoted) {
		return nil, &InvalidTransitionError{BookingID: id, From: b.Status, To: models.StatusQuoted}
	}

	now := s.now()
	expiry := now.Add(DefaultQuoteValidity)
	if validUntil != nil {
		if validUntil.Before(now) {
			return nil, &ValidationError{Field: "validUntil", Reason: "must be in the future"}
		}
		expiry = *validUntil
	}

	set := map[string]interface{}{
		"quotedPrice":        price,
		"workerQuoteMessage": message,
		"originalPrice":      b.HourlyRate,
		"quotedAt":           now,
		"quoteExpiresAt":     expiry,
	}
	updated, err := s.applyTransition(ctx, b, models.StatusQuoted, set)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("quote submitted",
		zap.String("bookingID", id),
		zap.Float64("price", price),
		zap.Time("expiresAt", expiry))
	return updated, nil
}

// RespondToQuote records the customer's accept/decline. Only legal while the
// booking is exactly in the quoted state; the first response wins and any
// later response is rejected against the stored state, not silently accepted.
func (s *DefaultBookingService) RespondToQuote(ctx context.Context, id string, accept bool) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.StatusQuoted {
		return nil, &NotInQuotedStateError{BookingID: id, Status: b.Status}
	}

	now := s.now()
	if accept && b.QuoteExpiresAt != nil && now.After(*b.QuoteExpiresAt) {
		return nil, &QuoteExpiredError{BookingID: id, ExpiredAt: *b.QuoteExpiresAt}
	}

	target := models.StatusQuoteDeclined
	response := "declined"
	set := map[string]interface{}{
		"respondedAt": now,
	}
	if accept {
		target = models.StatusQuoteAccepted
		response = "accepted"
		set["finalPrice"] = b.QuotedPrice
		set["paymentStatus"] = models.PaymentPending
	}
	set["customerResponse"] = response

	updated, err := s.Repo.AdvanceStatus(ctx, id, []models.BookingStatus{models.StatusQuoted}, target, set)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNoMatch) {
			// Someone resolved the quote between our read and write.
			fresh, ferr := s.GetBooking(ctx, id)
			if ferr != nil {
				return nil, ferr
			}
			return nil, &NotInQuotedStateError{BookingID: id, Status: fresh.Status}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &UnavailableError{Op: "respond to quote", Err: err}
		}
		return nil, err
	}

	s.Resolver.InvalidateDay(ctx, updated.ProfessionalID, updated.Date)
	s.Logger.Info("quote resolved",
		zap.String("bookingID", id),
		zap.String("response", response))

	if accept && s.Customers != nil {
		outcome, customerID, perr := s.Customers.EnsureCustomer(ctx, updated, "quote acceptance")
		if perr != nil {
			// Provisioning is best-effort; the accepted quote stands.
			s.Logger.Error("customer auto-provisioning failed",
				zap.String("bookingID", id), zap.Error(perr))
		} else {
			s.Logger.Info("customer provisioning",
				zap.String("bookingID", id),
				zap.String("outcome", outcome),
				zap.String("customerID", customerID))
		}
	}
	return updated, nil
}
