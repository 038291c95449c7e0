package booking

import (
	"fmt"
	"time"

	"probook/models"
)

// InvalidTransitionError rejects a lifecycle move not present in the
// transition table. The stored record is left untouched.
type InvalidTransitionError struct {
	BookingID string
	From      models.BookingStatus
	To        models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for booking %s: %s -> %s", e.BookingID, e.From, e.To)
}

// QuoteExpiredError rejects acceptance of a quote past its expiry.
type QuoteExpiredError struct {
	BookingID string
	ExpiredAt time.Time
}

func (e *QuoteExpiredError) Error() string {
	return fmt.Sprintf("quote for booking %s expired at %s", e.BookingID, e.ExpiredAt.Format(time.RFC3339))
}

// NotInQuotedStateError rejects a quote response when the booking is not in
// the quoted state, including a second response to an already-resolved quote.
type NotInQuotedStateError struct {
	BookingID string
	Status    models.BookingStatus
}

func (e *NotInQuotedStateError) Error() string {
	return fmt.Sprintf("booking %s is not awaiting a quote response (status %s)", e.BookingID, e.Status)
}

// SlotConflictError signals the requested slot is no longer free; the caller
// should re-fetch availability.
type SlotConflictError struct {
	ProfessionalID string
	Date           string
	Time           string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s %s for professional %s is already booked", e.Date, e.Time, e.ProfessionalID)
}

// ValidationError rejects malformed input before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError signals the booking does not exist.
type NotFoundError struct {
	BookingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

// UnavailableError signals a transient backend failure or timeout. The
// attempted write did not happen; the caller may retry.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s temporarily unavailable: %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
