package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "probook/database/repository/booking"
	"probook/models"
	"probook/services/booking"
)

// AlreadyPaidError rejects a second payment attempt on a paid booking; the
// first payment's amount and timestamp are preserved.
type AlreadyPaidError struct {
	BookingID string
}

func (e *AlreadyPaidError) Error() string {
	return fmt.Sprintf("booking %s is already paid", e.BookingID)
}

// NotPayableError rejects payment on a booking whose lifecycle status does
// not allow it.
type NotPayableError struct {
	BookingID string
	Status    models.BookingStatus
}

func (e *NotPayableError) Error() string {
	return fmt.Sprintf("booking %s cannot be paid in status %s", e.BookingID, e.Status)
}

// ChargeFailedError wraps a provider-side charge failure. Nothing was
// recorded; the caller may retry.
type ChargeFailedError struct {
	BookingID string
	Err       error
}

func (e *ChargeFailedError) Error() string {
	return fmt.Sprintf("charge for booking %s failed: %v", e.BookingID, e.Err)
}

func (e *ChargeFailedError) Unwrap() error { return e.Err }

// BookingStore is the slice of the booking repository payment needs: a read
// and the conditional paid-marking write.
type BookingStore interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	MarkPaid(ctx context.Context, id string, amount float64, methodRef string, paidAt time.Time) (*models.Booking, error)
}

// PaymentService finalizes a booking's payment axis. Lifecycle status is
// never touched here; payment and status are orthogonal.
type PaymentService interface {
	// Charge computes the total (service amount plus platform fee) once,
	// charges it through the processor, and records the payment.
	Charge(ctx context.Context, bookingID, methodToken string) (*models.Booking, *models.Invoice, error)

	// RecordPayment marks the booking paid with the given amount and opaque
	// method reference.
	RecordPayment(ctx context.Context, bookingID string, amount float64, methodRef string) (*models.Booking, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo      BookingStore
	Processor ChargeProcessor
	Customers booking.CustomerProvisioner
	FeeRate   float64 // e.g. 0.05
	Currency  string
	Logger    *zap.Logger

	Now func() time.Time
}

func (s *DefaultPaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ComputeTotal applies the platform fee to the service amount. Called exactly
// once per payment; the result is stored, never recomputed.
func ComputeTotal(serviceAmount, feeRate float64) (fee, total float64) {
	fee = serviceAmount * feeRate
	return fee, serviceAmount + fee
}

// Charge runs the full payment: precondition checks, fee computation,
// provider charge, then the conditional paid-marking write.
func (s *DefaultPaymentService) Charge(ctx context.Context, bookingID, methodToken string) (*models.Booking, *models.Invoice, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, nil, &booking.NotFoundError{BookingID: bookingID}
		}
		return nil, nil, err
	}

	if b.PaymentStatus == models.PaymentPaid {
		return nil, nil, &AlreadyPaidError{BookingID: bookingID}
	}
	if b.Status != models.StatusConfirmed && b.Status != models.StatusQuoteAccepted {
		return nil, nil, &NotPayableError{BookingID: bookingID, Status: b.Status}
	}

	serviceAmount := b.FinalPrice
	if serviceAmount <= 0 {
		// Direct-confirm flow with no quote: charge the assumed rate.
		serviceAmount = b.HourlyRate
	}
	if serviceAmount <= 0 {
		return nil, nil, &booking.ValidationError{Field: "amount", Reason: "booking has no agreed price"}
	}

	fee, total := ComputeTotal(serviceAmount, s.FeeRate)

	methodRef, err := s.Processor.Charge(ctx, models.ChargeRequest{
		BookingID:   bookingID,
		Amount:      total,
		Currency:    s.Currency,
		MethodToken: methodToken,
		Description: fmt.Sprintf("%s booking on %s", b.Service, b.Date),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, &booking.UnavailableError{Op: "charge", Err: err}
		}
		return nil, nil, &ChargeFailedError{BookingID: bookingID, Err: err}
	}

	updated, err := s.RecordPayment(ctx, bookingID, total, methodRef)
	if err != nil {
		// The provider charge went through but the record write was refused;
		// surface loudly so it gets reconciled.
		s.Logger.Error("charge succeeded but payment recording failed",
			zap.String("bookingID", bookingID),
			zap.String("methodRef", methodRef),
			zap.Error(err))
		return nil, nil, err
	}

	invoice := &models.Invoice{
		InvoiceID:     uuid.New().String(),
		BookingID:     bookingID,
		ServiceAmount: serviceAmount,
		PlatformFee:   fee,
		Total:         total,
		Currency:      s.Currency,
		MethodRef:     methodRef,
		Status:        "paid",
		CreatedAt:     s.now(),
	}

	// Backstop provisioning: a confirmed booking being paid guarantees a
	// roster entry even if the quote-acceptance trigger never fired.
	if s.Customers != nil && updated.Status == models.StatusConfirmed {
		if _, _, perr := s.Customers.EnsureCustomer(ctx, updated, "payment"); perr != nil {
			s.Logger.Error("customer auto-provisioning backstop failed",
				zap.String("bookingID", bookingID), zap.Error(perr))
		}
	}

	return updated, invoice, nil
}

// RecordPayment performs the conditional paid-marking write. The filter
// carries the preconditions, so a racing second payment attempt misses and is
// classified against the fresh state.
func (s *DefaultPaymentService) RecordPayment(ctx context.Context, bookingID string, amount float64, methodRef string) (*models.Booking, error) {
	updated, err := s.Repo.MarkPaid(ctx, bookingID, amount, methodRef, s.now())
	if err == nil {
		s.Logger.Info("payment recorded",
			zap.String("bookingID", bookingID),
			zap.Float64("amount", amount))
		return updated, nil
	}

	if errors.Is(err, bookingRepo.ErrNoMatch) {
		fresh, ferr := s.Repo.GetByID(ctx, bookingID)
		if ferr != nil {
			if errors.Is(ferr, bookingRepo.ErrNotFound) {
				return nil, &booking.NotFoundError{BookingID: bookingID}
			}
			return nil, ferr
		}
		if fresh.PaymentStatus == models.PaymentPaid {
			return nil, &AlreadyPaidError{BookingID: bookingID}
		}
		return nil, &NotPayableError{BookingID: bookingID, Status: fresh.Status}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, &booking.UnavailableError{Op: "record payment", Err: err}
	}
	return nil, err
}
