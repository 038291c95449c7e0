package payment

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"probook/models"
)

// ChargeProcessor is the opaque payment capability: charge an amount against
// a billing reference and report success or failure plus an opaque method
// reference. Provider internals stay behind this interface.
type ChargeProcessor interface {
	Charge(ctx context.Context, req models.ChargeRequest) (methodRef string, err error)
}

// StripeProcessor charges through Stripe PaymentIntents.
type StripeProcessor struct {
	Logger *zap.Logger
}

// Charge creates and confirms a PaymentIntent for the total amount.
func (p *StripeProcessor) Charge(ctx context.Context, req models.ChargeRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.MethodToken),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", req.BookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	p.Logger.Info("stripe charge confirmed",
		zap.String("bookingID", req.BookingID),
		zap.String("intent", intent.ID))
	return intent.ID, nil
}

// SimulatedProcessor stands in for the provider in development and tests.
type SimulatedProcessor struct {
	Logger *zap.Logger
}

// Charge simulates provider latency and always succeeds.
func (p *SimulatedProcessor) Charge(ctx context.Context, req models.ChargeRequest) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(200 * time.Millisecond):
	}

	ref := "sim_" + uuid.New().String()
	if p.Logger != nil {
		p.Logger.Info("simulated charge",
			zap.String("bookingID", req.BookingID),
			zap.Float64("amount", req.Amount),
			zap.String("ref", ref))
	}
	return ref, nil
}
