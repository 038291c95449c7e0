package models

import "time"

// ChargeRequest is the opaque payment-capability input: an amount and a
// billing reference. Provider internals are never inspected here.
type ChargeRequest struct {
	BookingID   string
	Amount      float64
	Currency    string
	MethodToken string // provider-side payment method token supplied by the UI
	Description string
}

// Invoice is the breakdown of a charge, computed exactly once at payment
// time; the resulting total is what gets stored on the booking, so historical
// amounts stay stable even if the fee rate changes later.
type Invoice struct {
	InvoiceID     string    `bson:"invoiceId" json:"invoiceId"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	ServiceAmount float64   `bson:"serviceAmount" json:"serviceAmount"`
	PlatformFee   float64   `bson:"platformFee" json:"platformFee"`
	Total         float64   `bson:"total" json:"total"`
	Currency      string    `bson:"currency" json:"currency"`
	MethodRef     string    `bson:"methodRef" json:"methodRef"` // opaque provider reference
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
