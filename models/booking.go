package models

import "time"

// BookingStatus is the canonical lifecycle status of a booking.
type BookingStatus string

const (
	StatusPending       BookingStatus = "pending"
	StatusQuoted        BookingStatus = "quoted"
	StatusQuoteAccepted BookingStatus = "quote_accepted"
	StatusQuoteDeclined BookingStatus = "quote_declined"
	StatusConfirmed     BookingStatus = "confirmed"
	StatusCompleted     BookingStatus = "completed"
	StatusCancelled     BookingStatus = "cancelled"
	StatusDeclined      BookingStatus = "declined"
)

// LiveStatuses are the statuses under which a booking still holds its slot.
// Declined and cancelled bookings free the slot.
var LiveStatuses = []BookingStatus{
	StatusPending, StatusQuoted, StatusQuoteAccepted, StatusConfirmed,
}

// IsTerminal reports whether no further lifecycle transition is possible.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusDeclined, StatusQuoteDeclined:
		return true
	}
	return false
}

// IsLive reports whether the booking still reserves its slot.
func (s BookingStatus) IsLive() bool {
	for _, ls := range LiveStatuses {
		if s == ls {
			return true
		}
	}
	return false
}

// PaymentStatus tracks the payment axis, orthogonal to lifecycle status.
type PaymentStatus string

const (
	PaymentUnset   PaymentStatus = ""
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Attachment is opaque metadata for a file the customer uploaded with the request.
type Attachment struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Size int64  `bson:"size" json:"size"`
}

// Booking is the central record of the lifecycle engine.
type Booking struct {
	ID             string `bson:"id" json:"id"`
	ProfessionalID string `bson:"professionalId" json:"professionalId"`
	CustomerEmail  string `bson:"customerEmail" json:"customerEmail"`
	CustomerName   string `bson:"customerName,omitempty" json:"customerName,omitempty"`
	ContactName    string `bson:"contactName,omitempty" json:"contactName,omitempty"`
	CustomerPhone  string `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Service        string `bson:"service,omitempty" json:"service,omitempty"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`

	Date     string    `bson:"date" json:"date"`         // "2006-01-02"
	Time     string    `bson:"time" json:"time"`         // slot label, e.g. "09:00"
	Datetime time.Time `bson:"datetime" json:"datetime"` // derived from Date+Time

	Status BookingStatus `bson:"status" json:"status"`

	HourlyRate    float64 `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	QuotedPrice   float64 `bson:"quotedPrice,omitempty" json:"quotedPrice,omitempty"`
	OriginalPrice float64 `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	FinalPrice    float64 `bson:"finalPrice,omitempty" json:"finalPrice,omitempty"`

	WorkerQuoteMessage string     `bson:"workerQuoteMessage,omitempty" json:"workerQuoteMessage,omitempty"`
	QuotedAt           *time.Time `bson:"quotedAt,omitempty" json:"quotedAt,omitempty"`
	QuoteExpiresAt     *time.Time `bson:"quoteExpiresAt,omitempty" json:"quoteExpiresAt,omitempty"`
	CustomerResponse   string     `bson:"customerResponse,omitempty" json:"customerResponse,omitempty"` // "accepted" or "declined"
	RespondedAt        *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`

	ConfirmedAt *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CancelledAt *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	DeclinedAt  *time.Time `bson:"declinedAt,omitempty" json:"declinedAt,omitempty"`

	PaymentStatus    PaymentStatus `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	AmountPaid       float64       `bson:"amountPaid,omitempty" json:"amountPaid,omitempty"`
	PaidAt           *time.Time    `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	PaymentMethodRef string        `bson:"paymentMethodRef,omitempty" json:"paymentMethodRef,omitempty"` // opaque provider reference

	Attachments []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ClientName returns the best available display name for the booking's customer.
func (b *Booking) ClientName() string {
	if b.CustomerName != "" {
		return b.CustomerName
	}
	if b.ContactName != "" {
		return b.ContactName
	}
	return "Unknown Customer"
}

// BookingRequest is the payload for creating a new booking.
type BookingRequest struct {
	ProfessionalID string       `json:"professionalId" binding:"required"`
	CustomerEmail  string       `json:"customerEmail" binding:"required,email"`
	CustomerName   string       `json:"customerName"`
	ContactName    string       `json:"contactName"`
	CustomerPhone  string       `json:"customerPhone"`
	Service        string       `json:"service"`
	Description    string       `json:"description"`
	Date           string       `json:"date" binding:"required"`
	Time           string       `json:"time" binding:"required"`
	HourlyRate     float64      `json:"hourlyRate"`
	Attachments    []Attachment `json:"attachments"`
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	ProfessionalID string
	Date           string
	Status         BookingStatus
	CustomerEmail  string
}
