package models

import "time"

// CustomerSource records how a customer entered the roster.
const (
	CustomerSourceManual  = "manual"
	CustomerSourceBooking = "booking"
)

// Customer is a roster entry owned by one professional. The same identity may
// exist once per owning professional; there is no global uniqueness.
type Customer struct {
	ID      string `bson:"id" json:"id"`
	UserID  string `bson:"userId" json:"userId"` // owning professional
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`

	Source          string `bson:"source,omitempty" json:"source,omitempty"`
	SourceBookingID string `bson:"sourceBookingId,omitempty" json:"sourceBookingId,omitempty"`

	// HasJobs is derived at read time by matching the customer's name against
	// non-cancelled jobs and bookings. Never persisted.
	HasJobs bool `bson:"-" json:"hasJobs"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
