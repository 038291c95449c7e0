package models

import "time"

// ItemType tags a unified dashboard row with its origin.
type ItemType string

const (
	ItemTypeJob     ItemType = "job"
	ItemTypeBooking ItemType = "booking"
)

// UnifiedStatus is the closed display vocabulary shared by jobs and bookings.
type UnifiedStatus string

const (
	UnifiedPending       UnifiedStatus = "Pending"
	UnifiedQuoted        UnifiedStatus = "Quoted"
	UnifiedQuoteAccepted UnifiedStatus = "Quote Accepted"
	UnifiedQuoteDeclined UnifiedStatus = "Quote Declined"
	UnifiedConfirmed     UnifiedStatus = "Confirmed"
	UnifiedInProgress    UnifiedStatus = "In Progress"
	UnifiedCompleted     UnifiedStatus = "Completed"
	UnifiedCancelled     UnifiedStatus = "Cancelled"
	UnifiedDeclined      UnifiedStatus = "Declined"
)

// UnifiedItem is a job or booking projected into one common shape for the
// professional's dashboard.
type UnifiedItem struct {
	ID            string        `json:"id"`
	ItemType      ItemType      `json:"itemType"`
	Client        string        `json:"client"`
	Service       string        `json:"service,omitempty"`
	Status        UnifiedStatus `json:"status"`
	ScheduledDate string        `json:"scheduledDate,omitempty"`
	Time          string        `json:"time,omitempty"`
	Price         float64       `json:"price,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// DateGroup is one bucket of the grouped timeline. Items with no date end up
// in a single trailing bucket labelled "No date".
type DateGroup struct {
	Date  string        `json:"date"`
	Items []UnifiedItem `json:"items"`
}

// TimelineQuery is the explicit, caller-supplied filter/sort/group
// configuration for the dashboard. There is no hidden view state.
type TimelineQuery struct {
	Status      UnifiedStatus `json:"status,omitempty"`      // empty = all
	ItemType    ItemType      `json:"itemType,omitempty"`    // empty = both
	GroupByDate bool          `json:"groupByDate,omitempty"` // false = flat sorted list
}
