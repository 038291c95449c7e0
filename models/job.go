package models

import "time"

// JobStatus is the legacy job vocabulary, distinct from BookingStatus.
type JobStatus string

const (
	JobPending    JobStatus = "Pending"
	JobInProgress JobStatus = "In Progress"
	JobDone       JobStatus = "Done"
	JobCancelled  JobStatus = "Cancelled"
)

// Job is a professional-created work record, independent of the booking flow.
type Job struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"` // owning professional
	Client        string    `bson:"client" json:"client"`
	Service       string    `bson:"service,omitempty" json:"service,omitempty"`
	Status        JobStatus `bson:"status" json:"status"`
	ScheduledDate string    `bson:"scheduledDate,omitempty" json:"scheduledDate,omitempty"`
	Price         float64   `bson:"price,omitempty" json:"price,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
