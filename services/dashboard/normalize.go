package dashboard

import (
	"fmt"

	"probook/models"
)

// bookingStatusMap is the exhaustive booking-to-display mapping. An absent
// entry means the record is defective; there is no silent Pending fallback.
var bookingStatusMap = map[models.BookingStatus]models.UnifiedStatus{
	models.StatusPending:       models.UnifiedPending,
	models.StatusQuoted:        models.UnifiedQuoted,
	models.StatusQuoteAccepted: models.UnifiedQuoteAccepted,
	models.StatusQuoteDeclined: models.UnifiedQuoteDeclined,
	models.StatusConfirmed:     models.UnifiedConfirmed,
	models.StatusCompleted:     models.UnifiedCompleted,
	models.StatusCancelled:     models.UnifiedCancelled,
	models.StatusDeclined:      models.UnifiedDeclined,
}

// jobStatusMap maps the legacy job vocabulary onto the display vocabulary.
var jobStatusMap = map[models.JobStatus]models.UnifiedStatus{
	models.JobPending:    models.UnifiedPending,
	models.JobInProgress: models.UnifiedInProgress,
	models.JobDone:       models.UnifiedCompleted,
	models.JobCancelled:  models.UnifiedCancelled,
}

// statusPriority orders the unified vocabulary for the timeline sort: open
// work first, resolved negative outcomes last.
var statusPriority = map[models.UnifiedStatus]int{
	models.UnifiedPending:       0,
	models.UnifiedQuoted:        1,
	models.UnifiedQuoteAccepted: 2,
	models.UnifiedConfirmed:     3,
	models.UnifiedInProgress:    4,
	models.UnifiedCompleted:     5,
	models.UnifiedQuoteDeclined: 6,
	models.UnifiedDeclined:      7,
	models.UnifiedCancelled:     8,
}

// NormalizeBooking projects a booking into the unified dashboard shape.
func NormalizeBooking(b models.Booking) (models.UnifiedItem, error) {
	status, ok := bookingStatusMap[b.Status]
	if !ok {
		return models.UnifiedItem{}, fmt.Errorf("booking %s has unmapped status %q", b.ID, b.Status)
	}

	price := b.FinalPrice
	if price == 0 {
		price = b.QuotedPrice
	}

	return models.UnifiedItem{
		ID:            b.ID,
		ItemType:      models.ItemTypeBooking,
		Client:        b.ClientName(),
		Service:       b.Service,
		Status:        status,
		ScheduledDate: b.Date,
		Time:          b.Time,
		Price:         price,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}, nil
}

// NormalizeJob projects a legacy job into the unified dashboard shape.
func NormalizeJob(j models.Job) (models.UnifiedItem, error) {
	status, ok := jobStatusMap[j.Status]
	if !ok {
		return models.UnifiedItem{}, fmt.Errorf("job %s has unmapped status %q", j.ID, j.Status)
	}

	return models.UnifiedItem{
		ID:            j.ID,
		ItemType:      models.ItemTypeJob,
		Client:        j.Client,
		Service:       j.Service,
		Status:        status,
		ScheduledDate: j.ScheduledDate,
		Price:         j.Price,
		CreatedAt:     j.CreatedAt,
	}, nil
}
