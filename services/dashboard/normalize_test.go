package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probook/models"
)

func TestNormalizeBooking_StatusMapping(t *testing.T) {
	cases := map[models.BookingStatus]models.UnifiedStatus{
		models.StatusPending:       models.UnifiedPending,
		models.StatusQuoted:        models.UnifiedQuoted,
		models.StatusQuoteAccepted: models.UnifiedQuoteAccepted,
		models.StatusQuoteDeclined: models.UnifiedQuoteDeclined,
		models.StatusConfirmed:     models.UnifiedConfirmed,
		models.StatusCompleted:     models.UnifiedCompleted,
		models.StatusCancelled:     models.UnifiedCancelled,
		models.StatusDeclined:      models.UnifiedDeclined,
	}
	for from, want := range cases {
		item, err := NormalizeBooking(models.Booking{ID: "bk-1", Status: from})
		require.NoErrorf(t, err, "status %s", from)
		assert.Equal(t, want, item.Status)
	}
}

func TestNormalizeBooking_Fields(t *testing.T) {
	created := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	b := models.Booking{
		ID:            "bk-1",
		ContactName:   "J. Doe",
		Service:       "Plumbing",
		Date:          "2025-01-06",
		Time:          "10:00",
		Status:        models.StatusQuoteAccepted,
		QuotedPrice:   150,
		FinalPrice:    150,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     created,
	}

	item, err := NormalizeBooking(b)
	require.NoError(t, err)
	assert.Equal(t, models.ItemTypeBooking, item.ItemType)
	assert.Equal(t, "J. Doe", item.Client, "contact name backs up the customer name")
	assert.Equal(t, "2025-01-06", item.ScheduledDate)
	assert.Equal(t, "10:00", item.Time)
	assert.Equal(t, 150.0, item.Price)
	assert.Equal(t, models.PaymentPending, item.PaymentStatus)
	assert.True(t, item.CreatedAt.Equal(created))
}

func TestNormalizeBooking_PriceFallsBackToQuote(t *testing.T) {
	item, err := NormalizeBooking(models.Booking{
		ID:          "bk-1",
		Status:      models.StatusQuoted,
		QuotedPrice: 150,
	})
	require.NoError(t, err)
	assert.Equal(t, 150.0, item.Price)
}

func TestNormalizeBooking_UnmappedStatus(t *testing.T) {
	_, err := NormalizeBooking(models.Booking{ID: "bk-1", Status: "limbo"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmapped status")
}

func TestNormalizeJob_StatusMapping(t *testing.T) {
	cases := map[models.JobStatus]models.UnifiedStatus{
		models.JobPending:    models.UnifiedPending,
		models.JobInProgress: models.UnifiedInProgress,
		models.JobDone:       models.UnifiedCompleted,
		models.JobCancelled:  models.UnifiedCancelled,
	}
	for from, want := range cases {
		item, err := NormalizeJob(models.Job{ID: "job-1", Status: from})
		require.NoErrorf(t, err, "status %s", from)
		assert.Equal(t, want, item.Status)
		assert.Equal(t, models.ItemTypeJob, item.ItemType)
	}
}

func TestNormalizeJob_UnmappedStatus(t *testing.T) {
	_, err := NormalizeJob(models.Job{ID: "job-1", Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmapped status")
}
