package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probook/models"
)

func seedBooking(t *testing.T, repo *fakeBookingRepo, status models.BookingStatus) *models.Booking {
	t.Helper()
	b := &models.Booking{
		ID:             "bk-" + string(status),
		ProfessionalID: "pro-1",
		CustomerEmail:  "jane@example.com",
		CustomerName:   "Jane Doe",
		Service:        "Plumbing",
		Date:           testDate,
		Time:           "10:00",
		Status:         status,
		HourlyRate:     80,
		CreatedAt:      testNow,
		UpdatedAt:      testNow,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		ok       bool
	}{
		{models.StatusPending, models.StatusQuoted, true},
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusDeclined, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusQuoted, models.StatusQuoteAccepted, true},
		{models.StatusQuoted, models.StatusQuoteDeclined, true},
		{models.StatusQuoted, models.StatusConfirmed, false},
		{models.StatusQuoteAccepted, models.StatusConfirmed, true},
		{models.StatusQuoteAccepted, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusQuoted, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusDeclined, models.StatusConfirmed, false},
		{models.StatusQuoteDeclined, models.StatusQuoted, false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestConfirm_FromPending(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _, _ := newTestService(repo)
	b := seedBooking(t, repo, models.StatusPending)

	updated, err := svc.Confirm(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	require.NotNil(t, updated.ConfirmedAt)
	assert.True(t, updated.ConfirmedAt.Equal(testNow))
}

func TestComplete_FromConfirmed(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _, _ := newTestService(repo)
	b := seedBooking(t, repo, models.StatusConfirmed)

	updated, err := svc.Complete(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
}

func TestComplete_FromPendingRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _, _ := newTestService(repo)
	b := seedBooking(t, repo, models.StatusPending)

	_, err := svc.Complete(context.Background(), b.ID)

	var terr *InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.StatusPending, terr.From)
	assert.Equal(t, models.StatusCompleted, terr.To)

	// The record must be untouched after a rejected transition.
	fresh, err := svc.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, fresh.Status)
	assert.Nil(t, fresh.CompletedAt)
}

func TestCancel_FromEveryLiveState(t *testing.T) {
	for _, status := range models.LiveStatuses {
		repo := newFakeBookingRepo()
		svc, _, _ := newTestService(repo)
		b := seedBooking(t, repo, status)

		updated, err := svc.Cancel(context.Background(), b.ID)
		require.NoErrorf(t, err, "cancel from %s", status)
		assert.Equal(t, models.StatusCancelled, updated.Status)
		require.NotNil(t, updated.CancelledAt)
	}
}

func TestCancel_FromTerminalRejected(t *testing.T) {
	for _, status := range []models.BookingStatus{
		models.StatusCompleted,
		models.StatusCancelled,
		models.StatusDeclined,
		models.StatusQuoteDeclined,
	} {
		repo := newFakeBookingRepo()
		svc, _, _ := newTestService(repo)
		b := seedBooking(t, repo, status)

		_, err := svc.Cancel(context.Background(), b.ID)
		var terr *InvalidTransitionError
		assert.ErrorAsf(t, err, &terr, "cancel from %s", status)
	}
}

func TestDeclineRequest(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _, _ := newTestService(repo)
	b := seedBooking(t, repo, models.StatusPending)

	updated, err := svc.DeclineRequest(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, updated.Status)
	require.NotNil(t, updated.DeclinedAt)
}

func TestAdvance_QuoteTargetsRouted(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _, _ := newTestService(repo)
	b := seedBooking(t, repo, models.StatusPending)

	for _, target := range []models.BookingStatus{
		models.StatusQuoted,
		models.StatusQuoteAccepted,
		models.StatusQuoteDeclined,
	} {
		_, err := svc.Advance(context.Background(), b.ID, target, "test")
		var verr *ValidationError
		assert.ErrorAsf(t, err, &verr, "target %s must be routed to the quote operations", target)
	}
}

func TestAdvance_NotFound(t *testing.T) {
	svc, _, _ := newTestService(newFakeBookingRepo())

	_, err := svc.Confirm(context.Background(), "missing")
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestAdvance_InvalidatesAvailability(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, resolver, _ := newTestService(repo)
	b := seedBooking(t, repo, models.StatusPending)

	_, err := svc.Cancel(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Contains(t, resolver.invalidated, testDate)
}

func TestAdvance_ConcurrentWriteRejectedAgainstFreshStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _, _ := newTestService(repo)
	b := seedBooking(t, repo, models.StatusPending)

	// Simulate another actor winning between our read and write.
	_, err := repo.AdvanceStatus(context.Background(), b.ID,
		[]models.BookingStatus{models.StatusPending}, models.StatusCancelled,
		map[string]interface{}{"cancelledAt": time.Now()})
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), b.ID)
	var terr *InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.StatusCancelled, terr.From)
}
