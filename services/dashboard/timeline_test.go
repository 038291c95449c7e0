package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"probook/models"
)

type staticJobSource struct {
	jobs []models.Job
	err  error
}

func (s staticJobSource) ListByOwner(ctx context.Context, userID string) ([]models.Job, error) {
	return s.jobs, s.err
}

type staticBookingSource struct {
	bookings []models.Booking
	err      error
}

func (s staticBookingSource) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return s.bookings, s.err
}

func newTestService(jobs []models.Job, bookings []models.Booking) *DefaultDashboardService {
	return &DefaultDashboardService{
		Jobs:     staticJobSource{jobs: jobs},
		Bookings: staticBookingSource{bookings: bookings},
		Logger:   zap.NewNop(),
	}
}

func at(day int) time.Time {
	return time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC)
}

func TestBuildTimeline_MergesAndSorts(t *testing.T) {
	jobs := []models.Job{
		{ID: "job-done", Client: "Al", Status: models.JobDone, ScheduledDate: "2025-01-03", CreatedAt: at(1)},
		{ID: "job-open", Client: "Bo", Status: models.JobPending, ScheduledDate: "2025-01-04", CreatedAt: at(2)},
	}
	bookings := []models.Booking{
		{ID: "bk-cancelled", CustomerName: "Cy", Status: models.StatusCancelled, Date: "2025-01-05", CreatedAt: at(3)},
		{ID: "bk-pending", CustomerName: "Di", Status: models.StatusPending, Date: "2025-01-06", CreatedAt: at(4)},
	}
	svc := newTestService(jobs, bookings)

	tl, err := svc.BuildTimeline(context.Background(), "pro-1", models.TimelineQuery{})
	require.NoError(t, err)
	require.Len(t, tl.Items, 4)

	// Open work first regardless of input order, resolved outcomes last.
	// Within the same status, most recently created first.
	ids := make([]string, 0, len(tl.Items))
	for _, it := range tl.Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"bk-pending", "job-open", "job-done", "bk-cancelled"}, ids)
}

func TestBuildTimeline_SameStatusNewestFirst(t *testing.T) {
	bookings := []models.Booking{
		{ID: "bk-old", Status: models.StatusPending, CreatedAt: at(1)},
		{ID: "bk-new", Status: models.StatusPending, CreatedAt: at(9)},
		{ID: "bk-mid", Status: models.StatusPending, CreatedAt: at(5)},
	}
	svc := newTestService(nil, bookings)

	tl, err := svc.BuildTimeline(context.Background(), "pro-1", models.TimelineQuery{})
	require.NoError(t, err)
	require.Len(t, tl.Items, 3)
	assert.Equal(t, "bk-new", tl.Items[0].ID)
	assert.Equal(t, "bk-mid", tl.Items[1].ID)
	assert.Equal(t, "bk-old", tl.Items[2].ID)
}

func TestBuildTimeline_StatusFilter(t *testing.T) {
	jobs := []models.Job{
		{ID: "job-done", Status: models.JobDone},
		{ID: "job-open", Status: models.JobPending},
	}
	bookings := []models.Booking{
		{ID: "bk-done", Status: models.StatusCompleted},
		{ID: "bk-open", Status: models.StatusPending},
	}
	svc := newTestService(jobs, bookings)

	tl, err := svc.BuildTimeline(context.Background(), "pro-1",
		models.TimelineQuery{Status: models.UnifiedCompleted})
	require.NoError(t, err)
	require.Len(t, tl.Items, 2)
	for _, it := range tl.Items {
		assert.Equal(t, models.UnifiedCompleted, it.Status)
	}
}

func TestBuildTimeline_ItemTypeFilter(t *testing.T) {
	jobs := []models.Job{{ID: "job-1", Status: models.JobPending}}
	bookings := []models.Booking{{ID: "bk-1", Status: models.StatusPending}}
	svc := newTestService(jobs, bookings)

	tl, err := svc.BuildTimeline(context.Background(), "pro-1",
		models.TimelineQuery{ItemType: models.ItemTypeJob})
	require.NoError(t, err)
	require.Len(t, tl.Items, 1)
	assert.Equal(t, "job-1", tl.Items[0].ID)

	tl, err = svc.BuildTimeline(context.Background(), "pro-1",
		models.TimelineQuery{ItemType: models.ItemTypeBooking})
	require.NoError(t, err)
	require.Len(t, tl.Items, 1)
	assert.Equal(t, "bk-1", tl.Items[0].ID)
}

func TestBuildTimeline_GroupByDate(t *testing.T) {
	jobs := []models.Job{
		{ID: "job-nodate", Status: models.JobPending},
		{ID: "job-later", Status: models.JobPending, ScheduledDate: "2025-01-08"},
	}
	bookings := []models.Booking{
		{ID: "bk-early", Status: models.StatusPending, Date: "2025-01-06"},
	}
	svc := newTestService(jobs, bookings)

	tl, err := svc.BuildTimeline(context.Background(), "pro-1",
		models.TimelineQuery{GroupByDate: true})
	require.NoError(t, err)
	assert.Nil(t, tl.Items)
	require.Len(t, tl.Groups, 3)

	assert.Equal(t, "2025-01-06", tl.Groups[0].Date)
	assert.Equal(t, "2025-01-08", tl.Groups[1].Date)
	assert.Equal(t, NoDateBucket, tl.Groups[2].Date, "undated items land in the trailing bucket")
	require.Len(t, tl.Groups[2].Items, 1)
	assert.Equal(t, "job-nodate", tl.Groups[2].Items[0].ID)
}

func TestBuildTimeline_DropsDefectiveRecords(t *testing.T) {
	jobs := []models.Job{
		{ID: "job-bad", Status: "archived"},
		{ID: "job-ok", Status: models.JobPending},
	}
	bookings := []models.Booking{
		{ID: "bk-bad", Status: "limbo"},
		{ID: "bk-ok", Status: models.StatusPending},
	}
	svc := newTestService(jobs, bookings)

	tl, err := svc.BuildTimeline(context.Background(), "pro-1", models.TimelineQuery{})
	require.NoError(t, err)
	require.Len(t, tl.Items, 2)
	for _, it := range tl.Items {
		assert.Contains(t, []string{"job-ok", "bk-ok"}, it.ID)
	}
}

func TestBuildTimeline_SourceErrorsSurface(t *testing.T) {
	svc := &DefaultDashboardService{
		Jobs:     staticJobSource{err: errors.New("jobs unavailable")},
		Bookings: staticBookingSource{},
		Logger:   zap.NewNop(),
	}
	_, err := svc.BuildTimeline(context.Background(), "pro-1", models.TimelineQuery{})
	assert.Error(t, err)
}
