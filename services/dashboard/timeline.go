package dashboard

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"probook/models"
)

// JobSource is the slice of the job repository the dashboard needs.
type JobSource interface {
	ListByOwner(ctx context.Context, userID string) ([]models.Job, error)
}

// BookingSource is the slice of the booking repository the dashboard needs.
type BookingSource interface {
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
}

// NoDateBucket labels the trailing group for items without a scheduled date.
const NoDateBucket = "No date"

// Timeline is the dashboard payload: a flat sorted list, or date groups when
// the query asks for grouping.
type Timeline struct {
	Items  []models.UnifiedItem `json:"items,omitempty"`
	Groups []models.DateGroup   `json:"groups,omitempty"`
}

// DashboardService merges jobs and bookings into the professional's unified
// timeline.
type DashboardService interface {
	BuildTimeline(ctx context.Context, professionalID string, q models.TimelineQuery) (*Timeline, error)
}

// DefaultDashboardService implements DashboardService.
type DefaultDashboardService struct {
	Jobs     JobSource
	Bookings BookingSource
	Logger   *zap.Logger
}

// BuildTimeline fetches both record kinds, normalizes them, and applies the
// caller-supplied query. Records with an unmapped status are dropped with an
// error log; they never masquerade as Pending.
func (s *DefaultDashboardService) BuildTimeline(ctx context.Context, professionalID string, q models.TimelineQuery) (*Timeline, error) {
	var items []models.UnifiedItem

	if q.ItemType == "" || q.ItemType == models.ItemTypeJob {
		jobs, err := s.Jobs.ListByOwner(ctx, professionalID)
		if err != nil {
			return nil, err
		}
		for _, j := range jobs {
			item, nerr := NormalizeJob(j)
			if nerr != nil {
				s.Logger.Error("dashboard: dropping defective job record", zap.Error(nerr))
				continue
			}
			items = append(items, item)
		}
	}

	if q.ItemType == "" || q.ItemType == models.ItemTypeBooking {
		bookings, err := s.Bookings.List(ctx, models.BookingFilter{ProfessionalID: professionalID})
		if err != nil {
			return nil, err
		}
		for _, b := range bookings {
			item, nerr := NormalizeBooking(b)
			if nerr != nil {
				s.Logger.Error("dashboard: dropping defective booking record", zap.Error(nerr))
				continue
			}
			items = append(items, item)
		}
	}

	if q.Status != "" {
		filtered := items[:0]
		for _, it := range items {
			if it.Status == q.Status {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	SortItems(items)

	if q.GroupByDate {
		return &Timeline{Groups: GroupByDate(items)}, nil
	}
	return &Timeline{Items: items}, nil
}

// SortItems sorts in place: status priority first, then most recent first.
func SortItems(items []models.UnifiedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := statusPriority[items[i].Status], statusPriority[items[j].Status]
		if pi != pj {
			return pi < pj
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// GroupByDate buckets items by scheduled date, earliest date first, with the
// no-date bucket always trailing.
func GroupByDate(items []models.UnifiedItem) []models.DateGroup {
	buckets := make(map[string][]models.UnifiedItem)
	var dates []string
	for _, it := range items {
		key := it.ScheduledDate
		if key == "" {
			key = NoDateBucket
		}
		if _, seen := buckets[key]; !seen && key != NoDateBucket {
			dates = append(dates, key)
		}
		buckets[key] = append(buckets[key], it)
	}
	sort.Strings(dates)

	groups := make([]models.DateGroup, 0, len(dates)+1)
	for _, d := range dates {
		groups = append(groups, models.DateGroup{Date: d, Items: buckets[d]})
	}
	if noDate, ok := buckets[NoDateBucket]; ok {
		groups = append(groups, models.DateGroup{Date: NoDateBucket, Items: noDate})
	}
	return groups
}
