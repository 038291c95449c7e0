package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"probook/models"
	"probook/utils"
)

// AvailableSlots computes the bookable slots for one professional and date.
// Read failures degrade to the full default grid rather than surfacing an
// error: showing "no slots" because of a transient read error is worse than
// occasionally showing a stale slot that the atomic reservation rejects.
func (r *DefaultResolver) AvailableSlots(ctx context.Context, professionalID, date string) []string {
	if cached, ok := r.cacheGet(ctx, professionalID, date); ok {
		return cached
	}

	grid := r.configuredGrid(ctx, professionalID, date)

	reserved, err := r.Bookings.ReservedTimes(ctx, professionalID, date)
	if err != nil {
		r.Logger.Warn("availability: reserved-slot read failed, treating as none reserved",
			zap.String("professionalID", professionalID),
			zap.String("date", date),
			zap.Error(err))
		reserved = nil
	}

	free := subtractSlots(grid, reserved)
	r.cacheSet(ctx, professionalID, date, free)
	return free
}

// configuredGrid loads the professional's configured grid for the date,
// falling back to the default grid when unconfigured and failing open to the
// full grid on read error.
func (r *DefaultResolver) configuredGrid(ctx context.Context, professionalID, date string) []string {
	slots, configured, err := r.Avail.GetDay(ctx, professionalID, date)
	if err != nil {
		r.Logger.Warn("availability: config read failed, failing open to default grid",
			zap.String("professionalID", professionalID),
			zap.String("date", date),
			zap.Error(err))
		return DefaultGrid()
	}
	if !configured {
		return DefaultGridFor(date)
	}
	return slots
}

// GetWeek resolves seven consecutive days starting at start.
func (r *DefaultResolver) GetWeek(ctx context.Context, professionalID, start string) (*models.WeekAvailability, error) {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, err
	}

	week := &models.WeekAvailability{Start: start}
	for i := 0; i < 7; i++ {
		date := startDay.AddDate(0, 0, i).Format("2006-01-02")
		week.Days = append(week.Days, models.DayAvailability{
			Date:  date,
			Slots: r.AvailableSlots(ctx, professionalID, date),
		})
	}
	return week, nil
}

// SetAvailability replaces the configured grid for a date.
func (r *DefaultResolver) SetAvailability(ctx context.Context, professionalID, date string, slots []string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return err
	}
	if err := r.Avail.SetDay(ctx, professionalID, date, slots); err != nil {
		return err
	}
	r.InvalidateDay(ctx, professionalID, date)
	return nil
}

// InvalidateDay drops the cached availability for the professional+date.
func (r *DefaultResolver) InvalidateDay(ctx context.Context, professionalID, date string) {
	if r.Cache == nil {
		return
	}
	if err := r.Cache.Del(ctx, cacheKey(professionalID, date)).Err(); err != nil {
		r.Logger.Warn("availability: cache invalidation failed", zap.Error(err))
	}
}

func cacheKey(professionalID, date string) string {
	return utils.AvailabilityCachePrefix + professionalID + ":" + date
}

func (r *DefaultResolver) cacheGet(ctx context.Context, professionalID, date string) ([]string, bool) {
	if r.Cache == nil {
		return nil, false
	}
	data, err := r.Cache.Get(ctx, cacheKey(professionalID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (r *DefaultResolver) cacheSet(ctx context.Context, professionalID, date string, slots []string) {
	if r.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, cacheKey(professionalID, date), data, utils.AvailabilityCacheTTL).Err(); err != nil {
		r.Logger.Warn("availability: cache write failed", zap.Error(err))
	}
}
