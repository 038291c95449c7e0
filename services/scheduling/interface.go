package scheduling

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	availabilityRepo "probook/database/repository/availability"
	"probook/models"
)

// ReservedSlotSource is the slice of the booking repository the resolver
// needs: the slot labels currently held by live bookings.
type ReservedSlotSource interface {
	ReservedTimes(ctx context.Context, professionalID, date string) ([]string, error)
}

// Resolver computes bookable slots for a professional.
type Resolver interface {
	// AvailableSlots returns the free slot labels for the date in
	// chronological order: configured (or default) grid minus the slots held
	// by live bookings. It never fails outward; read errors degrade to the
	// full default grid.
	AvailableSlots(ctx context.Context, professionalID, date string) []string

	// GetWeek resolves seven consecutive days starting at start.
	GetWeek(ctx context.Context, professionalID, start string) (*models.WeekAvailability, error)

	// SetAvailability replaces the professional's configured grid for a date.
	SetAvailability(ctx context.Context, professionalID, date string, slots []string) error

	// InvalidateDay drops any cached availability for the professional+date.
	// Called by the booking service whenever a slot is taken or freed.
	InvalidateDay(ctx context.Context, professionalID, date string)
}

// DefaultResolver implements Resolver over the availability and booking repos
// with a best-effort redis cache in front.
type DefaultResolver struct {
	Avail    availabilityRepo.AvailabilityRepository
	Bookings ReservedSlotSource
	Cache    *redis.Client // optional; nil disables caching
	Logger   *zap.Logger
}
