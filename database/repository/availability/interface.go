package availabilityRepo

import "context"

// AvailabilityRepository stores each professional's configured slot grids,
// one document per professional keyed by ISO date.
type AvailabilityRepository interface {
	// GetDay returns the configured slot labels for the date. The second
	// return value is false when the professional has no configuration for
	// that date (caller falls back to the default grid).
	GetDay(ctx context.Context, professionalID, date string) ([]string, bool, error)

	// SetDay replaces the configured grid for the date. An empty slice closes
	// the day entirely.
	SetDay(ctx context.Context, professionalID, date string, slots []string) error

	EnsureIndexes() error
}
