package scheduling

import (
	"fmt"
	"time"
)

// Business-hours grid bounds: hourly slots from 09:00 to 18:00 inclusive.
const (
	gridStartHour = 9
	gridEndHour   = 18
)

// DefaultGrid returns the full business-hours slot grid in chronological order.
func DefaultGrid() []string {
	slots := make([]string, 0, gridEndHour-gridStartHour+1)
	for h := gridStartHour; h <= gridEndHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// DefaultGridFor returns the default grid for a calendar date: the full
// business-hours grid on weekdays, empty on weekends. An unparseable date
// gets the full grid rather than silently closing the day.
func DefaultGridFor(date string) []string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DefaultGrid()
	}
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return []string{}
	}
	return DefaultGrid()
}

// subtractSlots returns grid minus reserved, preserving chronological order.
func subtractSlots(grid, reserved []string) []string {
	taken := make(map[string]struct{}, len(reserved))
	for _, r := range reserved {
		taken[r] = struct{}{}
	}
	free := make([]string, 0, len(grid))
	for _, s := range grid {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
