package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// A Monday and the weekend right before it.
const (
	mondayDate   = "2025-01-06"
	saturdayDate = "2025-01-04"
)

type fakeAvailRepo struct {
	days map[string][]string // date -> configured slots
	err  error
}

func (f *fakeAvailRepo) GetDay(ctx context.Context, professionalID, date string) ([]string, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	slots, ok := f.days[date]
	return slots, ok, nil
}

func (f *fakeAvailRepo) SetDay(ctx context.Context, professionalID, date string, slots []string) error {
	if f.err != nil {
		return f.err
	}
	if f.days == nil {
		f.days = make(map[string][]string)
	}
	f.days[date] = slots
	return nil
}

func (f *fakeAvailRepo) EnsureIndexes() error { return nil }

type fakeReservedSource struct {
	times map[string][]string // date -> reserved slot labels
	err   error
}

func (f *fakeReservedSource) ReservedTimes(ctx context.Context, professionalID, date string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.times[date], nil
}

func newTestResolver(avail *fakeAvailRepo, reserved *fakeReservedSource) *DefaultResolver {
	return &DefaultResolver{
		Avail:    avail,
		Bookings: reserved,
		Logger:   zap.NewNop(),
	}
}

func TestAvailableSlots_FullDefaultGrid(t *testing.T) {
	r := newTestResolver(&fakeAvailRepo{}, &fakeReservedSource{})

	slots := r.AvailableSlots(context.Background(), "pro-1", mondayDate)
	require.Len(t, slots, 10)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "18:00", slots[9])
}

func TestAvailableSlots_SubtractsReserved(t *testing.T) {
	reserved := &fakeReservedSource{times: map[string][]string{
		mondayDate: {"11:00"},
	}}
	r := newTestResolver(&fakeAvailRepo{}, reserved)

	slots := r.AvailableSlots(context.Background(), "pro-1", mondayDate)
	assert.Len(t, slots, 9)
	assert.NotContains(t, slots, "11:00")

	// Cancelling the booking frees the slot again.
	reserved.times[mondayDate] = nil
	slots = r.AvailableSlots(context.Background(), "pro-1", mondayDate)
	assert.Len(t, slots, 10)
	assert.Contains(t, slots, "11:00")
}

func TestAvailableSlots_WeekendEmptyByDefault(t *testing.T) {
	r := newTestResolver(&fakeAvailRepo{}, &fakeReservedSource{})

	slots := r.AvailableSlots(context.Background(), "pro-1", saturdayDate)
	assert.Empty(t, slots)
}

func TestAvailableSlots_ConfiguredOverrideWins(t *testing.T) {
	avail := &fakeAvailRepo{days: map[string][]string{
		saturdayDate: {"10:00", "11:00"},
		mondayDate:   {"14:00"},
	}}
	r := newTestResolver(avail, &fakeReservedSource{})

	assert.Equal(t, []string{"10:00", "11:00"}, r.AvailableSlots(context.Background(), "pro-1", saturdayDate))
	assert.Equal(t, []string{"14:00"}, r.AvailableSlots(context.Background(), "pro-1", mondayDate))
}

func TestAvailableSlots_FailsOpenOnConfigReadError(t *testing.T) {
	avail := &fakeAvailRepo{err: errors.New("backend down")}
	r := newTestResolver(avail, &fakeReservedSource{})

	// Degrades to the full default grid rather than blocking booking.
	slots := r.AvailableSlots(context.Background(), "pro-1", saturdayDate)
	assert.Equal(t, DefaultGrid(), slots)
}

func TestAvailableSlots_ReservedReadErrorTreatedAsNoneReserved(t *testing.T) {
	reserved := &fakeReservedSource{err: errors.New("backend down")}
	r := newTestResolver(&fakeAvailRepo{}, reserved)

	slots := r.AvailableSlots(context.Background(), "pro-1", mondayDate)
	assert.Equal(t, DefaultGrid(), slots)
}

func TestAvailableSlots_SubsetAndDisjointProperties(t *testing.T) {
	reserved := &fakeReservedSource{times: map[string][]string{
		mondayDate: {"09:00", "12:00", "17:00"},
	}}
	r := newTestResolver(&fakeAvailRepo{}, reserved)

	free := r.AvailableSlots(context.Background(), "pro-1", mondayDate)

	grid := map[string]bool{}
	for _, s := range DefaultGridFor(mondayDate) {
		grid[s] = true
	}
	for _, s := range free {
		assert.True(t, grid[s], "free slot %s must come from the configured grid", s)
	}
	for _, taken := range reserved.times[mondayDate] {
		assert.NotContains(t, free, taken)
	}
}

func TestGetWeek(t *testing.T) {
	r := newTestResolver(&fakeAvailRepo{}, &fakeReservedSource{})

	week, err := r.GetWeek(context.Background(), "pro-1", mondayDate)
	require.NoError(t, err)
	require.Len(t, week.Days, 7)
	assert.Equal(t, mondayDate, week.Days[0].Date)
	// Mon-Fri have the business grid, Sat/Sun (days 5 and 6) are empty.
	assert.Len(t, week.Days[0].Slots, 10)
	assert.Empty(t, week.Days[5].Slots)
	assert.Empty(t, week.Days[6].Slots)
}

func TestGetWeek_BadStartDate(t *testing.T) {
	r := newTestResolver(&fakeAvailRepo{}, &fakeReservedSource{})

	_, err := r.GetWeek(context.Background(), "pro-1", "not-a-date")
	assert.Error(t, err)
}

func TestSetAvailability_RejectsBadDate(t *testing.T) {
	r := newTestResolver(&fakeAvailRepo{}, &fakeReservedSource{})

	err := r.SetAvailability(context.Background(), "pro-1", "06/01/2025", []string{"09:00"})
	assert.Error(t, err)
}
