package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "probook/database/repository/booking"
	"probook/models"
)

// A Monday well in the future relative to the pinned test clock.
const testDate = "2025-01-06"

var testNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

// fakeBookingRepo is an in-memory BookingRepository that enforces the same
// invariants as the Mongo implementation: the unique live-slot key and
// conditional status updates.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.bookings {
		if ex.ProfessionalID == b.ProfessionalID && ex.Date == b.Date && ex.Time == b.Time && ex.Status.IsLive() {
			return bookingRepo.ErrSlotTaken
		}
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if filter.ProfessionalID != "" && b.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if filter.Date != "" && b.Date != filter.Date {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.CustomerEmail != "" && b.CustomerEmail != filter.CustomerEmail {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ReservedTimes(ctx context.Context, professionalID, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var times []string
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && b.Date == date && b.Status.IsLive() {
			times = append(times, b.Time)
		}
	}
	return times, nil
}

func (f *fakeBookingRepo) AdvanceStatus(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus, set map[string]interface{}) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNoMatch
	}
	matched := false
	for _, s := range from {
		if b.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return nil, bookingRepo.ErrNoMatch
	}
	b.Status = to
	applySet(b, set)
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) MarkPaid(ctx context.Context, id string, amount float64, methodRef string, paidAt time.Time) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNoMatch
	}
	if b.Status != models.StatusConfirmed && b.Status != models.StatusQuoteAccepted {
		return nil, bookingRepo.ErrNoMatch
	}
	if b.PaymentStatus == models.PaymentPaid {
		return nil, bookingRepo.ErrNoMatch
	}
	b.PaymentStatus = models.PaymentPaid
	b.AmountPaid = amount
	b.PaymentMethodRef = methodRef
	b.PaidAt = &paidAt
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

func applySet(b *models.Booking, set map[string]interface{}) {
	for k, v := range set {
		switch k {
		case "quotedPrice":
			b.QuotedPrice = v.(float64)
		case "workerQuoteMessage":
			b.WorkerQuoteMessage = v.(string)
		case "originalPrice":
			b.OriginalPrice = v.(float64)
		case "quotedAt":
			t := v.(time.Time)
			b.QuotedAt = &t
		case "quoteExpiresAt":
			t := v.(time.Time)
			b.QuoteExpiresAt = &t
		case "respondedAt":
			t := v.(time.Time)
			b.RespondedAt = &t
		case "customerResponse":
			b.CustomerResponse = v.(string)
		case "finalPrice":
			b.FinalPrice = v.(float64)
		case "paymentStatus":
			b.PaymentStatus = v.(models.PaymentStatus)
		case "confirmedAt":
			t := v.(time.Time)
			b.ConfirmedAt = &t
		case "completedAt":
			t := v.(time.Time)
			b.CompletedAt = &t
		case "cancelledAt":
			t := v.(time.Time)
			b.CancelledAt = &t
		case "declinedAt":
			t := v.(time.Time)
			b.DeclinedAt = &t
		}
	}
}

// fakeResolver serves a fixed slot set and records invalidations.
type fakeResolver struct {
	mu          sync.Mutex
	slots       map[string][]string // date -> free slots
	invalidated []string
}

func (f *fakeResolver) AvailableSlots(ctx context.Context, professionalID, date string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots[date]
}

func (f *fakeResolver) GetWeek(ctx context.Context, professionalID, start string) (*models.WeekAvailability, error) {
	return &models.WeekAvailability{Start: start}, nil
}

func (f *fakeResolver) SetAvailability(ctx context.Context, professionalID, date string, slots []string) error {
	return nil
}

func (f *fakeResolver) InvalidateDay(ctx context.Context, professionalID, date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, date)
}

// fakeProvisioner records EnsureCustomer calls.
type fakeProvisioner struct {
	mu    sync.Mutex
	calls []string // booking IDs
}

func (f *fakeProvisioner) EnsureCustomer(ctx context.Context, b *models.Booking, trigger string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, b.ID)
	return "created", "cust-1", nil
}

func newTestService(repo *fakeBookingRepo) (*DefaultBookingService, *fakeResolver, *fakeProvisioner) {
	resolver := &fakeResolver{slots: map[string][]string{
		testDate: {"09:00", "10:00", "11:00"},
	}}
	prov := &fakeProvisioner{}
	svc := &DefaultBookingService{
		Repo:      repo,
		Resolver:  resolver,
		Customers: prov,
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return testNow },
	}
	return svc, resolver, prov
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		ProfessionalID: "pro-1",
		CustomerEmail:  "jane@example.com",
		CustomerName:   "Jane Doe",
		Service:        "Plumbing",
		Date:           testDate,
		Time:           "09:00",
		HourlyRate:     80,
	}
}

func TestCreateBooking(t *testing.T) {
	svc, resolver, _ := newTestService(newFakeBookingRepo())

	b, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "09:00", b.Time)
	assert.Equal(t, testDate, b.Datetime.Format("2006-01-02"))
	assert.Contains(t, resolver.invalidated, testDate)
}

func TestCreateBooking_PastDateRejected(t *testing.T) {
	svc, _, _ := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.Date = "2024-12-31"
	_, err := svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestCreateBooking_SlotNotOffered(t *testing.T) {
	svc, _, _ := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.Time = "23:00"
	_, err := svc.CreateBooking(context.Background(), req)

	var cerr *SlotConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestCreateBooking_ConcurrentSameSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	svc, _, _ := newTestService(repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var conflicts, successes int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var cerr *SlotConflictError
		require.ErrorAs(t, err, &cerr)
		conflicts++
	}
	assert.Equal(t, 1, successes, "exactly one create must win the slot")
	assert.Equal(t, 1, conflicts, "the loser must see a slot conflict")
}

func TestGetBooking_NotFound(t *testing.T) {
	svc, _, _ := newTestService(newFakeBookingRepo())

	_, err := svc.GetBooking(context.Background(), "missing")
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}
