package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	bookingRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/booking"
	rateRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/rateconfig"
	"github.com/JamesSerenio/metyme-booking-service/internal/integrations/seatmap"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings/models"
)

// Фейки зависимостей

type fakeRepo struct {
	groups map[uuid.UUID][]*domain.Booking

	cancelled       []uuid.UUID
	cancelReason    string
	closedEnd       time.Time
	closedBill      domain.Bill
	created         []*domain.Booking
	deletedSeat     domain.SeatID
	deletedAt       time.Time
	deletedOverride int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{groups: make(map[uuid.UUID][]*domain.Booking)}
}

func (f *fakeRepo) CreateGroup(_ context.Context, rows []*domain.Booking) ([]*domain.Booking, error) {
	for i, row := range rows {
		row.ID = int64(i + 1)
	}
	f.created = rows
	f.groups[rows[0].GroupID] = rows
	return rows, nil
}

func (f *fakeRepo) GetByGroupID(_ context.Context, groupID uuid.UUID) ([]*domain.Booking, error) {
	rows, ok := f.groups[groupID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return rows, nil
}

func (f *fakeRepo) GetOverlapping(_ context.Context, _ domain.SeatBookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeRepo) CancelGroup(_ context.Context, groupID uuid.UUID, reason string) error {
	f.cancelled = append(f.cancelled, groupID)
	f.cancelReason = reason
	for _, row := range f.groups[groupID] {
		row.Status = domain.StatusCancelled
	}
	return nil
}

func (f *fakeRepo) CloseGroup(_ context.Context, groupID uuid.UUID, end time.Time, bill domain.Bill) error {
	f.closedEnd = end
	f.closedBill = bill
	for _, row := range f.groups[groupID] {
		row.Status = domain.StatusClosed
		row.Interval.End = &end
		row.DurationMinutes = bill.TotalMinutes
		row.Amount = bill.Amount
		row.OpenTime = false
	}
	return nil
}

func (f *fakeRepo) DeleteOverridesCovering(_ context.Context, seatID domain.SeatID, at time.Time) (int64, error) {
	f.deletedSeat = seatID
	f.deletedAt = at
	return f.deletedOverride, nil
}

type fakeRateRepo struct{}

func (f *fakeRateRepo) GetCurrent(_ context.Context) (*domain.RateConfig, error) {
	return nil, rateRepo.ErrConfigNotFound
}

type fakeSeatMap struct{}

func (f *fakeSeatMap) GetSeatMap(_ context.Context) (*seatmap.SeatMap, error) {
	return &seatmap.SeatMap{
		LoungeName: "Me Tyme Lounge",
		Seats: []seatmap.Seat{
			{ID: "3", Label: "Seat 3", Zone: "common"},
		},
	}, nil
}

type fakeNotifier struct {
	published [][]domain.SeatID
}

func (f *fakeNotifier) PublishSeatChange(_ context.Context, seatIDs []domain.SeatID) {
	f.published = append(f.published, seatIDs)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo, notifier *fakeNotifier, now time.Time) *Service {
	svc := NewService(repo, &fakeRateRepo{}, &fakeSeatMap{}, notifier, time.UTC, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func seedGroup(repo *fakeRepo, groupID uuid.UUID, openTime bool, start time.Time) {
	booking := &domain.Booking{
		ID:           1,
		GroupID:      groupID,
		SeatID:       "3",
		CustomerName: "Juan Dela Cruz",
		Kind:         domain.KindRegular,
		Status:       domain.StatusActive,
		Interval:     domain.Interval{Start: start},
		OpenTime:     openTime,
	}
	if !openTime {
		end := start.Add(2 * time.Hour)
		booking.Interval.End = &end
		booking.DurationMinutes = 120
	}
	repo.groups[groupID] = []*domain.Booking{booking}
}

func TestCancel(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, now)

	groupID := uuid.New()
	seedGroup(repo, groupID, false, now)

	err := svc.Cancel(context.Background(), groupID, &models.CancelBookingRequest{
		StaffID:            7,
		CancellationReason: "customer changed plans",
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{groupID}, repo.cancelled)
	assert.Equal(t, "customer changed plans", repo.cancelReason)
	require.Len(t, notifier.published, 1)
	assert.Equal(t, []domain.SeatID{"3"}, notifier.published[0])
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{}, now)

	groupID := uuid.New()
	seedGroup(repo, groupID, false, now)
	repo.groups[groupID][0].Status = domain.StatusCancelled

	err := svc.Cancel(context.Background(), groupID, &models.CancelBookingRequest{StaffID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeRepo(), &fakeNotifier{}, now)

	err := svc.Cancel(context.Background(), uuid.New(), &models.CancelBookingRequest{StaffID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// Закрытие открытого времени: конец = "сейчас", сумма по фактическим минутам
// и дефолтному тарифу (20.00/час, без грейса).
func TestClose_OpenTime(t *testing.T) {
	start := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	now := start.Add(95 * time.Minute)
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, now)

	groupID := uuid.New()
	seedGroup(repo, groupID, true, start)

	resp, err := svc.Close(context.Background(), groupID)
	require.NoError(t, err)

	assert.Equal(t, now, repo.closedEnd)
	assert.Equal(t, 95, repo.closedBill.TotalMinutes)
	assert.Equal(t, 31.67, repo.closedBill.Amount) // 95/60 * 20.00

	assert.Equal(t, string(domain.StatusClosed), resp.Status)
	assert.Equal(t, 95, resp.DurationMinutes)
	require.Len(t, notifier.published, 1)
}

func TestClose_NotOpenTime(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{}, now)

	groupID := uuid.New()
	seedGroup(repo, groupID, false, now)

	_, err := svc.Close(context.Background(), groupID)

	assert.ErrorIs(t, err, ErrCannotClose)
}

func TestCreateOverride(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, now)

	end := now.Add(time.Hour)
	resp, err := svc.CreateOverride(context.Background(), &models.CreateOverrideRequest{
		StaffID: 7,
		SeatID:  "3",
		Kind:    domain.KindReservedBlock,
		Label:   "private event",
		StartAt: now,
		EndAt:   &end,
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.KindReservedBlock, repo.created[0].Kind)
	assert.Equal(t, "private event", repo.created[0].CustomerName)
	assert.Equal(t, string(domain.KindReservedBlock), resp.Kind)
	require.Len(t, notifier.published, 1)
}

func TestCreateOverride_RejectsRegularKind(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeRepo(), &fakeNotifier{}, now)

	_, err := svc.CreateOverride(context.Background(), &models.CreateOverrideRequest{
		StaffID: 7,
		SeatID:  "3",
		Kind:    domain.KindRegular,
		StartAt: now,
	})

	assert.ErrorIs(t, err, ErrInvalidOverride)
}

func TestCreateOverride_RejectsMissingStart(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeNotifier{}, now)

	_, err := svc.CreateOverride(context.Background(), &models.CreateOverrideRequest{
		StaffID: 7,
		SeatID:  "3",
		Kind:    domain.KindTemporaryHold,
	})

	assert.ErrorIs(t, err, ErrInvalidOverride)
	assert.Empty(t, repo.created, "nothing written for a window without a start")
}

func TestCreateOverride_UnknownSeat(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	svc := newTestService(newFakeRepo(), &fakeNotifier{}, now)

	_, err := svc.CreateOverride(context.Background(), &models.CreateOverrideRequest{
		StaffID: 7,
		SeatID:  "99",
		Kind:    domain.KindTemporaryHold,
		StartAt: now,
	})

	assert.ErrorIs(t, err, ErrUnknownSeat)
}

func TestClearOverrides(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	repo.deletedOverride = 2
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, now)

	removed, err := svc.ClearOverrides(context.Background(), "3")
	require.NoError(t, err)

	assert.Equal(t, int64(2), removed)
	assert.Equal(t, domain.SeatID("3"), repo.deletedSeat)
	// Удаляются только оверрайды, действующие в текущий момент
	assert.Equal(t, now, repo.deletedAt)
	require.Len(t, notifier.published, 1)
}

func TestClearOverrides_NothingRemoved(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC)
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier, now)

	removed, err := svc.ClearOverrides(context.Background(), "3")
	require.NoError(t, err)

	assert.Zero(t, removed)
	assert.Empty(t, notifier.published, "no event when nothing was removed")
}
