package get_seat_statuses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/internal/integrations/seatmap"
)

type fakeBookingRepo struct {
	records    []*domain.Booking
	lastFilter domain.SeatBookingsFilter
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, filter domain.SeatBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.records, nil
}

type fakeSeatMap struct {
	err error
}

func (f *fakeSeatMap) GetSeatMap(_ context.Context) (*seatmap.SeatMap, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &seatmap.SeatMap{
		LoungeName: "Me Tyme Lounge",
		Seats: []seatmap.Seat{
			{ID: "1", Label: "Seat 1", Zone: "common"},
			{ID: "2", Label: "Seat 2", Zone: "common"},
			{ID: "R1", Label: "Room 1", Zone: "room"},
		},
	}, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	end := now.Add(time.Hour)

	repo := &fakeBookingRepo{
		records: []*domain.Booking{
			{
				SeatID:   "1",
				Kind:     domain.KindRegular,
				Status:   domain.StatusActive,
				Interval: domain.Interval{Start: now.Add(-time.Hour), End: &end},
			},
			{
				SeatID:   "R1",
				Kind:     domain.KindTemporaryHold,
				Status:   domain.StatusActive,
				Interval: domain.Interval{Start: now.Add(-10 * time.Minute), End: &end},
			},
		},
	}
	uc := NewUseCase(repo, &fakeSeatMap{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Me Tyme Lounge", resp.LoungeName)
	assert.Equal(t, now, resp.AsOf)

	// Места идут в порядке карты
	require.Len(t, resp.Seats, 3)
	assert.Equal(t, "1", resp.Seats[0].SeatID)
	assert.Equal(t, string(domain.SeatOccupied), resp.Seats[0].Status)
	assert.Equal(t, string(domain.SeatAvailable), resp.Seats[1].Status)
	assert.Equal(t, string(domain.SeatTemporarilyOccupied), resp.Seats[2].Status)

	// Выборка отсекает строки, закончившиеся до "сейчас"
	require.NotNil(t, repo.lastFilter.From)
	assert.Equal(t, now, *repo.lastFilter.From)
	assert.Nil(t, repo.lastFilter.To)
}

func TestExecute_ExplicitInstant(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	at := now.Add(2 * time.Hour)
	end := at.Add(time.Hour)

	// Бронь активна только в запрошенный момент, не в "сейчас"
	repo := &fakeBookingRepo{
		records: []*domain.Booking{
			{
				SeatID:   "1",
				Kind:     domain.KindRegular,
				Status:   domain.StatusActive,
				Interval: domain.Interval{Start: at.Add(-10 * time.Minute), End: &end},
			},
		},
	}
	uc := NewUseCase(repo, &fakeSeatMap{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{At: &at})
	require.NoError(t, err)

	assert.Equal(t, at, resp.AsOf)
	assert.Equal(t, string(domain.SeatOccupied), resp.Seats[0].Status)

	// Выборка и классификация идут от запрошенного момента, не от "сейчас"
	require.NotNil(t, repo.lastFilter.From)
	assert.Equal(t, at, *repo.lastFilter.From)
}

func TestExecute_SeatMapUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeSeatMap{err: errors.New("connection refused")}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Now()}

	_, err := uc.Execute(context.Background(), nil)

	assert.ErrorIs(t, err, ErrSeatMapUnavailable)
}
