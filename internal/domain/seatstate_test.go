package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stretchr/testify/assert"
)

func row(seat SeatID, kind BookingKind, status BookingStatus, start time.Time, end *time.Time) *Booking {
	return &Booking{
		GroupID:  uuid.New(),
		SeatID:   seat,
		Kind:     kind,
		Status:   status,
		Interval: Interval{Start: start, End: end},
	}
}

func endAt(t time.Time) *time.Time { return &t }

func TestClassifySeat(t *testing.T) {
	now := at(12, 0)

	tests := []struct {
		name    string
		records []*Booking
		want    SeatState
	}{
		{
			name:    "no records",
			records: nil,
			want:    SeatAvailable,
		},
		{
			name: "regular booking covering now",
			records: []*Booking{
				row("3", KindRegular, StatusActive, at(11, 0), endAt(at(13, 0))),
			},
			want: SeatOccupied,
		},
		{
			name: "temporary hold covering now",
			records: []*Booking{
				row("3", KindTemporaryHold, StatusActive, at(11, 0), endAt(at(13, 0))),
			},
			want: SeatTemporarilyOccupied,
		},
		{
			name: "future booking",
			records: []*Booking{
				row("3", KindRegular, StatusActive, at(15, 0), endAt(at(16, 0))),
			},
			want: SeatReserved,
		},
		{
			name: "reserved block outside its window still shows reserved",
			records: []*Booking{
				row("3", KindReservedBlock, StatusActive, at(8, 0), endAt(at(9, 0))),
			},
			want: SeatReserved,
		},
		{
			name: "expired booking",
			records: []*Booking{
				row("3", KindRegular, StatusActive, at(9, 0), endAt(at(10, 0))),
			},
			want: SeatAvailable,
		},
		{
			name: "cancelled rows are ignored",
			records: []*Booking{
				row("3", KindRegular, StatusCancelled, at(11, 0), endAt(at(13, 0))),
			},
			want: SeatAvailable,
		},
		{
			name: "current regular beats future promo",
			records: []*Booking{
				row("3", KindPromoFuture, StatusActive, at(15, 0), endAt(at(16, 0))),
				row("3", KindRegular, StatusActive, at(11, 0), endAt(at(13, 0))),
			},
			want: SeatOccupied,
		},
		{
			name: "temporary hold beats current regular",
			records: []*Booking{
				row("3", KindRegular, StatusActive, at(11, 0), endAt(at(13, 0))),
				row("3", KindTemporaryHold, StatusActive, at(11, 30), endAt(at(12, 30))),
			},
			want: SeatTemporarilyOccupied,
		},
		{
			name: "open-ended booking covers now",
			records: []*Booking{
				row("3", KindRegular, StatusActive, at(9, 0), nil),
			},
			want: SeatOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeat(tt.records, now))
		})
	}
}

func TestClassifySeats(t *testing.T) {
	now := at(12, 0)
	seatIDs := []SeatID{"1", "2", "3"}

	records := []*Booking{
		row("1", KindRegular, StatusActive, at(11, 0), endAt(at(13, 0))),
		row("3", KindPromoFuture, StatusActive, at(15, 0), endAt(at(16, 0))),
	}

	states := ClassifySeats(seatIDs, records, now)

	assert.Equal(t, SeatOccupied, states["1"])
	assert.Equal(t, SeatAvailable, states["2"], "seat without rows is available")
	assert.Equal(t, SeatReserved, states["3"])
}

func TestConflictingSeats(t *testing.T) {
	candidate := Interval{Start: at(11, 0), End: endAt(at(12, 0))}

	records := []*Booking{
		row("1", KindRegular, StatusActive, at(11, 30), endAt(at(13, 0))),
		row("2", KindRegular, StatusCancelled, at(11, 0), endAt(at(12, 0))), // inactive, ignored
		row("3", KindRegular, StatusActive, at(12, 0), endAt(at(13, 0))),    // touches, no overlap
		row("4", KindReservedBlock, StatusActive, at(10, 0), nil),
	}

	conflicts := ConflictingSeats([]SeatID{"1", "2", "3", "4", "5"}, candidate, records)

	assert.Equal(t, []SeatID{"1", "4"}, conflicts)
}
