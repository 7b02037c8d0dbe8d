package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 10, 15, hour, minute, 0, 0, time.UTC)
}

func bounded(t *testing.T, startHour, startMin, endHour, endMin int) Interval {
	t.Helper()
	interval, err := NewInterval(at(startHour, startMin), at(endHour, endMin))
	require.NoError(t, err)
	return interval
}

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval(at(10, 0), at(11, 0))
	require.NoError(t, err)
	assert.False(t, interval.IsOpenEnded())

	_, err = NewInterval(at(11, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "touching boundaries do not overlap",
			a:    bounded(t, 10, 0, 11, 0),
			b:    bounded(t, 11, 0, 12, 0),
			want: false,
		},
		{
			name: "one minute past the boundary overlaps",
			a:    bounded(t, 10, 0, 11, 1),
			b:    bounded(t, 11, 0, 12, 0),
			want: true,
		},
		{
			name: "contained interval overlaps",
			a:    bounded(t, 10, 0, 14, 0),
			b:    bounded(t, 11, 0, 12, 0),
			want: true,
		},
		{
			name: "disjoint intervals do not overlap",
			a:    bounded(t, 8, 0, 9, 0),
			b:    bounded(t, 11, 0, 12, 0),
			want: false,
		},
		{
			name: "open end overlaps any later interval",
			a:    NewOpenInterval(at(10, 0)),
			b:    bounded(t, 18, 0, 19, 0),
			want: true,
		},
		{
			name: "open end does not reach earlier interval",
			a:    NewOpenInterval(at(10, 0)),
			b:    bounded(t, 8, 0, 10, 0),
			want: false,
		},
		{
			name: "two open intervals always overlap",
			a:    NewOpenInterval(at(10, 0)),
			b:    NewOpenInterval(at(22, 0)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_Covers(t *testing.T) {
	interval := bounded(t, 10, 0, 11, 0)

	assert.True(t, interval.Covers(at(10, 0)), "start is included")
	assert.True(t, interval.Covers(at(10, 30)))
	assert.False(t, interval.Covers(at(11, 0)), "end is excluded")
	assert.False(t, interval.Covers(at(9, 59)))

	open := NewOpenInterval(at(10, 0))
	assert.True(t, open.Covers(at(23, 59)))
	assert.False(t, open.Covers(at(9, 59)))
}

func TestInterval_IsFuture(t *testing.T) {
	interval := bounded(t, 10, 0, 11, 0)

	assert.True(t, interval.IsFuture(at(9, 0)))
	assert.False(t, interval.IsFuture(at(10, 0)))
	assert.False(t, interval.IsFuture(at(10, 30)))
}
