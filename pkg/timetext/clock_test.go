package timetext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
	}{
		{"2pm", 14, 0},
		{"2 pm", 14, 0},
		{"2:30pm", 14, 30},
		{"02:30 PM", 14, 30},
		{"12pm", 12, 0},
		{"12am", 0, 0},
		{"12:01am", 0, 1},
		{"11:59pm", 23, 59},
		{"230pm", 14, 30},
		{"1130am", 11, 30},
		{"14:00", 14, 0},
		{"0:00", 0, 0},
		{"00:00", 0, 0},
		{"23:59", 23, 59},
		{"1400", 14, 0},
		{"0230", 2, 30},
		{"230", 2, 30},
		{"930", 9, 30},
		{"14", 14, 0},
		{"9", 9, 0},
		{"0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			clock, err := ParseClock(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.hour, clock.Hour)
			assert.Equal(t, tt.minute, clock.Minute)
		})
	}
}

func TestParseClock_Invalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"abc",
		"25:00",
		"24:00",
		"14:60",
		"13pm",  // 12-hour form requires hour 1-12
		"0pm",
		"13:0",  // minutes must be two digits
		"2500",
		"1460",
		"12345", // too many packed digits
		"2:3pm",
		"-2:00",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseClock(input)
			assert.ErrorIs(t, err, ErrInvalidClock)
		})
	}
}

func TestClock_String(t *testing.T) {
	tests := []struct {
		clock Clock
		want  string
	}{
		{Clock{Hour: 14, Minute: 30}, "02:30 pm"},
		{Clock{Hour: 0, Minute: 0}, "12:00 am"},
		{Clock{Hour: 12, Minute: 0}, "12:00 pm"},
		{Clock{Hour: 9, Minute: 5}, "09:05 am"},
		{Clock{Hour: 23, Minute: 59}, "11:59 pm"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.clock.String())
	}
}

// The canonical form must parse back to the same clock.
func TestClock_StringRoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		clock := Clock{Hour: hour, Minute: 30}

		parsed, err := ParseClock(clock.String())
		require.NoError(t, err)
		assert.Equal(t, clock, parsed)
	}
}

func TestClock_At(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	ref := time.Date(2025, 10, 15, 8, 45, 33, 12, loc)
	clock := Clock{Hour: 14, Minute: 30}

	got := clock.At(ref)

	assert.Equal(t, time.Date(2025, 10, 15, 14, 30, 0, 0, loc), got)
}
