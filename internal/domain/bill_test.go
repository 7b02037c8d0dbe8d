package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBill(t *testing.T) {
	config := RateConfig{HourlyRate: 20.0, FreeGraceMinutes: 5}

	tests := []struct {
		name         string
		totalMinutes int
		wantBillable int
		wantAmount   float64
	}{
		{"one hour minus grace", 60, 55, 18.33},
		{"two and a half hours", 150, 145, 48.33},
		{"entirely inside grace", 5, 0, 0},
		{"below grace", 3, 0, 0},
		{"one minute past grace", 6, 1, 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := ComputeBill(tt.totalMinutes, false, config)

			assert.Equal(t, tt.totalMinutes, bill.TotalMinutes)
			assert.Equal(t, tt.wantBillable, bill.BillableMinutes)
			assert.Equal(t, tt.wantAmount, bill.Amount)
			assert.False(t, bill.OpenTime)
		})
	}
}

func TestComputeBill_NoGrace(t *testing.T) {
	config := RateConfig{HourlyRate: 20.0}

	bill := ComputeBill(90, false, config)

	assert.Equal(t, 90, bill.BillableMinutes)
	assert.Equal(t, 30.0, bill.Amount)
}

// Open time bills nothing until the booking is explicitly closed.
func TestComputeBill_OpenTime(t *testing.T) {
	config := RateConfig{HourlyRate: 20.0, FreeGraceMinutes: 5}

	bill := ComputeBill(0, true, config)

	assert.True(t, bill.OpenTime)
	assert.Zero(t, bill.TotalMinutes)
	assert.Zero(t, bill.BillableMinutes)
	assert.Zero(t, bill.Amount)
}
