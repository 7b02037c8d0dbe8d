package domain

import (
	"math"
	"time"
)

// RateConfig is the lounge's billing configuration.
type RateConfig struct {
	ID               int64
	HourlyRate       float64
	FreeGraceMinutes int
	Currency         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasGracePeriod reports whether a leading span of each booking is unbilled.
func (c *RateConfig) HasGracePeriod() bool {
	return c.FreeGraceMinutes > 0
}

// Bill is the derived price of one booking.
type Bill struct {
	TotalMinutes    int
	BillableMinutes int
	Amount          float64
	OpenTime        bool
}

// ComputeBill prices a booking of totalMinutes under the given config.
// Open-time bookings bill zero until they are explicitly closed:
// billable = max(0, total - grace), amount = round2(billable/60 * rate).
func ComputeBill(totalMinutes int, openTime bool, config RateConfig) Bill {
	if openTime {
		return Bill{OpenTime: true}
	}

	billable := totalMinutes - config.FreeGraceMinutes
	if billable < 0 {
		billable = 0
	}

	return Bill{
		TotalMinutes:    totalMinutes,
		BillableMinutes: billable,
		Amount:          round2(float64(billable) / 60.0 * config.HourlyRate),
	}
}

// round2 rounds to 2 decimal places, the only rounding applied to money.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
