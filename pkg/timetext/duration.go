package timetext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidDuration is returned when a string cannot be parsed as a duration.
	ErrInvalidDuration = errors.New("timetext: invalid duration")

	// ErrZeroDuration is returned when a duration normalizes to zero minutes.
	// A zero duration is always an input error, never silently accepted.
	ErrZeroDuration = errors.New("timetext: duration must be greater than zero")
)

// Duration is an elapsed span in whole minutes. Unlike Clock, hours are not
// bounded by 24: "100:30" is a valid hundred-and-half-hour duration.
type Duration struct {
	Hours   int
	Minutes int // 0-59
}

// ParseDuration parses a human-entered duration into a Duration.
//
// Accepted forms:
//   - "2"      -> 02:00 (bare hours)
//   - "2:30"   -> 02:30
//   - "0:45"   -> 00:45
//   - "100:30" -> 100:30 (hours may exceed 23)
//   - "230"    -> 02:30 (packed digits; the trailing two digits are taken as
//     minutes when they are a valid minute value, otherwise the whole number
//     is treated as an hour count)
//
// A duration of zero minutes returns ErrZeroDuration.
func ParseDuration(raw string) (Duration, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if s == "" {
		return Duration{}, fmt.Errorf("%w: empty input", ErrInvalidDuration)
	}

	var d Duration

	switch {
	case strings.Contains(s, ":"):
		parts := strings.SplitN(s, ":", 2)
		if len(parts) != 2 || !isDigits(parts[0]) || len(parts[1]) != 2 || !isDigits(parts[1]) {
			return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		d.Hours, _ = strconv.Atoi(parts[0])
		d.Minutes, _ = strconv.Atoi(parts[1])
		if d.Minutes > 59 {
			return Duration{}, fmt.Errorf("%w: minute out of range in %q", ErrInvalidDuration, raw)
		}

	case isDigits(s) && len(s) <= 2:
		d.Hours, _ = strconv.Atoi(s)

	case isDigits(s):
		// Packed-digit parse first; whole-hours fallback when the packed
		// minute part would be invalid.
		minutes, _ := strconv.Atoi(s[len(s)-2:])
		if minutes <= 59 {
			d.Hours, _ = strconv.Atoi(s[:len(s)-2])
			d.Minutes = minutes
		} else {
			d.Hours, _ = strconv.Atoi(s)
		}

	default:
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}

	if d.TotalMinutes() == 0 {
		return Duration{}, ErrZeroDuration
	}
	return d, nil
}

// TotalMinutes returns the duration in whole minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// AddTo returns start advanced by the duration. Minute arithmetic only.
func (d Duration) AddTo(start time.Time) time.Time {
	return start.Add(time.Duration(d.TotalMinutes()) * time.Minute)
}

// String returns the canonical "HH:MM" form; hours widen past two digits.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d", d.Hours, d.Minutes)
}
