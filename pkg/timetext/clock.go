// Package timetext normalizes free-form staff input ("2pm", "1400", "230")
// into canonical clock times and durations.
package timetext

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidClock is returned when a string cannot be parsed as a clock time
	// or resolves to an out-of-range hour/minute.
	ErrInvalidClock = errors.New("timetext: invalid clock time")
)

// Clock is a wall-clock time of day, minute granularity, stored in 24-hour form.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// ParseClock parses a human-entered clock shortcut into a Clock.
//
// Accepted forms (case and space insensitive):
//   - "2pm", "2:30pm", "02:30 pm" — 12-hour, hour 1-12
//   - "14:00"                     — 24-hour with colon
//   - "1400", "0230"              — packed 4-digit HHMM
//   - "230"                       — packed 3-digit HMM
//   - "14"                        — bare 24-hour hour
//
// Any out-of-range hour/minute or unparsable input returns ErrInvalidClock;
// callers must treat that as invalid input, never as a default time.
func ParseClock(raw string) (Clock, error) {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if s == "" {
		return Clock{}, fmt.Errorf("%w: empty input", ErrInvalidClock)
	}

	// 12-hour forms end in am/pm
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		meridiem := s[len(s)-2:]
		return parseTwelveHour(s[:len(s)-2], meridiem)
	}

	// 24-hour form with colon
	if strings.Contains(s, ":") {
		hour, minute, err := splitColonForm(s)
		if err != nil {
			return Clock{}, err
		}
		return newClock(hour, minute)
	}

	// Packed digit forms
	if !isDigits(s) {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	switch len(s) {
	case 1, 2: // bare hour
		hour, _ := strconv.Atoi(s)
		return newClock(hour, 0)
	case 3: // HMM
		hour, _ := strconv.Atoi(s[:1])
		minute, _ := strconv.Atoi(s[1:])
		return newClock(hour, minute)
	case 4: // HHMM
		hour, _ := strconv.Atoi(s[:2])
		minute, _ := strconv.Atoi(s[2:])
		return newClock(hour, minute)
	default:
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
}

// parseTwelveHour parses the numeric part of an am/pm form ("2", "2:30", "230").
func parseTwelveHour(s, meridiem string) (Clock, error) {
	var hour, minute int
	var err error

	switch {
	case strings.Contains(s, ":"):
		hour, minute, err = splitColonForm(s)
		if err != nil {
			return Clock{}, err
		}
	case isDigits(s) && len(s) >= 1 && len(s) <= 2:
		hour, _ = strconv.Atoi(s)
	case isDigits(s) && len(s) == 3:
		hour, _ = strconv.Atoi(s[:1])
		minute, _ = strconv.Atoi(s[1:])
	case isDigits(s) && len(s) == 4:
		hour, _ = strconv.Atoi(s[:2])
		minute, _ = strconv.Atoi(s[2:])
	default:
		return Clock{}, fmt.Errorf("%w: %q%s", ErrInvalidClock, s, meridiem)
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q%s", ErrInvalidClock, s, meridiem)
	}

	hour = hour % 12
	if meridiem == "pm" {
		hour += 12
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// splitColonForm splits "H:MM" / "HH:MM" without range-checking the hour.
func splitColonForm(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || !isDigits(parts[0]) || len(parts[1]) != 2 || !isDigits(parts[1]) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute out of range in %q", ErrInvalidClock, s)
	}
	return hour, minute, nil
}

func newClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

// String returns the canonical 12-hour form, "HH:MM am|pm".
func (c Clock) String() string {
	meridiem := "am"
	hour := c.Hour
	if hour >= 12 {
		meridiem = "pm"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hour, c.Minute, meridiem)
}

// At combines the clock with the calendar date of ref, in ref's location.
func (c Clock) At(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), c.Hour, c.Minute, 0, 0, ref.Location())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
