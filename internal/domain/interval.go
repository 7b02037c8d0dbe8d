package domain

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned for a bounded interval whose end does not
// come strictly after its start.
var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open time window [Start, End). A nil End means the
// window is open-ended: it extends to +infinity until explicitly closed.
type Interval struct {
	Start time.Time
	End   *time.Time
}

// NewInterval builds a bounded interval, rejecting end <= start.
func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	e := end
	return Interval{Start: start, End: &e}, nil
}

// NewOpenInterval builds an open-ended interval starting at start.
func NewOpenInterval(start time.Time) Interval {
	return Interval{Start: start}
}

// IsOpenEnded reports whether the interval has no end.
func (i Interval) IsOpenEnded() bool {
	return i.End == nil
}

// Validate checks the start/end ordering of an externally built interval.
func (i Interval) Validate() error {
	if i.End != nil && !i.End.After(i.Start) {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether two half-open intervals share any instant:
// s1 < e2 && s2 < e1, with a nil end standing in for +infinity. Touching
// boundaries ([10:00,11:00) and [11:00,12:00)) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	startsBeforeOtherEnds := other.End == nil || i.Start.Before(*other.End)
	otherStartsBeforeEnds := i.End == nil || other.Start.Before(*i.End)
	return startsBeforeOtherEnds && otherStartsBeforeEnds
}

// Covers reports whether t falls inside the interval. The start is included,
// the end is not.
func (i Interval) Covers(t time.Time) bool {
	if t.Before(i.Start) {
		return false
	}
	return i.End == nil || t.Before(*i.End)
}

// IsFuture reports whether the interval starts strictly after t.
func (i Interval) IsFuture(t time.Time) bool {
	return i.Start.After(t)
}
