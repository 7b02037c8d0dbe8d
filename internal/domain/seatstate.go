package domain

import "time"

// SeatID is an opaque key naming a bookable unit. The set of valid identifiers
// comes from the externally configured seat map, never from this service.
type SeatID string

// SeatState is the derived, never-persisted state a seat shows on the map.
type SeatState string

const (
	SeatAvailable           SeatState = "available"
	SeatTemporarilyOccupied SeatState = "temporarily_occupied"
	SeatOccupied            SeatState = "occupied"
	SeatReserved            SeatState = "reserved"
)

// precedence orders states for combining: a temporary hold showing on top of a
// reservation must win, a current booking beats a future one.
func (s SeatState) precedence() int {
	switch s {
	case SeatTemporarilyOccupied:
		return 3
	case SeatOccupied:
		return 2
	case SeatReserved:
		return 1
	default:
		return 0
	}
}

// Beats reports whether s takes display precedence over other.
func (s SeatState) Beats(other SeatState) bool {
	return s.precedence() > other.precedence()
}

// ClassifySeat derives the state of one seat from its active booking rows at
// instant now. Rules, combined by precedence:
//
//   - reserved_block rows make the seat Reserved regardless of their window
//   - a temporary_hold covering now makes it TemporarilyOccupied
//   - any other active row covering now makes it Occupied
//   - a row strictly in the future makes it Reserved
//   - no overlapping or future rows: Available
func ClassifySeat(records []*Booking, now time.Time) SeatState {
	state := SeatAvailable

	for _, rec := range records {
		if !rec.IsActive() {
			continue
		}

		candidate := SeatAvailable
		switch {
		case rec.Kind == KindReservedBlock:
			candidate = SeatReserved
		case rec.Interval.Covers(now):
			if rec.Kind == KindTemporaryHold {
				candidate = SeatTemporarilyOccupied
			} else {
				candidate = SeatOccupied
			}
		case rec.Interval.IsFuture(now):
			candidate = SeatReserved
		}

		if candidate.Beats(state) {
			state = candidate
		}
	}

	return state
}

// ClassifySeats derives the state of every seat in seatIDs from a mixed set of
// booking rows. Seats without any rows are Available.
func ClassifySeats(seatIDs []SeatID, records []*Booking, now time.Time) map[SeatID]SeatState {
	bySeat := make(map[SeatID][]*Booking, len(seatIDs))
	for _, rec := range records {
		bySeat[rec.SeatID] = append(bySeat[rec.SeatID], rec)
	}

	states := make(map[SeatID]SeatState, len(seatIDs))
	for _, id := range seatIDs {
		states[id] = ClassifySeat(bySeat[id], now)
	}
	return states
}

// ConflictingSeats returns, in request order, the seats whose candidate
// interval overlaps at least one active row. A multi-seat request conflicts if
// any of its seats conflicts.
func ConflictingSeats(seatIDs []SeatID, candidate Interval, records []*Booking) []SeatID {
	occupied := make(map[SeatID]bool)
	for _, rec := range records {
		if !rec.IsActive() {
			continue
		}
		if rec.Interval.Overlaps(candidate) {
			occupied[rec.SeatID] = true
		}
	}

	conflicts := make([]SeatID, 0)
	for _, id := range seatIDs {
		if occupied[id] {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts
}
