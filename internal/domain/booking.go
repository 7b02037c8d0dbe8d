package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingKind tags the source of a booking record. It is set explicitly at
// creation time and never inferred from the customer name.
type BookingKind string

const (
	KindRegular       BookingKind = "regular"        // walk-in or reservation made at the counter
	KindTemporaryHold BookingKind = "temporary_hold" // short-lived hold while a customer decides
	KindPromoCurrent  BookingKind = "promo_current"  // promotional booking running now
	KindPromoFuture   BookingKind = "promo_future"   // promotional booking scheduled ahead
	KindReservedBlock BookingKind = "reserved_block" // seat blocked by staff
)

// IsOverride reports whether the kind is one of the staff-forced seat states
// rather than a regular customer booking.
func (k BookingKind) IsOverride() bool {
	return k == KindTemporaryHold || k == KindPromoCurrent ||
		k == KindPromoFuture || k == KindReservedBlock
}

// BookingStatus is the lifecycle state of a booking row.
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusClosed    BookingStatus = "closed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is one seat of a booking group. A multi-seat booking is stored as
// one row per seat sharing a GroupID; conflict checks and status
// classification work on these rows directly.
type Booking struct {
	ID           int64
	GroupID      uuid.UUID
	SeatID       SeatID
	CustomerName string
	Kind         BookingKind
	Status       BookingStatus
	Interval     Interval

	// Billing snapshot taken at creation; recomputed at close for open time
	DurationMinutes int
	Amount          float64
	OpenTime        bool

	IsReservation   bool
	ReservationDate *time.Time

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the row participates in conflict checks.
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// CanBeCancelled reports whether the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// CanBeClosed reports whether the booking is an open-time booking that can be
// closed out.
func (b *Booking) CanBeClosed() bool {
	return b.Status == StatusActive && b.OpenTime
}

// SeatBookingsFilter фильтр для выборки строк бронирований
type SeatBookingsFilter struct {
	SeatIDs         []SeatID   // Пустой срез = все места
	From            *time.Time // Начало окна (опционально)
	To              *time.Time // Конец окна (опционально)
	IncludeInactive bool       // Включать ли отменённые и закрытые строки
}
