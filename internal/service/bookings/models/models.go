package models

import (
	"errors"
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/pkg/ptr"
)

var (
	// ErrInvalidKind возвращается при некорректном виде бронирования
	ErrInvalidKind = errors.New("invalid booking kind")

	// ErrEmptyGroup возвращается при попытке собрать ответ из пустой группы строк
	ErrEmptyGroup = errors.New("empty booking group")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	StaffID            int64  `json:"staffId"`
	CancellationReason string `json:"cancellationReason"`
}

// CreateOverrideRequest запрос на принудительный статус места
type CreateOverrideRequest struct {
	StaffID int64              `json:"staffId"`
	SeatID  domain.SeatID      `json:"seatId"`
	Kind    domain.BookingKind `json:"kind"`
	Label   string             `json:"label"`
	StartAt time.Time          `json:"startAt"`
	EndAt   *time.Time         `json:"endAt,omitempty"` // nil = без конца
}

// Response модели

// BookingGroupResponse агрегированный ответ по группе бронирования
type BookingGroupResponse struct {
	GroupID         string   `json:"groupId"`
	CustomerName    string   `json:"customerName"`
	SeatIDs         []string `json:"seatIds"`
	Kind            string   `json:"kind"`
	Status          string   `json:"status"`
	StartAt         string   `json:"startAt"`                   // RFC 3339
	EndAt           *string  `json:"endAt,omitempty"`           // nil = открытое время
	DurationMinutes int      `json:"durationMinutes"`
	Amount          float64  `json:"amount"`
	OpenTime        bool     `json:"openTime"`
	IsReservation   bool     `json:"isReservation"`
	ReservationDate *string  `json:"reservationDate,omitempty"` // YYYY-MM-DD

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SeatBookingResponse одна строка бронирования для списка по месту
type SeatBookingResponse struct {
	ID           int64   `json:"id"`
	GroupID      string  `json:"groupId"`
	SeatID       string  `json:"seatId"`
	CustomerName string  `json:"customerName"`
	Kind         string  `json:"kind"`
	Status       string  `json:"status"`
	StartAt      string  `json:"startAt"`
	EndAt        *string `json:"endAt,omitempty"`
	Amount       float64 `json:"amount"`
	OpenTime     bool    `json:"openTime"`
}

// SeatBookingListResponse ответ со списком строк бронирований
type SeatBookingListResponse struct {
	Bookings []SeatBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainGroup собирает агрегированный ответ из строк одной группы.
// Все строки группы разделяют интервал, вид и биллинг; различаются местами.
func FromDomainGroup(rows []*domain.Booking) (*BookingGroupResponse, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGroup
	}

	head := rows[0]
	resp := &BookingGroupResponse{
		GroupID:         head.GroupID.String(),
		CustomerName:    head.CustomerName,
		SeatIDs:         make([]string, len(rows)),
		Kind:            string(head.Kind),
		Status:          string(head.Status),
		StartAt:         head.Interval.Start.Format(time.RFC3339),
		DurationMinutes: head.DurationMinutes,
		Amount:          head.Amount,
		OpenTime:        head.OpenTime,
		IsReservation:   head.IsReservation,
		CreatedAt:       head.CreatedAt,
		UpdatedAt:       head.UpdatedAt,
	}

	for i, row := range rows {
		resp.SeatIDs[i] = string(row.SeatID)
	}

	if head.Interval.End != nil {
		resp.EndAt = ptr.Ptr(head.Interval.End.Format(time.RFC3339))
	}
	if head.ReservationDate != nil {
		resp.ReservationDate = ptr.Ptr(head.ReservationDate.Format(domain.DateFormat))
	}
	resp.CancellationReason = head.CancellationReason
	if head.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(head.CancelledAt.Format(time.RFC3339))
	}

	return resp, nil
}

// FromDomainRows конвертирует строки бронирований в список DTO
func FromDomainRows(rows []*domain.Booking) *SeatBookingListResponse {
	resp := &SeatBookingListResponse{
		Bookings: make([]SeatBookingResponse, len(rows)),
	}

	for i, row := range rows {
		item := SeatBookingResponse{
			ID:           row.ID,
			GroupID:      row.GroupID.String(),
			SeatID:       string(row.SeatID),
			CustomerName: row.CustomerName,
			Kind:         string(row.Kind),
			Status:       string(row.Status),
			StartAt:      row.Interval.Start.Format(time.RFC3339),
			Amount:       row.Amount,
			OpenTime:     row.OpenTime,
		}
		if row.Interval.End != nil {
			item.EndAt = ptr.Ptr(row.Interval.End.Format(time.RFC3339))
		}
		resp.Bookings[i] = item
	}

	return resp
}

// ToDomainOverrideKind конвертирует строку в принудительный вид бронирования.
// Допустимы только виды-оверрайды; обычное бронирование через админку не создаётся.
func ToDomainOverrideKind(kind string) (domain.BookingKind, error) {
	k := domain.BookingKind(kind)
	if !k.IsOverride() {
		return "", ErrInvalidKind
	}
	return k, nil
}
