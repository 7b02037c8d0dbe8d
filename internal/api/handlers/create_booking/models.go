package create_booking

import (
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	createBooking "github.com/JamesSerenio/metyme-booking-service/internal/usecase/create_booking"
	"github.com/JamesSerenio/metyme-booking-service/pkg/ptr"
)

// CreateBookingRequest HTTP request model.
// Время начала и длительность приходят текстом как их набрал кассир:
// "2pm", "2:30pm", "14:00", "230" — нормализация происходит в usecase.
type CreateBookingRequest struct {
	CustomerName string   `json:"customerName"`
	SeatIDs      []string `json:"seatIds"`

	IsReservation   bool   `json:"isReservation"`
	ReservationDate string `json:"reservationDate,omitempty"` // "2025-10-15"
	StartTime       string `json:"startTime,omitempty"`

	OpenTime bool   `json:"openTime"`
	Duration string `json:"duration,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	GroupID      string   `json:"groupId"`
	CustomerName string   `json:"customerName"`
	SeatIDs      []string `json:"seatIds"`
	Status       string   `json:"status"`

	StartAt string  `json:"startAt"`
	EndAt   *string `json:"endAt,omitempty"`

	DurationMinutes int     `json:"durationMinutes"`
	BillableMinutes int     `json:"billableMinutes"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	OpenTime        bool    `json:"openTime"`

	IsReservation   bool    `json:"isReservation"`
	ReservationDate *string `json:"reservationDate,omitempty"`

	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(staffID int64) (*createBooking.Request, error) {
	req := &createBooking.Request{
		StaffID:       staffID,
		CustomerName:  r.CustomerName,
		SeatIDs:       toSeatIDs(r.SeatIDs),
		IsReservation: r.IsReservation,
		StartTimeText: r.StartTime,
		OpenTime:      r.OpenTime,
		DurationText:  r.Duration,
	}

	if r.IsReservation {
		date, err := time.Parse(domain.DateFormat, r.ReservationDate)
		if err != nil {
			return nil, err
		}
		req.ReservationDate = date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		GroupID:         resp.GroupID,
		CustomerName:    resp.CustomerName,
		SeatIDs:         fromSeatIDs(resp.SeatIDs),
		Status:          resp.Status,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		BillableMinutes: resp.BillableMinutes,
		Amount:          resp.Amount,
		Currency:        resp.Currency,
		OpenTime:        resp.OpenTime,
		IsReservation:   resp.IsReservation,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.EndAt != nil {
		out.EndAt = ptr.Ptr(resp.EndAt.Format(time.RFC3339))
	}
	if resp.ReservationDate != nil {
		out.ReservationDate = ptr.Ptr(resp.ReservationDate.Format(domain.DateFormat))
	}
	return out
}

func toSeatIDs(ids []string) []domain.SeatID {
	out := make([]domain.SeatID, len(ids))
	for i, id := range ids {
		out[i] = domain.SeatID(id)
	}
	return out
}

func fromSeatIDs(ids []domain.SeatID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
