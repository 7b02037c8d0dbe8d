package quote_booking

import (
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	createBooking "github.com/JamesSerenio/metyme-booking-service/internal/usecase/create_booking"
	"github.com/JamesSerenio/metyme-booking-service/pkg/ptr"
)

// QuoteBookingRequest HTTP request model: та же форма, что и при создании
type QuoteBookingRequest struct {
	CustomerName string   `json:"customerName"`
	SeatIDs      []string `json:"seatIds"`

	IsReservation   bool   `json:"isReservation"`
	ReservationDate string `json:"reservationDate,omitempty"`
	StartTime       string `json:"startTime,omitempty"`

	OpenTime bool   `json:"openTime"`
	Duration string `json:"duration,omitempty"`
}

// QuoteResponse HTTP response model с предварительным расчётом счёта
type QuoteResponse struct {
	SeatIDs []string `json:"seatIds"`
	StartAt string   `json:"startAt"`
	EndAt   *string  `json:"endAt,omitempty"`

	DurationMinutes int     `json:"durationMinutes"`
	BillableMinutes int     `json:"billableMinutes"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	OpenTime        bool    `json:"openTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteBookingRequest) ToUseCaseRequest(staffID int64) (*createBooking.Request, error) {
	seatIDs := make([]domain.SeatID, len(r.SeatIDs))
	for i, id := range r.SeatIDs {
		seatIDs[i] = domain.SeatID(id)
	}

	req := &createBooking.Request{
		StaffID:       staffID,
		CustomerName:  r.CustomerName,
		SeatIDs:       seatIDs,
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
func FromUseCaseResponse(resp *createBooking.QuoteResponse) *QuoteResponse {
	seatIDs := make([]string, len(resp.SeatIDs))
	for i, id := range resp.SeatIDs {
		seatIDs[i] = string(id)
	}

	out := &QuoteResponse{
		SeatIDs:         seatIDs,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		BillableMinutes: resp.BillableMinutes,
		Amount:          resp.Amount,
		Currency:        resp.Currency,
		OpenTime:        resp.OpenTime,
	}
	if resp.EndAt != nil {
		out.EndAt = ptr.Ptr(resp.EndAt.Format(time.RFC3339))
	}
	return out
}
