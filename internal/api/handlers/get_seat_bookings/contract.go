package get_seat_bookings

import (
	"context"
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetBySeatAndDate(ctx context.Context, seatID domain.SeatID, date time.Time) (*models.SeatBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
