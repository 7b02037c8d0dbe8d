package clear_seat_override

import (
	"context"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

type BookingService interface {
	ClearOverrides(ctx context.Context, seatID domain.SeatID) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
