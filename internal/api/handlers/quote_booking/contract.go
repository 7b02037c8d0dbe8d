package quote_booking

import (
	"context"

	createBooking "github.com/JamesSerenio/metyme-booking-service/internal/usecase/create_booking"
)

type QuoteBookingUseCase interface {
	Quote(ctx context.Context, req *createBooking.Request) (*createBooking.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
