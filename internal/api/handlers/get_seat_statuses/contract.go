package get_seat_statuses

import (
	"context"

	getSeatStatuses "github.com/JamesSerenio/metyme-booking-service/internal/usecase/get_seat_statuses"
)

type GetSeatStatusesUseCase interface {
	Execute(ctx context.Context, req *getSeatStatuses.Request) (*getSeatStatuses.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
