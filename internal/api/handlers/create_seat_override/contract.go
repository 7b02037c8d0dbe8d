package create_seat_override

import (
	"context"

	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	CreateOverride(ctx context.Context, req *models.CreateOverrideRequest) (*models.BookingGroupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
