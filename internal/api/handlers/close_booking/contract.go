package close_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	Close(ctx context.Context, groupID uuid.UUID) (*models.BookingGroupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
