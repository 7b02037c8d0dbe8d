package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/internal/integrations/seatmap"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateGroup(ctx context.Context, rows []*domain.Booking) ([]*domain.Booking, error)
	GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]*domain.Booking, error)
	GetOverlapping(ctx context.Context, filter domain.SeatBookingsFilter) ([]*domain.Booking, error)
	CancelGroup(ctx context.Context, groupID uuid.UUID, reason string) error
	CloseGroup(ctx context.Context, groupID uuid.UUID, end time.Time, bill domain.Bill) error
	DeleteOverridesCovering(ctx context.Context, seatID domain.SeatID, at time.Time) (int64, error)
}

// RateConfigRepository интерфейс репозитория тарифа
type RateConfigRepository interface {
	GetCurrent(ctx context.Context) (*domain.RateConfig, error)
}

// SeatMapClient интерфейс клиента карты мест
type SeatMapClient interface {
	GetSeatMap(ctx context.Context) (*seatmap.SeatMap, error)
}

// Notifier интерфейс публикации событий изменения мест
type Notifier interface {
	PublishSeatChange(ctx context.Context, seatIDs []domain.SeatID)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
