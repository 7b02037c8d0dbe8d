package create_booking

import (
	"context"
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/internal/integrations/seatmap"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateGroup(ctx context.Context, rows []*domain.Booking) ([]*domain.Booking, error)
	GetOverlapping(ctx context.Context, filter domain.SeatBookingsFilter) ([]*domain.Booking, error)
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

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования).
// Execute вызывает Now() ровно один раз за проход валидации: одно решение
// о бронировании всегда считается от одного момента времени.
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
