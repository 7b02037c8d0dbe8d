package rateconfig

import (
	"context"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

// RateConfigRepository интерфейс репозитория тарифа
type RateConfigRepository interface {
	GetCurrent(ctx context.Context) (*domain.RateConfig, error)
	Upsert(ctx context.Context, config *domain.RateConfig) (*domain.RateConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
