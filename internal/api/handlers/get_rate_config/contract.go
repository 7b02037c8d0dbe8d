package get_rate_config

import (
	"context"

	"github.com/JamesSerenio/metyme-booking-service/internal/service/rateconfig/models"
)

type RateConfigService interface {
	GetCurrent(ctx context.Context) (*models.RateConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
