package update_rate_config

import (
	"context"

	"github.com/JamesSerenio/metyme-booking-service/internal/service/rateconfig/models"
)

type RateConfigService interface {
	Update(ctx context.Context, req *models.UpdateRateConfigRequest) (*models.RateConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
