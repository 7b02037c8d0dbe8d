package rateconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	rateRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/rateconfig"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/rateconfig/models"
)

// Service сервис конфигурации тарифа лаунжа
type Service struct {
	rateRepo RateConfigRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса тарифа
func NewService(rateRepo RateConfigRepository, logger Logger) *Service {
	return &Service{
		rateRepo: rateRepo,
		logger:   logger,
	}
}

// GetCurrent получает действующий тариф. Если тариф ещё не настроен,
// возвращает дефолтные значения, а не ошибку — касса должна работать сразу.
func (s *Service) GetCurrent(ctx context.Context) (*models.RateConfigResponse, error) {
	s.logger.Info("GetCurrent: fetching rate config")

	config, err := s.rateRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, rateRepo.ErrConfigNotFound) {
			s.logger.Info("GetCurrent: no rate config yet, using defaults")
			return models.FromDomainConfig(&domain.RateConfig{
				HourlyRate:       domain.DefaultHourlyRate,
				FreeGraceMinutes: domain.DefaultFreeGraceMinutes,
				Currency:         domain.DefaultCurrency,
			}), nil
		}
		s.logger.Error("GetCurrent: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCurrent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config), nil
}

// Update сохраняет новый тариф как действующий
func (s *Service) Update(ctx context.Context, req *models.UpdateRateConfigRequest) (*models.RateConfigResponse, error) {
	s.logger.Info("Update: updating rate config by staff=%d: rate=%.2f, grace=%dmin",
		req.StaffID, req.HourlyRate, req.FreeGraceMinutes)

	if err := validateConfig(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	config, err := s.rateRepo.Upsert(ctx, req.ToDomainConfig())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: rate config saved id=%d", config.ID)
	return models.FromDomainConfig(config), nil
}

// validateConfig проверяет диапазоны значений тарифа
func validateConfig(req *models.UpdateRateConfigRequest) error {
	if req.HourlyRate < domain.MinHourlyRate || req.HourlyRate > domain.MaxHourlyRate {
		return fmt.Errorf("%w: hourlyRate must be between %.0f and %.0f",
			ErrInvalidInput, domain.MinHourlyRate, domain.MaxHourlyRate)
	}
	if req.FreeGraceMinutes < domain.MinFreeGraceMinutes || req.FreeGraceMinutes > domain.MaxFreeGraceMinutes {
		return fmt.Errorf("%w: freeGraceMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinFreeGraceMinutes, domain.MaxFreeGraceMinutes)
	}
	return nil
}
