package models

import (
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

// UpdateRateConfigRequest запрос на обновление тарифа
type UpdateRateConfigRequest struct {
	StaffID          int64   `json:"staffId"`
	HourlyRate       float64 `json:"hourlyRate"`
	FreeGraceMinutes int     `json:"freeGraceMinutes"`
	Currency         string  `json:"currency"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateRateConfigRequest) ToDomainConfig() *domain.RateConfig {
	currency := r.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &domain.RateConfig{
		HourlyRate:       r.HourlyRate,
		FreeGraceMinutes: r.FreeGraceMinutes,
		Currency:         currency,
	}
}

// RateConfigResponse ответ с конфигурацией тарифа
type RateConfigResponse struct {
	ID               int64     `json:"id"`
	HourlyRate       float64   `json:"hourlyRate"`
	FreeGraceMinutes int       `json:"freeGraceMinutes"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.RateConfig) *RateConfigResponse {
	if c == nil {
		return nil
	}
	return &RateConfigResponse{
		ID:               c.ID,
		HourlyRate:       c.HourlyRate,
		FreeGraceMinutes: c.FreeGraceMinutes,
		Currency:         c.Currency,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
