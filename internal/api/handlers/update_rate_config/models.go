package update_rate_config

import "github.com/JamesSerenio/metyme-booking-service/internal/service/rateconfig/models"

// UpdateRateConfigRequest HTTP request model
type UpdateRateConfigRequest struct {
	HourlyRate       float64 `json:"hourlyRate"`
	FreeGraceMinutes int     `json:"freeGraceMinutes"`
	Currency         string  `json:"currency,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRateConfigRequest) ToServiceRequest(staffID int64) *models.UpdateRateConfigRequest {
	return &models.UpdateRateConfigRequest{
		StaffID:          staffID,
		HourlyRate:       r.HourlyRate,
		FreeGraceMinutes: r.FreeGraceMinutes,
		Currency:         r.Currency,
	}
}
