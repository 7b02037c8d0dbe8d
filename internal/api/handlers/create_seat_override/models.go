package create_seat_override

import (
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings/models"
)

// CreateOverrideRequest HTTP request model принудительного статуса места
type CreateOverrideRequest struct {
	SeatID  string     `json:"seatId"`
	Kind    string     `json:"kind"` // temporary_hold | promo_current | promo_future | reserved_block
	Label   string     `json:"label,omitempty"`
	StartAt time.Time  `json:"startAt"`
	EndAt   *time.Time `json:"endAt,omitempty"` // nil = без конца
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateOverrideRequest) ToServiceRequest(staffID int64) (*models.CreateOverrideRequest, error) {
	kind, err := models.ToDomainOverrideKind(r.Kind)
	if err != nil {
		return nil, err
	}

	return &models.CreateOverrideRequest{
		StaffID: staffID,
		SeatID:  domain.SeatID(r.SeatID),
		Kind:    kind,
		Label:   r.Label,
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
	}, nil
}
