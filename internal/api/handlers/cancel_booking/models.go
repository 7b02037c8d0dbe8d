package cancel_booking

import "github.com/JamesSerenio/metyme-booking-service/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(staffID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		StaffID:            staffID,
		CancellationReason: r.CancellationReason,
	}
}
