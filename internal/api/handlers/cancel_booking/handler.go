package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
	"github.com/JamesSerenio/metyme-booking-service/internal/api/middleware"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings"
)

const (
	msgInvalidGroupID     = "некорректный ID группы бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgCannotCancel       = "бронирование не может быть отменено"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{groupId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, _ := middleware.StaffIDFromContext(r.Context())
	vars := mux.Vars(r)

	groupID, err := uuid.Parse(vars["groupId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{groupId}/cancel - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{groupId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), groupID, req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{groupId}/cancel - Not found: group=%s", groupID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{groupId}/cancel - Cannot cancel: group=%s", groupID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{groupId}/cancel - Invalid input: group=%s, error=%v", groupID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{groupId}/cancel - Failed to cancel: group=%s, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{groupId}/cancel - Booking cancelled: group=%s, staff=%d", groupID, staffID)
	w.WriteHeader(http.StatusNoContent)
}
