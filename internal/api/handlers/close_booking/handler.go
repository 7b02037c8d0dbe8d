package close_booking

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
	msgInvalidGroupID = "некорректный ID группы бронирования"
	msgNotFound       = "бронирование не найдено"
	msgCannotClose    = "бронирование не является активным открытым временем"
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

// Handle PATCH /api/v1/bookings/{groupId}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, _ := middleware.StaffIDFromContext(r.Context())
	vars := mux.Vars(r)

	groupID, err := uuid.Parse(vars["groupId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{groupId}/close - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	result, err := h.service.Close(r.Context(), groupID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{groupId}/close - Not found: group=%s", groupID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotClose):
			h.logger.Warn("PATCH /bookings/{groupId}/close - Cannot close: group=%s", groupID)
			handlers.RespondConflict(w, msgCannotClose)

		default:
			h.logger.Error("PATCH /bookings/{groupId}/close - Failed to close: group=%s, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{groupId}/close - Booking closed: group=%s, staff=%d, amount=%.2f",
		groupID, staffID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
