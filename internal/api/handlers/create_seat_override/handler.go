package create_seat_override

import (
	"errors"
	"net/http"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
	"github.com/JamesSerenio/metyme-booking-service/internal/api/middleware"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidKind        = "некорректный вид принудительного статуса"
	msgInvalidOverride    = "некорректные параметры принудительного статуса"
	msgUnknownSeat        = "место отсутствует на карте мест"
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

// Handle POST /api/v1/admin/seat-overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, _ := middleware.StaffIDFromContext(r.Context())

	var req CreateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/seat-overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /admin/seat-overrides - Invalid kind %q: staff=%d", req.Kind, staffID)
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	result, err := h.service.CreateOverride(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidOverride):
			h.logger.Warn("POST /admin/seat-overrides - Invalid override: seat=%s, error=%v", req.SeatID, err)
			handlers.RespondBadRequest(w, msgInvalidOverride)

		case errors.Is(err, bookings.ErrUnknownSeat):
			h.logger.Warn("POST /admin/seat-overrides - Unknown seat: seat=%s", req.SeatID)
			handlers.RespondBadRequest(w, msgUnknownSeat)

		default:
			h.logger.Error("POST /admin/seat-overrides - Failed to create override: seat=%s, error=%v", req.SeatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/seat-overrides - Override created: seat=%s, kind=%s, staff=%d",
		req.SeatID, req.Kind, staffID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
