package update_rate_config

import (
	"errors"
	"net/http"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
	"github.com/JamesSerenio/metyme-booking-service/internal/api/middleware"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/rateconfig"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректные значения тарифа"
)

type Handler struct {
	service RateConfigService
	logger  Logger
}

func NewHandler(service RateConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rate-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, _ := middleware.StaffIDFromContext(r.Context())

	var req UpdateRateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rate-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(staffID))
	if err != nil {
		switch {
		case errors.Is(err, rateconfig.ErrInvalidInput):
			h.logger.Warn("PUT /rate-config - Invalid config: staff=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /rate-config - Failed to update rate config: staff=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rate-config - Rate config updated: staff=%d, rate=%.2f", staffID, result.HourlyRate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
