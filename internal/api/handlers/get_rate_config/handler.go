package get_rate_config

import (
	"net/http"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/rate-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetCurrent(r.Context())
	if err != nil {
		h.logger.Error("GET /rate-config - Failed to get rate config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
