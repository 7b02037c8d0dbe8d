package get_seat_statuses

import (
	"errors"
	"net/http"
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
	getSeatStatuses "github.com/JamesSerenio/metyme-booking-service/internal/usecase/get_seat_statuses"
)

const (
	msgSeatMapUnavailable = "карта мест временно недоступна"
	msgInvalidAt          = "некорректный параметр at"
)

type Handler struct {
	useCase GetSeatStatusesUseCase
	logger  Logger
}

func NewHandler(useCase GetSeatStatusesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/seats/statuses?at=RFC3339
// Без параметра at статусы считаются на текущий момент.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getSeatStatuses.Request{}
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /seats/statuses - Invalid at %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidAt)
			return
		}
		req.At = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSeatStatuses.ErrSeatMapUnavailable):
			h.logger.Warn("GET /seats/statuses - Seat map unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgSeatMapUnavailable)

		default:
			h.logger.Error("GET /seats/statuses - Failed to get seat statuses: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
