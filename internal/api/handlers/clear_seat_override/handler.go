package clear_seat_override

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
	"github.com/JamesSerenio/metyme-booking-service/internal/api/middleware"
	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

const msgInvalidSeatID = "некорректный ID места"

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

// ClearOverridesResponse ответ с числом удалённых принудительных статусов
type ClearOverridesResponse struct {
	Removed int64 `json:"removed"`
}

// Handle DELETE /api/v1/admin/seats/{seatId}/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, _ := middleware.StaffIDFromContext(r.Context())
	vars := mux.Vars(r)

	seatID := domain.SeatID(vars["seatId"])
	if seatID == "" {
		handlers.RespondBadRequest(w, msgInvalidSeatID)
		return
	}

	removed, err := h.service.ClearOverrides(r.Context(), seatID)
	if err != nil {
		h.logger.Error("DELETE /admin/seats/{seatId}/overrides - Failed to clear: seat=%s, error=%v", seatID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/seats/{seatId}/overrides - Cleared %d override(s): seat=%s, staff=%d",
		removed, seatID, staffID)
	handlers.RespondJSON(w, http.StatusOK, ClearOverridesResponse{Removed: removed})
}
