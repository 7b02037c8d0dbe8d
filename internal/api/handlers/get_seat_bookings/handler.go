package get_seat_bookings

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

const (
	msgInvalidSeatID = "некорректный ID места"
	msgInvalidDate   = "некорректная дата, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/seats/{seatId}/bookings?date=YYYY-MM-DD
// Без параметра date возвращаются бронирования за сегодня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	seatID := domain.SeatID(vars["seatId"])
	if seatID == "" {
		handlers.RespondBadRequest(w, msgInvalidSeatID)
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /seats/{seatId}/bookings - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.service.GetBySeatAndDate(r.Context(), seatID, date)
	if err != nil {
		h.logger.Error("GET /seats/{seatId}/bookings - Failed to get bookings: seat=%s, error=%v", seatID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
