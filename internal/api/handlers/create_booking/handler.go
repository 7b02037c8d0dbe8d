package create_booking

import (
	"errors"
	"net/http"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
	"github.com/JamesSerenio/metyme-booking-service/internal/api/middleware"
	createBooking "github.com/JamesSerenio/metyme-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "требуется имя клиента"
	msgNoSeatSelected     = "нужно выбрать хотя бы одно место"
	msgUnknownSeat        = "место отсутствует на карте мест"
	msgInvalidDate        = "некорректная дата резервации, ожидается YYYY-MM-DD"
	msgInvalidStartTime   = "некорректное время начала"
	msgInvalidDuration    = "некорректная длительность"
	msgSeatConflict       = "место уже занято на выбранное время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, _ := middleware.StaffIDFromContext(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse reservation date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidName):
			h.logger.Warn("POST /bookings - Invalid customer name: staff=%d", staffID)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createBooking.ErrNoSeatSelected):
			h.logger.Warn("POST /bookings - No seat selected: staff=%d", staffID)
			handlers.RespondBadRequest(w, msgNoSeatSelected)

		case errors.Is(err, createBooking.ErrUnknownSeat):
			h.logger.Warn("POST /bookings - Unknown seat: staff=%d, seats=%v", staffID, req.SeatIDs)
			handlers.RespondBadRequest(w, msgUnknownSeat)

		case errors.Is(err, createBooking.ErrInvalidReservationDate):
			h.logger.Warn("POST /bookings - Invalid reservation date: staff=%d", staffID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidStartTime):
			h.logger.Warn("POST /bookings - Invalid start time %q: staff=%d", req.StartTime, staffID)
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration %q: staff=%d", req.Duration, staffID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrSeatConflict):
			h.logger.Warn("POST /bookings - Seat conflict: staff=%d, seats=%v", staffID, req.SeatIDs)
			handlers.RespondConflict(w, msgSeatConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: staff=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: group=%s, staff=%d, seats=%v",
		result.GroupID, staffID, req.SeatIDs)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
