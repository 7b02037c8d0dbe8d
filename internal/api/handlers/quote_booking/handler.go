package quote_booking

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
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, _ := middleware.StaffIDFromContext(r.Context())

	var req QuoteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /bookings/quote - Failed to parse reservation date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Quote(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidName):
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createBooking.ErrNoSeatSelected):
			handlers.RespondBadRequest(w, msgNoSeatSelected)

		case errors.Is(err, createBooking.ErrUnknownSeat):
			handlers.RespondBadRequest(w, msgUnknownSeat)

		case errors.Is(err, createBooking.ErrInvalidReservationDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidStartTime):
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("POST /bookings/quote - Failed to quote: staff=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
