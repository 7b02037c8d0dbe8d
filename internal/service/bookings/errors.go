package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotClose возвращается, когда бронирование не является открытым по времени
	ErrCannotClose = errors.New("booking is not an open-time booking")

	// ErrUnknownSeat возвращается, когда место отсутствует на карте мест
	ErrUnknownSeat = errors.New("seat is not on the seat map")

	// ErrInvalidOverride возвращается при некорректных параметрах принудительного статуса
	ErrInvalidOverride = errors.New("invalid seat override")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
