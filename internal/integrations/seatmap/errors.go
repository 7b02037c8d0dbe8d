package seatmap

import "errors"

var (
	// ErrSeatMapNotFound возвращается, когда карта мест не настроена
	ErrSeatMapNotFound = errors.New("seatmap client: seat map not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("seatmap client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("seatmap client: invalid response")
)
