package rateconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация тарифа не найдена
	ErrConfigNotFound = errors.New("rate config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
