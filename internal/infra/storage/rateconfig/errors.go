package rateconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация тарифа не найдена
	ErrConfigNotFound = errors.New("rateconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rateconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rateconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rateconfig.repository: failed to scan row")
)
