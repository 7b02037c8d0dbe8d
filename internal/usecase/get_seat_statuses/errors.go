package get_seat_statuses

import "errors"

var (
	// ErrSeatMapUnavailable возвращается, когда карту мест не удалось получить
	ErrSeatMapUnavailable = errors.New("get_seat_statuses: seat map unavailable")

	// ErrStoreFailure возвращается, когда хранилище отклонило запрос
	ErrStoreFailure = errors.New("get_seat_statuses: store failure")
)
