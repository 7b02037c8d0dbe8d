package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

var (
	// ErrInvalidName возвращается, когда имя клиента пустое после trim
	ErrInvalidName = errors.New("create_booking: customer name is required")

	// ErrNoSeatSelected возвращается, когда не выбрано ни одного места
	ErrNoSeatSelected = errors.New("create_booking: at least one seat is required")

	// ErrUnknownSeat возвращается, когда место отсутствует на карте мест
	ErrUnknownSeat = errors.New("create_booking: seat is not on the seat map")

	// ErrInvalidReservationDate возвращается, когда для резервации не указана дата
	ErrInvalidReservationDate = errors.New("create_booking: reservation date is required")

	// ErrInvalidStartTime возвращается, когда текст времени начала не парсится
	// или выходит за допустимые диапазоны
	ErrInvalidStartTime = errors.New("create_booking: invalid start time")

	// ErrInvalidDuration возвращается, когда текст длительности не парсится
	// или нормализуется в ноль (при выключенном открытом времени)
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrSeatConflict возвращается, когда финальная проверка перед записью
	// нашла пересекающееся бронирование
	ErrSeatConflict = errors.New("create_booking: seat conflict")

	// ErrStoreFailure возвращается, когда внешнее хранилище отклонило запрос.
	// Ошибка терминальна для попытки и не ретраится автоматически.
	ErrStoreFailure = errors.New("create_booking: store failure")

	// ErrInternal возвращается при прочих внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SeatConflictError несёт список мест, по которым найден конфликт.
// errors.Is(err, ErrSeatConflict) остаётся верным для диспетчеризации.
type SeatConflictError struct {
	Seats []domain.SeatID
}

// Error implements the error interface.
func (e *SeatConflictError) Error() string {
	seats := make([]string, len(e.Seats))
	for i, s := range e.Seats {
		seats[i] = string(s)
	}
	return fmt.Sprintf("create_booking: seat conflict on %s", strings.Join(seats, ", "))
}

// Is поддерживает errors.Is(err, ErrSeatConflict)
func (e *SeatConflictError) Is(target error) bool {
	return target == ErrSeatConflict
}
