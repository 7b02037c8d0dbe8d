package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	"github.com/JamesSerenio/metyme-booking-service/internal/integrations/seatmap"
	"github.com/JamesSerenio/metyme-booking-service/pkg/timetext"
)

// validateRequest валидирует поля запроса, не требующие внешних данных.
// Каждая ошибка соответствует конкретной причине отказа для кассира.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return ErrInvalidName
	}
	if len(strings.TrimSpace(req.CustomerName)) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: name too long", ErrInvalidName)
	}

	if len(req.SeatIDs) == 0 {
		return ErrNoSeatSelected
	}
	for _, id := range req.SeatIDs {
		if strings.TrimSpace(string(id)) == "" {
			return ErrNoSeatSelected
		}
	}

	if req.IsReservation {
		if req.ReservationDate.IsZero() {
			return ErrInvalidReservationDate
		}
		if _, err := timetext.ParseClock(req.StartTimeText); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
		}
	}

	if !req.OpenTime {
		if _, err := timetext.ParseDuration(req.DurationText); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
	}

	return nil
}

// validateSeatsOnMap проверяет, что все выбранные места есть на карте мест
func validateSeatsOnMap(seatMap *seatmap.SeatMap, seatIDs []domain.SeatID) error {
	for _, id := range seatIDs {
		if !seatMap.Contains(id) {
			return fmt.Errorf("%w: %s", ErrUnknownSeat, id)
		}
	}
	return nil
}

// resolveStart вычисляет момент начала бронирования.
// Walk-in начинается в "сейчас", снятое один раз на всё решение;
// резервация — из нормализованного времени и даты резервации,
// разрешённых в часовом поясе лаунжа.
func resolveStart(req *Request, now time.Time, loc *time.Location) (time.Time, error) {
	if !req.IsReservation {
		return now, nil
	}

	clock, err := timetext.ParseClock(req.StartTimeText)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	d := req.ReservationDate
	localDate := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return clock.At(localDate), nil
}

// resolveInterval строит интервал бронирования из начала и текста длительности.
// Открытое время даёт открытый интервал и нулевую длительность.
func resolveInterval(req *Request, start time.Time) (domain.Interval, int, error) {
	if req.OpenTime {
		return domain.NewOpenInterval(start), 0, nil
	}

	duration, err := timetext.ParseDuration(req.DurationText)
	if err != nil {
		if errors.Is(err, timetext.ErrZeroDuration) {
			return domain.Interval{}, 0, fmt.Errorf("%w: duration is zero", ErrInvalidDuration)
		}
		return domain.Interval{}, 0, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	interval, err := domain.NewInterval(start, duration.AddTo(start))
	if err != nil {
		return domain.Interval{}, 0, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}
	return interval, duration.TotalMinutes(), nil
}
