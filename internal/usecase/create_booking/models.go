package create_booking

import (
	"time"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования.
// Времена приходят сырым текстом кассира ("2pm", "230", "2:30") и
// нормализуются внутри usecase; невалидный текст — ошибка, а не дефолт.
type Request struct {
	StaffID      int64           // ID сотрудника за кассой
	CustomerName string          // Имя клиента
	SeatIDs      []domain.SeatID // Выбранные места (минимум одно)

	IsReservation   bool      // Резервация на будущее или walk-in
	ReservationDate time.Time // Дата резервации (только при IsReservation)
	StartTimeText   string    // Текст времени начала (только при IsReservation)

	OpenTime     bool   // Открытое время: без конца, счёт при закрытии
	DurationText string // Текст длительности (только при !OpenTime)
}

// Response модель ответа с созданным бронированием
type Response struct {
	GroupID      string          // ID группы бронирования
	CustomerName string          // Имя клиента
	SeatIDs      []domain.SeatID // Забронированные места
	Status       string          // Статус бронирования

	StartAt time.Time  // Начало
	EndAt   *time.Time // Конец (nil = открытое время)

	// Расчёт счёта
	DurationMinutes int     // Полная длительность в минутах
	BillableMinutes int     // Оплачиваемые минуты после грейс-периода
	Amount          float64 // Сумма
	Currency        string  // Валюта тарифа
	OpenTime        bool    // Признак открытого времени

	IsReservation   bool
	ReservationDate *time.Time

	CreatedAt time.Time
}

// QuoteResponse модель предварительного расчёта счёта (без записи)
type QuoteResponse struct {
	SeatIDs []domain.SeatID
	StartAt time.Time
	EndAt   *time.Time

	DurationMinutes int
	BillableMinutes int
	Amount          float64
	Currency        string
	OpenTime        bool
}
