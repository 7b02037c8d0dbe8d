package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	rateRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/rateconfig"
)

// UseCase use case создания бронирования: полная валидация ввода кассира,
// расчёт счёта и финальная проверка конфликтов в сериализуемой транзакции.
type UseCase struct {
	bookingRepo  BookingRepository
	rateRepo     RateConfigRepository
	seatMap      SeatMapClient
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rateRepo RateConfigRepository,
	seatMap SeatMapClient,
	notifier Notifier,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rateRepo:     rateRepo,
		seatMap:      seatMap,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Все ошибки валидации разрешаются до какой-либо записи; единственная
// проверка, которой позволено упасть после "место выглядело свободным" —
// финальная проверка конфликтов под FOR UPDATE, ловящая гонку между
// загрузкой статусов на экране и отправкой формы.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: staff=%d, name=%q, seats=%v, reservation=%t, open_time=%t",
		req.StaffID, req.CustomerName, req.SeatIDs, req.IsReservation, req.OpenTime)

	resolved, err := uc.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	// Строки группы: по одной на место, общий group_id
	groupID := uuid.New()
	rows := make([]*domain.Booking, len(req.SeatIDs))
	for i, seatID := range req.SeatIDs {
		booking := &domain.Booking{
			GroupID:         groupID,
			SeatID:          seatID,
			CustomerName:    resolved.name,
			Kind:            domain.KindRegular,
			Status:          domain.StatusActive,
			Interval:        resolved.interval,
			DurationMinutes: resolved.bill.TotalMinutes,
			Amount:          resolved.bill.Amount,
			OpenTime:        req.OpenTime,
			IsReservation:   req.IsReservation,
		}
		if req.IsReservation {
			date := resolved.reservationDate
			booking.ReservationDate = &date
		}
		rows[i] = booking
	}

	// Финальная страховочная проверка и вставка — в одной сериализуемой
	// транзакции, чтобы два терминала не забронировали одно место
	var created []*domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.SeatBookingsFilter{
			SeatIDs: req.SeatIDs,
			From:    &resolved.interval.Start,
			To:      resolved.interval.End,
		}

		existing, err := uc.bookingRepo.GetOverlapping(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrStoreFailure, err)
		}

		if conflicts := domain.ConflictingSeats(req.SeatIDs, resolved.interval, existing); len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: conflict on seats %v for staff=%d", conflicts, req.StaffID)
			return &SeatConflictError{Seats: conflicts}
		}

		created, err = uc.bookingRepo.CreateGroup(txCtx, rows)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking group: %v", err)
			return fmt.Errorf("%w: failed to create booking group: %v", ErrStoreFailure, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.PublishSeatChange(ctx, req.SeatIDs)
	uc.logger.Info("CreateBooking: created group=%s, seats=%v, amount=%.2f",
		groupID, req.SeatIDs, resolved.bill.Amount)

	resp := &Response{
		GroupID:         groupID.String(),
		CustomerName:    resolved.name,
		SeatIDs:         req.SeatIDs,
		Status:          string(domain.StatusActive),
		StartAt:         resolved.interval.Start,
		EndAt:           resolved.interval.End,
		DurationMinutes: resolved.bill.TotalMinutes,
		BillableMinutes: resolved.bill.BillableMinutes,
		Amount:          resolved.bill.Amount,
		Currency:        resolved.rate.Currency,
		OpenTime:        req.OpenTime,
		IsReservation:   req.IsReservation,
		CreatedAt:       created[0].CreatedAt,
	}
	if req.IsReservation {
		date := resolved.reservationDate
		resp.ReservationDate = &date
	}
	return resp, nil
}

// Quote выполняет предварительный расчёт счёта без записи: та же валидация
// и тот же расчёт, что при создании, для живой сводки в форме бронирования
func (uc *UseCase) Quote(ctx context.Context, req *Request) (*QuoteResponse, error) {
	resolved, err := uc.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		SeatIDs:         req.SeatIDs,
		StartAt:         resolved.interval.Start,
		EndAt:           resolved.interval.End,
		DurationMinutes: resolved.bill.TotalMinutes,
		BillableMinutes: resolved.bill.BillableMinutes,
		Amount:          resolved.bill.Amount,
		Currency:        resolved.rate.Currency,
		OpenTime:        req.OpenTime,
	}, nil
}

// resolvedRequest результат валидации и нормализации запроса
type resolvedRequest struct {
	name            string
	interval        domain.Interval
	reservationDate time.Time
	rate            domain.RateConfig
	bill            domain.Bill
}

// resolve валидирует запрос и нормализует его в интервал, тариф и счёт.
// Текущее время снимается ровно один раз на весь проход.
func (uc *UseCase) resolve(ctx context.Context, req *Request) (*resolvedRequest, error) {
	// 1. Локальная валидация ввода
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Единый момент "сейчас" на всё решение
	now := uc.timeProvider.Now()

	// 3. Карта мест: выбранные места должны существовать
	seatMap, err := uc.seatMap.GetSeatMap(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get seat map: %v", err)
		return nil, fmt.Errorf("%w: failed to get seat map: %v", ErrInternal, err)
	}
	if err := validateSeatsOnMap(seatMap, req.SeatIDs); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Начало и интервал из нормализованного ввода
	start, err := resolveStart(req, now, uc.location)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}
	interval, totalMinutes, err := resolveInterval(req, start)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Тариф (дефолты, если ещё не настроен)
	rate, err := uc.currentRate(ctx)
	if err != nil {
		return nil, err
	}

	// 6. Счёт
	bill := domain.ComputeBill(totalMinutes, req.OpenTime, *rate)

	resolved := &resolvedRequest{
		name:     strings.TrimSpace(req.CustomerName),
		interval: interval,
		rate:     *rate,
		bill:     bill,
	}
	if req.IsReservation {
		resolved.reservationDate = req.ReservationDate
	}
	return resolved, nil
}

// currentRate получает действующий тариф, подставляя дефолты при его отсутствии
func (uc *UseCase) currentRate(ctx context.Context) (*domain.RateConfig, error) {
	rate, err := uc.rateRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, rateRepo.ErrConfigNotFound) {
			uc.logger.Info("CreateBooking: no rate config yet, using defaults")
			return &domain.RateConfig{
				HourlyRate:       domain.DefaultHourlyRate,
				FreeGraceMinutes: domain.DefaultFreeGraceMinutes,
				Currency:         domain.DefaultCurrency,
			}, nil
		}
		uc.logger.Error("CreateBooking: failed to get rate config: %v", err)
		return nil, fmt.Errorf("%w: failed to get rate config: %v", ErrStoreFailure, err)
	}
	return rate, nil
}
