package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
	bookingRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/booking"
	rateRepo "github.com/JamesSerenio/metyme-booking-service/internal/infra/storage/rateconfig"
	"github.com/JamesSerenio/metyme-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, отмена, закрытие
// открытого времени и принудительные статусы мест из админки карты.
type Service struct {
	bookingRepo  BookingRepository
	rateRepo     RateConfigRepository
	seatMap      SeatMapClient
	notifier     Notifier
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	rateRepo RateConfigRepository,
	seatMap SeatMapClient,
	notifier Notifier,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		rateRepo:     rateRepo,
		seatMap:      seatMap,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// GetByGroupID получает агрегированное бронирование по идентификатору группы
func (s *Service) GetByGroupID(ctx context.Context, groupID uuid.UUID) (*models.BookingGroupResponse, error) {
	s.logger.Info("GetByGroupID: fetching booking group=%s", groupID)

	rows, err := s.bookingRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByGroupID: booking group=%s not found", groupID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByGroupID: repository error for group=%s: %v", groupID, err)
		return nil, fmt.Errorf("%w: GetByGroupID - repository error: %v", ErrInternal, err)
	}

	resp, err := models.FromDomainGroup(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGroupID - assemble group: %v", ErrInternal, err)
	}
	return resp, nil
}

// GetBySeatAndDate получает строки бронирований одного места за календарный день
func (s *Service) GetBySeatAndDate(ctx context.Context, seatID domain.SeatID, date time.Time) (*models.SeatBookingListResponse, error) {
	s.logger.Info("GetBySeatAndDate: seat=%s, date=%s", seatID, date.Format(domain.DateFormat))

	// Границы дня считаются в часовом поясе лаунжа
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := s.bookingRepo.GetOverlapping(ctx, domain.SeatBookingsFilter{
		SeatIDs:         []domain.SeatID{seatID},
		From:            &dayStart,
		To:              &dayEnd,
		IncludeInactive: true, // в списке по месту видны и отменённые, и закрытые
	})
	if err != nil {
		s.logger.Error("GetBySeatAndDate: repository error for seat=%s: %v", seatID, err)
		return nil, fmt.Errorf("%w: GetBySeatAndDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRows(rows), nil
}

// Cancel отменяет все активные строки группы с указанием причины
func (s *Service) Cancel(ctx context.Context, groupID uuid.UUID, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking group=%s by staff=%d", groupID, req.StaffID)

	reason := strings.TrimSpace(req.CancellationReason)
	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	rows, err := s.bookingRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to load group=%s: %v", groupID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}
	if !rows[0].CanBeCancelled() {
		s.logger.Warn("Cancel: booking group=%s is %s, cannot cancel", groupID, rows[0].Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.CancelGroup(ctx, groupID, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel group=%s: %v", groupID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifySeats(ctx, rows)
	s.logger.Info("Cancel: booking group=%s cancelled", groupID)
	return nil
}

// Close закрывает открытое по времени бронирование: конец = сейчас,
// длительность и сумма считаются от фактически просиженного времени.
func (s *Service) Close(ctx context.Context, groupID uuid.UUID) (*models.BookingGroupResponse, error) {
	s.logger.Info("Close: closing open-time booking group=%s", groupID)

	rows, err := s.bookingRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Close: failed to load group=%s: %v", groupID, err)
		return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}
	if !rows[0].CanBeClosed() {
		s.logger.Warn("Close: booking group=%s is not an active open-time booking", groupID)
		return nil, ErrCannotClose
	}

	// Единый момент "сейчас" на всё закрытие
	now := s.timeProvider.Now()
	elapsed := int(now.Sub(rows[0].Interval.Start).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}

	rate, err := s.currentRate(ctx)
	if err != nil {
		return nil, err
	}

	// Тариф почасовой за место: каждая строка группы несёт полную сумму своего места
	bill := domain.ComputeBill(elapsed, false, *rate)
	if err := s.bookingRepo.CloseGroup(ctx, groupID, now, bill); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotClose) {
			return nil, ErrCannotClose
		}
		s.logger.Error("Close: failed to close group=%s: %v", groupID, err)
		return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	s.notifySeats(ctx, rows)
	s.logger.Info("Close: booking group=%s closed, elapsed=%dmin, amount=%.2f",
		groupID, bill.TotalMinutes, bill.Amount)

	closed, err := s.bookingRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		s.logger.Error("Close: failed to reload group=%s: %v", groupID, err)
		return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}
	resp, err := models.FromDomainGroup(closed)
	if err != nil {
		return nil, fmt.Errorf("%w: Close - assemble group: %v", ErrInternal, err)
	}
	return resp, nil
}

// CreateOverride принудительно выставляет статус места на окно времени
// (временная бронь, промо или блокировка) из админки карты мест
func (s *Service) CreateOverride(ctx context.Context, req *models.CreateOverrideRequest) (*models.BookingGroupResponse, error) {
	s.logger.Info("CreateOverride: seat=%s, kind=%s by staff=%d", req.SeatID, req.Kind, req.StaffID)

	if !req.Kind.IsOverride() {
		s.logger.Warn("CreateOverride: kind=%s is not an override kind", req.Kind)
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidOverride, req.Kind)
	}

	if req.StartAt.IsZero() {
		s.logger.Warn("CreateOverride: missing start time for seat=%s", req.SeatID)
		return nil, fmt.Errorf("%w: start time is required", ErrInvalidOverride)
	}

	interval := domain.Interval{Start: req.StartAt, End: req.EndAt}
	if err := interval.Validate(); err != nil {
		s.logger.Warn("CreateOverride: invalid window for seat=%s: %v", req.SeatID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverride, err)
	}

	seatMap, err := s.seatMap.GetSeatMap(ctx)
	if err != nil {
		s.logger.Error("CreateOverride: failed to get seat map: %v", err)
		return nil, fmt.Errorf("%w: failed to get seat map: %v", ErrInternal, err)
	}
	if !seatMap.Contains(req.SeatID) {
		s.logger.Warn("CreateOverride: seat=%s not on seat map", req.SeatID)
		return nil, ErrUnknownSeat
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		label = "staff override"
	}

	rows := []*domain.Booking{{
		GroupID:      uuid.New(),
		SeatID:       req.SeatID,
		CustomerName: label,
		Kind:         req.Kind,
		Status:       domain.StatusActive,
		Interval:     interval,
		OpenTime:     interval.IsOpenEnded(),
	}}

	created, err := s.bookingRepo.CreateGroup(ctx, rows)
	if err != nil {
		s.logger.Error("CreateOverride: failed to create override for seat=%s: %v", req.SeatID, err)
		return nil, fmt.Errorf("%w: CreateOverride - repository error: %v", ErrInternal, err)
	}

	s.notifySeats(ctx, created)
	s.logger.Info("CreateOverride: created %s override id=%d for seat=%s", req.Kind, created[0].ID, req.SeatID)

	resp, err := models.FromDomainGroup(created)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateOverride - assemble group: %v", ErrInternal, err)
	}
	return resp, nil
}

// ClearOverrides удаляет принудительные статусы места, действующие сейчас
// ("очистить" в админке карты мест). Возвращает число удалённых строк.
func (s *Service) ClearOverrides(ctx context.Context, seatID domain.SeatID) (int64, error) {
	now := s.timeProvider.Now()
	s.logger.Info("ClearOverrides: seat=%s at %s", seatID, now.Format(time.RFC3339))

	removed, err := s.bookingRepo.DeleteOverridesCovering(ctx, seatID, now)
	if err != nil {
		s.logger.Error("ClearOverrides: repository error for seat=%s: %v", seatID, err)
		return 0, fmt.Errorf("%w: ClearOverrides - repository error: %v", ErrInternal, err)
	}

	if removed > 0 {
		s.notifier.PublishSeatChange(ctx, []domain.SeatID{seatID})
	}
	s.logger.Info("ClearOverrides: removed %d override(s) for seat=%s", removed, seatID)
	return removed, nil
}

// currentRate получает действующий тариф, подставляя дефолты при его отсутствии
func (s *Service) currentRate(ctx context.Context) (*domain.RateConfig, error) {
	rate, err := s.rateRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, rateRepo.ErrConfigNotFound) {
			return &domain.RateConfig{
				HourlyRate:       domain.DefaultHourlyRate,
				FreeGraceMinutes: domain.DefaultFreeGraceMinutes,
				Currency:         domain.DefaultCurrency,
			}, nil
		}
		s.logger.Error("currentRate: failed to get rate config: %v", err)
		return nil, fmt.Errorf("%w: failed to get rate config: %v", ErrInternal, err)
	}
	return rate, nil
}

// notifySeats публикует событие изменения по местам группы
func (s *Service) notifySeats(ctx context.Context, rows []*domain.Booking) {
	seatIDs := make([]domain.SeatID, len(rows))
	for i, row := range rows {
		seatIDs[i] = row.SeatID
	}
	s.notifier.PublishSeatChange(ctx, seatIDs)
}
