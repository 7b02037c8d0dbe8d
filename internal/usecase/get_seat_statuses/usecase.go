package get_seat_statuses

import (
	"context"
	"fmt"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

// UseCase use case получения статусов мест: карта мест + активные брони,
// пересекающие "сейчас или позже", сведённые в один статус на место.
type UseCase struct {
	bookingRepo  BookingRepository
	seatMap      SeatMapClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, seatMap SeatMapClient, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		seatMap:      seatMap,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения статусов мест.
// Без явного момента в запросе статусы считаются на "сейчас".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()
	if req != nil && req.At != nil {
		now = *req.At
	}

	seatMap, err := uc.seatMap.GetSeatMap(ctx)
	if err != nil {
		uc.logger.Error("GetSeatStatuses: failed to get seat map: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSeatMapUnavailable, err)
	}

	// Брони, заканчивающиеся строго раньше "сейчас", на статус не влияют
	seatIDs := seatMap.SeatIDs()
	records, err := uc.bookingRepo.GetOverlapping(ctx, domain.SeatBookingsFilter{
		SeatIDs: seatIDs,
		From:    &now,
	})
	if err != nil {
		uc.logger.Error("GetSeatStatuses: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreFailure, err)
	}

	states := domain.ClassifySeats(seatIDs, records, now)

	seats := make([]SeatStatus, len(seatMap.Seats))
	for i, seat := range seatMap.Seats {
		seats[i] = SeatStatus{
			SeatID: seat.ID,
			Label:  seat.Label,
			Zone:   seat.Zone,
			Status: string(states[domain.SeatID(seat.ID)]),
		}
	}

	return &Response{
		LoungeName: seatMap.LoungeName,
		AsOf:       now,
		Seats:      seats,
	}, nil
}
