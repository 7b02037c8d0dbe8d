package notify

import (
	"context"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

// NopPublisher заглушка для работы без Redis: события не публикуются,
// карта мест обновляется только фоновым опросом.
type NopPublisher struct{}

// NewNopPublisher создает новый экземпляр заглушки
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

// PublishSeatChange ничего не делает
func (p *NopPublisher) PublishSeatChange(_ context.Context, _ []domain.SeatID) {}

// PublishStatusSnapshot ничего не делает
func (p *NopPublisher) PublishStatusSnapshot(_ context.Context, _ []byte) error {
	return nil
}
