// Package notify publishes seat-change events over Redis pub/sub so the seat
// map can react to other terminals' bookings without waiting for the poll.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JamesSerenio/metyme-booking-service/internal/domain"
)

const (
	// ChannelSeatChanges канал с событиями изменения бронирований
	ChannelSeatChanges = "metyme:seat-changes"

	// ChannelSeatStatuses канал со снапшотами рассчитанных статусов мест
	ChannelSeatStatuses = "metyme:seat-statuses"
)

// SeatChangeEvent событие изменения бронирований по набору мест
type SeatChangeEvent struct {
	SeatIDs    []domain.SeatID `json:"seat_ids"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Publisher публикует события изменения мест в Redis
type Publisher struct {
	client *redis.Client
	log    Logger
}

// NewPublisher создает новый экземпляр publisher
func NewPublisher(client *redis.Client, log Logger) *Publisher {
	return &Publisher{client: client, log: log}
}

// PublishSeatChange публикует событие изменения по набору мест.
// Ошибка публикации не фатальна: подписчики дополнительно опрашивают
// статусы по таймеру, поэтому событие может потеряться без потери данных.
func (p *Publisher) PublishSeatChange(ctx context.Context, seatIDs []domain.SeatID) {
	event := SeatChangeEvent{
		SeatIDs:    seatIDs,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Warn("notify: failed to marshal seat change event: %v", err)
		return
	}

	if err := p.client.Publish(ctx, ChannelSeatChanges, payload).Err(); err != nil {
		p.log.Warn("notify: failed to publish seat change event: %v", err)
	}
}

// PublishStatusSnapshot публикует рассчитанный снапшот статусов мест
func (p *Publisher) PublishStatusSnapshot(ctx context.Context, payload []byte) error {
	if err := p.client.Publish(ctx, ChannelSeatStatuses, payload).Err(); err != nil {
		return fmt.Errorf("notify: publish status snapshot: %w", err)
	}
	return nil
}

// SubscribeSeatChanges подписывается на события изменения мест
func SubscribeSeatChanges(ctx context.Context, client *redis.Client) *redis.PubSub {
	return client.Subscribe(ctx, ChannelSeatChanges)
}
