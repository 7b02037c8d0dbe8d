// Package statusfeed рассылает снапшоты статусов мест: пересчитывает их по
// событиям изменения бронирований и по таймеру и публикует в Redis.
package statusfeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JamesSerenio/metyme-booking-service/internal/infra/notify"
	"github.com/JamesSerenio/metyme-booking-service/internal/usecase/get_seat_statuses"
)

// StatusUseCase интерфейс пересчёта статусов мест
type StatusUseCase interface {
	Execute(ctx context.Context, req *get_seat_statuses.Request) (*get_seat_statuses.Response, error)
}

// SnapshotPublisher интерфейс публикации снапшота статусов
type SnapshotPublisher interface {
	PublishStatusSnapshot(ctx context.Context, payload []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Snapshot снапшот статусов с номером ревизии: подписчик отбрасывает
// снапшоты с ревизией меньше уже применённой
type Snapshot struct {
	Revision uint64                      `json:"revision"`
	Statuses *get_seat_statuses.Response `json:"statuses"`
}

// Feed фоновая рассылка снапшотов статусов мест
type Feed struct {
	statuses     StatusUseCase
	publisher    SnapshotPublisher
	redisClient  *redis.Client
	pollInterval time.Duration
	logger       Logger

	revision uint64
}

// NewFeed создает новый экземпляр feed
func NewFeed(
	statuses StatusUseCase,
	publisher SnapshotPublisher,
	redisClient *redis.Client,
	pollInterval time.Duration,
	logger Logger,
) *Feed {
	return &Feed{
		statuses:     statuses,
		publisher:    publisher,
		redisClient:  redisClient,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Run крутит цикл рассылки до отмены контекста. Пересчёт запускается по
// событию изменения мест и по таймеру (страховка от потерянных событий).
func (f *Feed) Run(ctx context.Context) {
	f.logger.Info("statusfeed: started, poll interval %s", f.pollInterval)

	sub := notify.SubscribeSeatChanges(ctx, f.redisClient)
	defer sub.Close()
	events := sub.Channel()

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()

	// Первый снапшот сразу при старте
	f.publish(ctx)

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("statusfeed: stopped")
			return
		case _, ok := <-events:
			if !ok {
				// Подписка оборвалась: остаёмся на таймере
				events = nil
				f.logger.Warn("statusfeed: seat change subscription closed, falling back to polling")
				continue
			}
			f.publish(ctx)
		case <-ticker.C:
			f.publish(ctx)
		}
	}
}

func (f *Feed) publish(ctx context.Context) {
	statuses, err := f.statuses.Execute(ctx, &get_seat_statuses.Request{})
	if err != nil {
		f.logger.Error("statusfeed: failed to compute seat statuses: %v", err)
		return
	}

	f.revision++
	payload, err := json.Marshal(Snapshot{
		Revision: f.revision,
		Statuses: statuses,
	})
	if err != nil {
		f.logger.Error("statusfeed: failed to marshal snapshot: %v", err)
		return
	}

	if err := f.publisher.PublishStatusSnapshot(ctx, payload); err != nil {
		f.logger.Warn("statusfeed: %v", err)
	}
}
