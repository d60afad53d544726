package queue

import (
	"context"
	"time"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/pkg/logger"

	"go.uber.org/zap"
)

type Delivery struct {
	Data *model.BookingEvent
	Ack  func()
	Nack func(requeue bool)
}

type BookingEventQueue interface {
	// 發送訂位事件到隊列
	Publish(ctx context.Context, event *model.BookingEvent) error
	// 訂閱訂位事件隊列
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryQueueConfig 重試延遲與次數；nil 或零值時使用預設。
type MemoryQueueConfig struct {
	RetryDelay    time.Duration // Nack(true) 後延遲多久才重新投遞
	MaxRetryCount int           // 投遞次數達到此值後 Nack 即丟棄
}

func defaultMemoryQueueConfig() MemoryQueueConfig {
	return MemoryQueueConfig{
		RetryDelay:    5 * time.Second,
		MaxRetryCount: 5,
	}
}

// envelope 記錄事件已被投遞的次數
type envelope struct {
	event      *model.BookingEvent
	deliveries int
}

type BookingEventQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch  chan envelope
	cfg MemoryQueueConfig
}

// NewBookingEventQueue 建立記憶體版 BookingEventQueue。config 可為 nil。
func NewBookingEventQueue(bufferSize int, config *MemoryQueueConfig) BookingEventQueue {
	cfg := defaultMemoryQueueConfig()
	if config != nil {
		if config.RetryDelay > 0 {
			cfg.RetryDelay = config.RetryDelay
		}
		if config.MaxRetryCount > 0 {
			cfg.MaxRetryCount = config.MaxRetryCount
		}
	}
	return &BookingEventQueueImpl{
		ch:  make(chan envelope, bufferSize),
		cfg: cfg,
	}
}

func (q *BookingEventQueueImpl) Publish(ctx context.Context, event *model.BookingEvent) error {
	select {
	case q.ch <- envelope{event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *BookingEventQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case env, ok := <-q.ch:
				if !ok {
					return
				}
				env.deliveries++

				d := Delivery{
					Data: env.event,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.retry(env)
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// retry 延遲後重回隊列；達到重試上限或隊列已滿時丟棄
func (q *BookingEventQueueImpl) retry(env envelope) {
	log := logger.WithComponent("mq").With(
		zap.String("event_id", env.event.ID.String()),
		zap.Int("deliveries", env.deliveries),
	)
	if env.deliveries >= q.cfg.MaxRetryCount {
		log.Warn("discard poison message", zap.Int("max_retries", q.cfg.MaxRetryCount))
		return
	}

	time.AfterFunc(q.cfg.RetryDelay, func() {
		select {
		case q.ch <- env:
		default:
			log.Warn("queue full, drop retried message")
		}
	})
}
