package worker

import (
	"context"
	"time"

	"flight-fare-ledger/internal/notifier"
	"flight-fare-ledger/internal/queue"
	"flight-fare-ledger/pkg/logger"
	"flight-fare-ledger/pkg/metrics"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// 訂閱訂位事件隊列，背景處理直到 ctx 結束
	Start(ctx context.Context) error
	// Done 在處理 goroutine 結束後關閉
	Done() <-chan struct{}
}

type NotificationWorkerImpl struct {
	notifier notifier.Notifier
	queue    queue.BookingEventQueue
	metrics  *metrics.Metrics
	timeout  time.Duration
	done     chan struct{}
}

func NewNotificationWorker(n notifier.Notifier, q queue.BookingEventQueue, m *metrics.Metrics) NotificationWorker {
	return &NotificationWorkerImpl{
		notifier: n,
		queue:    q,
		metrics:  m,
		timeout:  30 * time.Second,
		done:     make(chan struct{}),
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		close(w.done)
		return err
	}

	log := logger.WithComponent("worker")
	go func() {
		defer close(w.done)
		for msg := range msgs {
			event := msg.Data
			if event == nil || event.Booking == nil {
				log.Warn("drop malformed booking event")
				msg.Nack(false)
				w.metrics.Notification("dropped")
				continue
			}

			notifyCtx, cancel := context.WithTimeout(ctx, w.timeout)
			err := w.notifier.Notify(notifyCtx, event)
			cancel()

			if err != nil {
				// 通知失敗不影響訂位，交由隊列延遲重試
				log.Warn("notify failed, will retry",
					zap.String("event_id", event.ID.String()),
					zap.String("reference", event.Booking.Reference),
					zap.Error(err),
				)
				msg.Nack(true)
				w.metrics.Notification("retry")
				continue
			}

			msg.Ack()
			w.metrics.Notification("sent")
		}
	}()
	return nil
}

func (w *NotificationWorkerImpl) Done() <-chan struct{} {
	return w.done
}
