package notifier

import (
	"context"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/pkg/logger"

	"go.uber.org/zap"
)

// LogNotifier 未設定 Gmail 憑證時使用，只寫 log
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, event *model.BookingEvent) error {
	logger.WithComponent("notifier").Info("booking notification",
		zap.String("event_id", event.ID.String()),
		zap.String("type", string(event.Type)),
		zap.String("reference", event.Booking.Reference),
		zap.String("email", event.Booking.Contact.Email),
		zap.String("subject", Subject(event)),
	)
	return nil
}
