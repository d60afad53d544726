package notifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailNotifier 透過 Gmail API 寄送電子機票
type GmailNotifier struct {
	service *gmail.Service
	sender  string
}

// NewGmailNotifier 以 refresh token 建立 token source
func NewGmailNotifier(ctx context.Context, clientID, clientSecret, refreshToken, sender string) (*GmailNotifier, error) {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	token := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now(), // Force refresh
	}

	service, err := gmail.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}
	return NewGmailNotifierWithService(service, sender), nil
}

func NewGmailNotifierWithService(service *gmail.Service, sender string) *GmailNotifier {
	return &GmailNotifier{service: service, sender: sender}
}

func (n *GmailNotifier) Notify(ctx context.Context, event *model.BookingEvent) error {
	raw := BuildMessage(n.sender, event)
	message := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(raw)}

	sent, err := n.service.Users.Messages.Send("me", message).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail send for booking %s: %w", event.Booking.Reference, err)
	}

	logger.WithComponent("notifier").Info("ticket email sent",
		zap.String("reference", event.Booking.Reference),
		zap.String("gmail_message_id", sent.Id),
	)
	return nil
}
