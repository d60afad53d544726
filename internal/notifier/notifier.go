package notifier

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"flight-fare-ledger/internal/model"
)

// Notifier 訂位事件通知（例如寄送電子機票）
type Notifier interface {
	Notify(ctx context.Context, event *model.BookingEvent) error
}

// Subject 依事件類型產生信件主旨
func Subject(event *model.BookingEvent) string {
	switch event.Type {
	case model.BookingEventCancelled:
		return fmt.Sprintf("Booking %s cancelled", event.Booking.Reference)
	default:
		return fmt.Sprintf("Your e-ticket: booking %s confirmed", event.Booking.Reference)
	}
}

// Body 純文字信件內容
func Body(event *model.BookingEvent) string {
	b := event.Booking
	var sb strings.Builder

	fmt.Fprintf(&sb, "Dear %s,\n\n", b.Contact.Name)
	switch event.Type {
	case model.BookingEventCancelled:
		fmt.Fprintf(&sb, "Your booking %s has been cancelled.\n", b.Reference)
		if b.CancelReason != "" {
			fmt.Fprintf(&sb, "Reason: %s\n", b.CancelReason)
		}
	default:
		fmt.Fprintf(&sb, "Your booking %s is confirmed.\n", b.Reference)
	}

	fmt.Fprintf(&sb, "\nPNR: %s\n", b.PNR)
	if inv := event.Inventory; inv != nil {
		fmt.Fprintf(&sb, "Flight: %s %s\n", inv.Airline, inv.FlightNumber)
		fmt.Fprintf(&sb, "Route: %s -> %s\n", inv.FromAirport, inv.ToAirport)
		fmt.Fprintf(&sb, "Departure: %s", inv.DepartureAt.UTC().Format("2006-01-02 15:04 MST"))
		if inv.DepartureTerminal != "" {
			fmt.Fprintf(&sb, " (terminal %s)", inv.DepartureTerminal)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Arrival: %s", inv.ArrivalAt.UTC().Format("2006-01-02 15:04 MST"))
		if inv.ArrivalTerminal != "" {
			fmt.Fprintf(&sb, " (terminal %s)", inv.ArrivalTerminal)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nPassengers:\n")
	for i, p := range b.Passengers {
		name := strings.TrimSpace(strings.Join([]string{p.Title, p.FirstName, p.LastName}, " "))
		fmt.Fprintf(&sb, "  %d. %s (%s)\n", i+1, name, p.Type)
	}

	fmt.Fprintf(&sb, "\nTotal amount: %s\n", b.Pricing.TotalAmount.StringFixed(2))
	return sb.String()
}

// BuildMessage 組成 RFC 5322 純文字信件
func BuildMessage(from string, event *model.BookingEvent) []byte {
	to := mail.Address{Name: event.Booking.Contact.Name, Address: event.Booking.Contact.Email}

	var sb strings.Builder
	if from != "" {
		fmt.Fprintf(&sb, "From: %s\r\n", from)
	}
	fmt.Fprintf(&sb, "To: %s\r\n", to.String())
	fmt.Fprintf(&sb, "Subject: %s\r\n", Subject(event))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(strings.ReplaceAll(Body(event), "\n", "\r\n"))
	return []byte(sb.String())
}
