package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"flight-fare-ledger/internal/fare"
	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/queue"
	"flight-fare-ledger/internal/repository/memory"
	"flight-fare-ledger/internal/service"
	"flight-fare-ledger/pkg/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	departure = time.Date(2026, 12, 1, 8, 0, 0, 0, time.UTC)
	startTime = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	mu        sync.Mutex
	now       time.Time
	store     *memory.Store
	events    queue.BookingEventQueue
	metrics   *metrics.Metrics
	inventory service.InventoryService
	ledger    service.LedgerService
	booking   service.BookingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		now:     startTime,
		store:   memory.NewStore(),
		events:  queue.NewBookingEventQueue(1024, nil),
		metrics: metrics.New(prometheus.NewRegistry()),
	}
	clock := service.Clock(f.clockNow)
	quotes := memory.NewQuoteRepository(f.clockNow)

	f.inventory = service.NewInventoryService(f.store.Inventories(), f.store.Fares(), f.metrics, clock)
	f.ledger = service.NewLedgerService(f.store.Inventories(), f.store.Fares(), nil, f.metrics, clock)
	f.booking = service.NewBookingService(
		f.store.Inventories(), f.store.Fares(), quotes, f.store.Bookings(),
		nil, f.events, f.metrics,
		service.BookingConfig{QuoteTTL: 15 * time.Minute, QuoteRetention: time.Hour},
		clock,
	)
	return f
}

func (f *fixture) clockNow() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fixture) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func createFlight(t *testing.T, f *fixture) *model.FlightInventory {
	t.Helper()
	inv, err := f.inventory.Create(context.Background(), model.CreateInventoryRequest{
		FromAirport:       "DEL",
		ToAirport:         "BOM",
		Airline:           "Air India",
		FlightNumber:      "AI101",
		PNR:               "PNR123",
		DepartureAt:       departure,
		ArrivalAt:         departure.Add(2*time.Hour + 30*time.Minute),
		DepartureTerminal: "T3",
		ArrivalTerminal:   "T2",
	})
	require.NoError(t, err)
	return inv
}

// openFare 開立 grossTotal=5350 的票價層級
func openFare(t *testing.T, f *fixture, inventoryID uuid.UUID, seats int) *model.FareRecord {
	t.Helper()
	created, err := f.ledger.AddSeats(context.Background(), inventoryID, model.AddSeatsRequest{
		Seats: seats,
		Components: fare.Components{
			BasicFare: dec("5000"),
			YQ:        dec("200"),
			YR:        dec("100"),
			OT:        dec("50"),
		},
	})
	require.NoError(t, err)
	return created
}

// openMarkedUpFare 加上 markup 後 grandTotal=5850
func openMarkedUpFare(t *testing.T, f *fixture, seats int) (*model.FlightInventory, *model.FareRecord) {
	t.Helper()
	inv := createFlight(t, f)
	created := openFare(t, f, inv.ID, seats)
	result, err := f.ledger.UpdateFareMarkup(context.Background(), created.ID, model.UpdateMarkupRequest{
		Markup1: decPtr("300"),
		Markup2: decPtr("200"),
	})
	require.NoError(t, err)
	return inv, result.Fare.FareRecord
}

func quoteFor(t *testing.T, f *fixture, fareID uuid.UUID, adults, children, infants int) *model.Quote {
	t.Helper()
	q, err := f.booking.CreateQuote(context.Background(), model.CreateQuoteRequest{
		FareID:        fareID,
		DepartureDate: departure.Format(model.DateLayout),
		Passengers:    model.PassengerCount{Adults: adults, Children: children, Infants: infants},
	})
	require.NoError(t, err)
	return q
}

func passengersFor(adults, children, infants int) []model.Passenger {
	out := make([]model.Passenger, 0, adults+children+infants)
	for i := 0; i < adults; i++ {
		out = append(out, model.Passenger{Type: model.PassengerAdult, Title: "Mr", FirstName: "Adult", LastName: "Traveler"})
	}
	for i := 0; i < children; i++ {
		out = append(out, model.Passenger{Type: model.PassengerChild, FirstName: "Child", LastName: "Traveler", DateOfBirth: "2018-05-01"})
	}
	for i := 0; i < infants; i++ {
		out = append(out, model.Passenger{Type: model.PassengerInfant, FirstName: "Infant", LastName: "Traveler", DateOfBirth: "2026-01-10"})
	}
	return out
}

func confirmRequest(q *model.Quote) model.ConfirmBookingRequest {
	return model.ConfirmBookingRequest{
		QuoteID:    q.ID,
		Passengers: passengersFor(q.Passengers.Adults, q.Passengers.Children, q.Passengers.Infants),
		Contact: model.ContactInfo{
			Name:  "Asha Traveler",
			Email: "asha@example.com",
			Phone: "+919800000000",
		},
	}
}

func availableSeats(t *testing.T, f *fixture, fareID uuid.UUID) int {
	t.Helper()
	got, err := f.ledger.GetFare(context.Background(), fareID)
	require.NoError(t, err)
	return got.AvailableSeats
}
