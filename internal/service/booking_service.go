package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-fare-ledger/internal/cache"
	"flight-fare-ledger/internal/fare"
	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/queue"
	"flight-fare-ledger/internal/repository"
	apperrors "flight-fare-ledger/pkg/app_errors"
	"flight-fare-ledger/pkg/logger"
	"flight-fare-ledger/pkg/metrics"
	"flight-fare-ledger/pkg/utils"
	"flight-fare-ledger/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxReferenceAttempts = 3

type BookingService interface {
	// CreateQuote 價格與可售快照，不扣座位
	CreateQuote(ctx context.Context, req model.CreateQuoteRequest) (*model.Quote, error)
	GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error)
	// ConfirmBooking 重新驗證座位後原子扣減並成立訂位
	ConfirmBooking(ctx context.Context, req model.ConfirmBookingRequest) (*model.Booking, error)
	// CancelBooking 原子地取消訂位並歸還座位
	CancelBooking(ctx context.Context, id uuid.UUID, req model.CancelBookingRequest) (*model.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error)
}

type BookingConfig struct {
	QuoteTTL       time.Duration
	QuoteRetention time.Duration
}

type BookingServiceImpl struct {
	inventories repository.InventoryRepository
	fares       repository.FareRepository
	quotes      repository.QuoteRepository
	bookings    repository.BookingRepository
	mirror      cache.FareAvailabilityCache
	events      queue.BookingEventQueue
	metrics     *metrics.Metrics
	cfg         BookingConfig
	clock       Clock
}

// NewBookingService mirror 與 events 可為 nil
func NewBookingService(
	inventories repository.InventoryRepository,
	fares repository.FareRepository,
	quotes repository.QuoteRepository,
	bookings repository.BookingRepository,
	mirror cache.FareAvailabilityCache,
	events queue.BookingEventQueue,
	m *metrics.Metrics,
	cfg BookingConfig,
	clock Clock,
) BookingService {
	if cfg.QuoteTTL <= 0 {
		cfg.QuoteTTL = 15 * time.Minute
	}
	if cfg.QuoteRetention < cfg.QuoteTTL {
		cfg.QuoteRetention = cfg.QuoteTTL
	}
	return &BookingServiceImpl{
		inventories: inventories,
		fares:       fares,
		quotes:      quotes,
		bookings:    bookings,
		mirror:      mirror,
		events:      events,
		metrics:     m,
		cfg:         cfg,
		clock:       clock,
	}
}

func (s *BookingServiceImpl) CreateQuote(ctx context.Context, req model.CreateQuoteRequest) (quote *model.Quote, err error) {
	defer func(start time.Time) { s.metrics.Observe("create_quote", start, err) }(time.Now())

	if err = validation.Struct(req); err != nil {
		return nil, err
	}

	f, err := s.fares.FindByID(ctx, req.FareID)
	if err != nil {
		return nil, err
	}
	inv, err := s.inventories.FindByID(ctx, f.InventoryID)
	if err != nil {
		return nil, err
	}
	if !inv.Enabled {
		return nil, apperrors.InvalidState("flight inventory is disabled")
	}
	if inv.DepartureDate() != req.DepartureDate {
		return nil, apperrors.Validation("departure date does not match the flight",
			map[string]string{"departure_date": fmt.Sprintf("flight departs on %s", inv.DepartureDate())})
	}

	seats := req.Passengers.SeatsRequired()
	if f.AvailableSeats < seats {
		return nil, apperrors.InsufficientSeats(seats, f.AvailableSeats)
	}

	total, err := fare.PassengerTotal(f.GrandTotal, f.InfantFare,
		req.Passengers.Adults, req.Passengers.Children, req.Passengers.Infants)
	if err != nil {
		return nil, err
	}

	now := s.clock.now()
	quote = &model.Quote{
		ID:             uuid.New(),
		FareID:         f.ID,
		InventoryID:    inv.ID,
		DepartureDate:  req.DepartureDate,
		Passengers:     req.Passengers,
		UnitPrice:      f.GrandTotal,
		ChildPrice:     fare.ChildPrice(f.GrandTotal),
		InfantFare:     f.InfantFare,
		TotalAmount:    total,
		SeatsRequired:  seats,
		AvailableSeats: f.AvailableSeats,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.cfg.QuoteTTL),
	}
	if err = s.quotes.Save(ctx, quote, s.cfg.QuoteRetention); err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("quote created",
		zap.String("quote_id", quote.ID.String()),
		zap.String("fare_id", f.ID.String()),
		zap.Int("seats", seats),
		zap.String("total_amount", total.StringFixed(2)),
	)
	return quote, nil
}

func (s *BookingServiceImpl) GetQuote(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	return s.quotes.FindByID(ctx, id)
}

func (s *BookingServiceImpl) ConfirmBooking(ctx context.Context, req model.ConfirmBookingRequest) (booking *model.Booking, err error) {
	defer func(start time.Time) { s.metrics.Observe("confirm_booking", start, err) }(time.Now())

	if err = validation.Struct(req); err != nil {
		return nil, err
	}

	quote, err := s.quotes.FindByID(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	now := s.clock.now()
	if quote.IsExpired(now) {
		return nil, apperrors.QuoteExpired(quote.ID, quote.ExpiresAt)
	}
	if got := model.CountPassengers(req.Passengers); got != quote.Passengers {
		return nil, apperrors.Validation("passenger list does not match the quote", map[string]string{
			"passengers": fmt.Sprintf("quote is for %d adults, %d children, %d infants",
				quote.Passengers.Adults, quote.Passengers.Children, quote.Passengers.Infants),
		})
	}

	f, err := s.fares.FindByID(ctx, quote.FareID)
	if err != nil {
		return nil, err
	}
	if !f.GrandTotal.Equal(quote.UnitPrice) || !f.InfantFare.Equal(quote.InfantFare) {
		return nil, apperrors.InvalidState("fare changed since quote, request a new quote")
	}
	inv, err := s.inventories.FindByID(ctx, quote.InventoryID)
	if err != nil {
		return nil, err
	}

	candidate := &model.Booking{
		ID:          uuid.New(),
		QuoteID:     quote.ID,
		InventoryID: inv.ID,
		FareID:      f.ID,
		PNR:         inv.PNR,
		Passengers:  req.Passengers,
		Contact:     req.Contact,
		Pricing:     pricingSnapshot(f, quote),
		Status:      model.BookingStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var updatedFare *model.FareRecord
	for attempt := 1; ; attempt++ {
		candidate.Reference = utils.GenerateBookingReference(now)
		booking, updatedFare, err = s.bookings.Confirm(ctx, candidate)
		if !errors.Is(err, repository.ErrDuplicateReference) || attempt == maxReferenceAttempts {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	s.metrics.SeatsOut(booking.SeatsHeld())
	syncAvailability(ctx, s.mirror, updatedFare)
	s.publish(ctx, model.BookingEventConfirmed, booking, inv)

	logger.WithComponent("service").Info("booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("fare_id", f.ID.String()),
		zap.Int("seats", booking.SeatsHeld()),
		zap.Int("available_seats", updatedFare.AvailableSeats),
	)
	return booking, nil
}

// pricingSnapshot 凍結成立當下的價格明細
func pricingSnapshot(f *model.FareRecord, q *model.Quote) model.PricingSnapshot {
	return model.PricingSnapshot{
		BasicFare:       f.BasicFare,
		YQ:              f.YQ,
		YR:              f.YR,
		OT:              f.OT,
		GrossTotal:      f.GrossTotal,
		Markup1:         f.Markup1,
		Markup2:         f.Markup2,
		GrandTotal:      f.GrandTotal,
		InfantFare:      f.InfantFare,
		ChildFareFactor: fare.ChildFareFactor,
		Passengers:      q.Passengers,
		SeatsHeld:       q.Passengers.SeatsRequired(),
		TotalAmount:     q.TotalAmount,
	}
}

func (s *BookingServiceImpl) CancelBooking(ctx context.Context, id uuid.UUID, req model.CancelBookingRequest) (booking *model.Booking, err error) {
	defer func(start time.Time) { s.metrics.Observe("cancel_booking", start, err) }(time.Now())

	if err = validation.Struct(req); err != nil {
		return nil, err
	}

	booking, updatedFare, err := s.bookings.Cancel(ctx, id, req.Reason, s.clock.now())
	if err != nil {
		return nil, err
	}

	s.metrics.SeatsIn(booking.SeatsHeld())
	syncAvailability(ctx, s.mirror, updatedFare)

	inv, invErr := s.inventories.FindByID(ctx, booking.InventoryID)
	if invErr != nil {
		logger.WithComponent("service").Warn("load inventory for cancel notification failed",
			zap.String("inventory_id", booking.InventoryID.String()), zap.Error(invErr))
	}
	s.publish(ctx, model.BookingEventCancelled, booking, inv)

	logger.WithComponent("service").Info("booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.Int("seats", booking.SeatsHeld()),
		zap.Int("available_seats", updatedFare.AvailableSeats),
	)
	return booking, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

// publish 通知失敗只記 log，不影響已提交的訂位
func (s *BookingServiceImpl) publish(ctx context.Context, eventType model.BookingEventType, booking *model.Booking, inv *model.FlightInventory) {
	if s.events == nil {
		return
	}
	pubCtx, cancel := detached(ctx)
	defer cancel()

	event := &model.BookingEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Booking:    booking,
		Inventory:  inv,
		OccurredAt: s.clock.now(),
	}
	if err := s.events.Publish(pubCtx, event); err != nil {
		logger.WithComponent("service").Error("publish booking event failed",
			zap.String("booking_id", booking.ID.String()),
			zap.String("type", string(eventType)),
			zap.Error(err),
		)
	}
}
