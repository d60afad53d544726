package service

import (
	"context"
	"errors"
	"time"

	"flight-fare-ledger/internal/cache"
	"flight-fare-ledger/internal/fare"
	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/repository"
	apperrors "flight-fare-ledger/pkg/app_errors"
	"flight-fare-ledger/pkg/logger"
	"flight-fare-ledger/pkg/metrics"
	"flight-fare-ledger/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService 座位帳：所有座位計數變更都經由 repository 的原子操作
type LedgerService interface {
	// AddSeats 在航班下開立新的票價層級
	AddSeats(ctx context.Context, inventoryID uuid.UUID, req model.AddSeatsRequest) (*model.FareRecord, error)
	// AddMoreSeats 既有票價層級加位
	AddMoreSeats(ctx context.Context, fareID uuid.UUID, seats int) (*model.FareRecord, error)
	MinusSeats(ctx context.Context, fareID uuid.UUID, seats int) (*model.FareRecord, error)
	UpdateFareMarkup(ctx context.Context, fareID uuid.UUID, req model.UpdateMarkupRequest) (*model.MarkupUpdateResult, error)
	ToggleEnabled(ctx context.Context, inventoryID uuid.UUID, enabled bool) (*model.FlightInventory, error)
	GetFare(ctx context.Context, fareID uuid.UUID) (*model.FareRecord, error)
	// GetAvailability 先讀 Redis 鏡像，未命中再回源並預熱
	GetAvailability(ctx context.Context, fareID uuid.UUID) (*model.FareAvailability, error)
	ListMovements(ctx context.Context, fareID uuid.UUID) ([]*model.SeatMovement, error)
}

type LedgerServiceImpl struct {
	inventories repository.InventoryRepository
	fares       repository.FareRepository
	mirror      cache.FareAvailabilityCache
	metrics     *metrics.Metrics
	clock       Clock
}

// NewLedgerService mirror 可為 nil（不使用 Redis 鏡像）
func NewLedgerService(
	inventories repository.InventoryRepository,
	fares repository.FareRepository,
	mirror cache.FareAvailabilityCache,
	m *metrics.Metrics,
	clock Clock,
) LedgerService {
	return &LedgerServiceImpl{
		inventories: inventories,
		fares:       fares,
		mirror:      mirror,
		metrics:     m,
		clock:       clock,
	}
}

func validateSeatCount(seats int) error {
	return validation.Struct(model.SeatAdjustRequest{Seats: seats})
}

func (s *LedgerServiceImpl) AddSeats(ctx context.Context, inventoryID uuid.UUID, req model.AddSeatsRequest) (created *model.FareRecord, err error) {
	defer func(start time.Time) { s.metrics.Observe("add_seats", start, err) }(time.Now())

	if err = validation.Struct(req); err != nil {
		return nil, err
	}
	gross, grand, err := req.Components.Totals()
	if err != nil {
		return nil, err
	}
	if _, err = s.inventories.FindByID(ctx, inventoryID); err != nil {
		return nil, err
	}

	now := s.clock.now()
	created, err = s.fares.Create(ctx, &model.FareRecord{
		ID:             uuid.New(),
		InventoryID:    inventoryID,
		Components:     req.Components.Round(),
		GrossTotal:     gross.Round(fare.MoneyScale),
		GrandTotal:     grand.Round(fare.MoneyScale),
		TotalSeats:     req.Seats,
		AvailableSeats: req.Seats,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SeatsIn(req.Seats)
	syncAvailability(ctx, s.mirror, created)
	logger.WithComponent("service").Info("fare tier opened",
		zap.String("inventory_id", inventoryID.String()),
		zap.String("fare_id", created.ID.String()),
		zap.Int("seats", req.Seats),
		zap.String("grand_total", created.GrandTotal.StringFixed(2)),
	)
	return created, nil
}

func (s *LedgerServiceImpl) AddMoreSeats(ctx context.Context, fareID uuid.UUID, seats int) (updated *model.FareRecord, err error) {
	defer func(start time.Time) { s.metrics.Observe("add_more_seats", start, err) }(time.Now())

	if err = validateSeatCount(seats); err != nil {
		return nil, err
	}
	updated, err = s.fares.AddSeats(ctx, fareID, seats, s.clock.now())
	if err != nil {
		return nil, err
	}

	s.metrics.SeatsIn(seats)
	syncAvailability(ctx, s.mirror, updated)
	logger.WithComponent("service").Info("seats added",
		zap.String("fare_id", fareID.String()),
		zap.Int("seats", seats),
		zap.Int("total_seats", updated.TotalSeats),
		zap.Int("available_seats", updated.AvailableSeats),
	)
	return updated, nil
}

func (s *LedgerServiceImpl) MinusSeats(ctx context.Context, fareID uuid.UUID, seats int) (updated *model.FareRecord, err error) {
	defer func(start time.Time) { s.metrics.Observe("minus_seats", start, err) }(time.Now())

	if err = validateSeatCount(seats); err != nil {
		return nil, err
	}
	updated, err = s.fares.MinusSeats(ctx, fareID, seats, s.clock.now())
	if err != nil {
		return nil, err
	}

	s.metrics.SeatsOut(seats)
	syncAvailability(ctx, s.mirror, updated)
	logger.WithComponent("service").Info("seats removed",
		zap.String("fare_id", fareID.String()),
		zap.Int("seats", seats),
		zap.Int("available_seats", updated.AvailableSeats),
	)
	return updated, nil
}

func (s *LedgerServiceImpl) UpdateFareMarkup(ctx context.Context, fareID uuid.UUID, req model.UpdateMarkupRequest) (result *model.MarkupUpdateResult, err error) {
	defer func(start time.Time) { s.metrics.Observe("update_fare_markup", start, err) }(time.Now())

	current, err := s.fares.FindByID(ctx, fareID)
	if err != nil {
		return nil, err
	}

	next := current.Components
	if req.InfantFare != nil {
		next.InfantFare = *req.InfantFare
	}
	if req.Markup1 != nil {
		next.Markup1 = *req.Markup1
	}
	if req.Markup2 != nil {
		next.Markup2 = *req.Markup2
	}
	gross, grand, err := next.Totals()
	if err != nil {
		return nil, err
	}

	// 值相同（例如 10 與 10.00）視為沒有變更，不寫入也不增加版本
	if next.MarkupsEqual(current.Components) {
		return &model.MarkupUpdateResult{Fare: current.ToResponse(), Changed: false}, nil
	}

	candidate := *current
	candidate.Components = next.Round()
	candidate.GrossTotal = gross.Round(fare.MoneyScale)
	candidate.GrandTotal = grand.Round(fare.MoneyScale)
	candidate.UpdatedAt = s.clock.now()

	updated, err := s.fares.UpdateMarkup(ctx, &candidate, current.Version)
	if err != nil {
		return nil, err
	}

	syncAvailability(ctx, s.mirror, updated)
	logger.WithComponent("service").Info("fare markup updated",
		zap.String("fare_id", fareID.String()),
		zap.String("grand_total", updated.GrandTotal.StringFixed(2)),
		zap.Int64("version", updated.Version),
	)
	return &model.MarkupUpdateResult{Fare: updated.ToResponse(), Changed: true}, nil
}

func (s *LedgerServiceImpl) ToggleEnabled(ctx context.Context, inventoryID uuid.UUID, enabled bool) (inv *model.FlightInventory, err error) {
	defer func(start time.Time) { s.metrics.Observe("toggle_inventory_enabled", start, err) }(time.Now())

	inv, err = s.inventories.SetEnabled(ctx, inventoryID, enabled, s.clock.now())
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("inventory toggled",
		zap.String("inventory_id", inventoryID.String()),
		zap.Bool("enabled", enabled),
	)
	return inv, nil
}

func (s *LedgerServiceImpl) GetFare(ctx context.Context, fareID uuid.UUID) (*model.FareRecord, error) {
	return s.fares.FindByID(ctx, fareID)
}

func (s *LedgerServiceImpl) GetAvailability(ctx context.Context, fareID uuid.UUID) (*model.FareAvailability, error) {
	if s.mirror != nil {
		cached, err := s.mirror.Get(ctx, fareID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.WithComponent("service").Warn("read availability cache failed",
				zap.String("fare_id", fareID.String()), zap.Error(err))
		}
	}

	f, err := s.fares.FindByID(ctx, fareID)
	if err != nil {
		return nil, err
	}
	syncAvailability(ctx, s.mirror, f)
	return f.Availability(model.AvailabilitySourceStore), nil
}

func (s *LedgerServiceImpl) ListMovements(ctx context.Context, fareID uuid.UUID) ([]*model.SeatMovement, error) {
	return s.fares.ListMovements(ctx, fareID)
}
