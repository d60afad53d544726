package service

import (
	"context"
	"strings"
	"time"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/repository"
	"flight-fare-ledger/pkg/logger"
	"flight-fare-ledger/pkg/metrics"
	"flight-fare-ledger/pkg/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InventoryService interface {
	Create(ctx context.Context, req model.CreateInventoryRequest) (*model.FlightInventory, error)
	// Get 含所有票價層級
	Get(ctx context.Context, id uuid.UUID) (*model.FlightInventory, error)
	List(ctx context.Context) ([]*model.FlightInventory, error)
	Search(ctx context.Context, req model.SearchInventoryRequest) ([]*model.FlightInventory, error)
}

type InventoryServiceImpl struct {
	inventories repository.InventoryRepository
	fares       repository.FareRepository
	metrics     *metrics.Metrics
	clock       Clock
}

func NewInventoryService(
	inventories repository.InventoryRepository,
	fares repository.FareRepository,
	m *metrics.Metrics,
	clock Clock,
) InventoryService {
	return &InventoryServiceImpl{
		inventories: inventories,
		fares:       fares,
		metrics:     m,
		clock:       clock,
	}
}

func (s *InventoryServiceImpl) Create(ctx context.Context, req model.CreateInventoryRequest) (inv *model.FlightInventory, err error) {
	defer func(start time.Time) { s.metrics.Observe("create_inventory", start, err) }(time.Now())

	req.FromAirport = strings.TrimSpace(req.FromAirport)
	req.ToAirport = strings.TrimSpace(req.ToAirport)
	req.PNR = strings.TrimSpace(req.PNR)
	if err = validation.Struct(req); err != nil {
		return nil, err
	}

	now := s.clock.now()
	inv, err = s.inventories.Create(ctx, &model.FlightInventory{
		ID:                uuid.New(),
		FromAirport:       req.FromAirport,
		ToAirport:         req.ToAirport,
		Airline:           req.Airline,
		FlightNumber:      req.FlightNumber,
		PNR:               req.PNR,
		DepartureAt:       req.DepartureAt.UTC(),
		ArrivalAt:         req.ArrivalAt.UTC(),
		DepartureTerminal: req.DepartureTerminal,
		ArrivalTerminal:   req.ArrivalTerminal,
		Enabled:           true,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("inventory created",
		zap.String("inventory_id", inv.ID.String()),
		zap.String("route", inv.FromAirport+"-"+inv.ToAirport),
		zap.String("flight_number", inv.FlightNumber),
	)
	return inv, nil
}

func (s *InventoryServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.FlightInventory, error) {
	inv, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fares, err := s.fares.ListByInventoryID(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Fares = fares
	return inv, nil
}

func (s *InventoryServiceImpl) List(ctx context.Context) ([]*model.FlightInventory, error) {
	return s.inventories.List(ctx)
}

func (s *InventoryServiceImpl) Search(ctx context.Context, req model.SearchInventoryRequest) ([]*model.FlightInventory, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	day, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, err
	}
	return s.inventories.Search(ctx, req.From, req.To, day, day.AddDate(0, 0, 1))
}
