package repository

import (
	"context"
	"errors"
	"time"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryRepository interface {
	Create(ctx context.Context, inventory *model.FlightInventory) (*model.FlightInventory, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FlightInventory, error)
	List(ctx context.Context) ([]*model.FlightInventory, error)
	// Search 出發時間落在 [from, to)、已啟用且仍有空位的航班
	Search(ctx context.Context, fromAirport, toAirport string, from, to time.Time) ([]*model.FlightInventory, error)
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool, at time.Time) (*model.FlightInventory, error)
}

type InventoryRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewInventoryRepository(pool *pgxpool.Pool) InventoryRepository {
	return &InventoryRepositoryImpl{
		pool: pool,
	}
}

// 座位總數由票價層級彙總
const inventorySelect = `
	SELECT i.id, i.from_airport, i.to_airport, i.airline, i.flight_number, i.pnr,
			i.departure_at, i.arrival_at, i.departure_terminal, i.arrival_terminal,
			i.enabled, i.created_at, i.updated_at,
			COALESCE(SUM(f.total_seats), 0), COALESCE(SUM(f.available_seats), 0)
	FROM flight_inventories i
	LEFT JOIN fare_records f ON f.inventory_id = i.id
`

func scanInventory(row pgx.Row) (*model.FlightInventory, error) {
	var inv model.FlightInventory
	err := row.Scan(
		&inv.ID,
		&inv.FromAirport,
		&inv.ToAirport,
		&inv.Airline,
		&inv.FlightNumber,
		&inv.PNR,
		&inv.DepartureAt,
		&inv.ArrivalAt,
		&inv.DepartureTerminal,
		&inv.ArrivalTerminal,
		&inv.Enabled,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.TotalSeats,
		&inv.AvailableSeats,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InventoryRepositoryImpl) Create(ctx context.Context, inventory *model.FlightInventory) (*model.FlightInventory, error) {
	query := `
		INSERT INTO flight_inventories (
			id, from_airport, to_airport, airline, flight_number, pnr,
			departure_at, arrival_at, departure_terminal, arrival_terminal,
			enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		inventory.ID, inventory.FromAirport, inventory.ToAirport, inventory.Airline,
		inventory.FlightNumber, inventory.PNR, inventory.DepartureAt, inventory.ArrivalAt,
		inventory.DepartureTerminal, inventory.ArrivalTerminal, inventory.Enabled, inventory.CreatedAt,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgCheckViolation {
			return nil, apperrors.Validation("invalid route or schedule", nil)
		}
		return nil, err
	}

	return r.FindByID(ctx, inventory.ID)
}

func (r *InventoryRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.FlightInventory, error) {
	query := inventorySelect + `
		WHERE i.id = $1
		GROUP BY i.id
	`

	inv, err := scanInventory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("inventory", id)
		}
		return nil, err
	}
	return inv, nil
}

func (r *InventoryRepositoryImpl) List(ctx context.Context) ([]*model.FlightInventory, error) {
	query := inventorySelect + `
		GROUP BY i.id
		ORDER BY i.departure_at, i.id
	`
	return r.queryList(ctx, query)
}

func (r *InventoryRepositoryImpl) Search(ctx context.Context, fromAirport, toAirport string, from, to time.Time) ([]*model.FlightInventory, error) {
	query := inventorySelect + `
		WHERE i.from_airport = $1 AND i.to_airport = $2
			AND i.departure_at >= $3 AND i.departure_at < $4
			AND i.enabled
		GROUP BY i.id
		HAVING COALESCE(SUM(f.available_seats), 0) > 0
		ORDER BY i.departure_at, i.id
	`
	return r.queryList(ctx, query, fromAirport, toAirport, from, to)
}

func (r *InventoryRepositoryImpl) queryList(ctx context.Context, query string, args ...interface{}) ([]*model.FlightInventory, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inventories := make([]*model.FlightInventory, 0)
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		inventories = append(inventories, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return inventories, nil
}

func (r *InventoryRepositoryImpl) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool, at time.Time) (*model.FlightInventory, error) {
	query := `
		UPDATE flight_inventories
		SET enabled = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, enabled, at, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.NotFound("inventory", id)
	}

	return r.FindByID(ctx, id)
}
