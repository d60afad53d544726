package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FareRepository interface {
	// Create 新增票價層級並寫入 add 異動
	Create(ctx context.Context, fare *model.FareRecord) (*model.FareRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FareRecord, error)
	ListByInventoryID(ctx context.Context, inventoryID uuid.UUID) ([]*model.FareRecord, error)
	// AddSeats total 與 available 同時增加
	AddSeats(ctx context.Context, id uuid.UUID, seats int, at time.Time) (*model.FareRecord, error)
	// MinusSeats 只扣 available；不足時回傳 ErrInsufficientSeats 且不做任何變更
	MinusSeats(ctx context.Context, id uuid.UUID, seats int, at time.Time) (*model.FareRecord, error)
	// UpdateMarkup 以 version 做樂觀鎖；版本不符回傳 ErrConcurrencyConflict
	UpdateMarkup(ctx context.Context, fare *model.FareRecord, expectedVersion int64) (*model.FareRecord, error)
	ListMovements(ctx context.Context, fareID uuid.UUID) ([]*model.SeatMovement, error)
}

type FareRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewFareRepository(pool *pgxpool.Pool) FareRepository {
	return &FareRepositoryImpl{
		pool: pool,
	}
}

const fareColumns = `id, inventory_id, basic_fare, yq, yr, ot, infant_fare, markup1, markup2,
		gross_total, grand_total, total_seats, available_seats, version, created_at, updated_at`

func scanFare(row pgx.Row) (*model.FareRecord, error) {
	var f model.FareRecord
	err := row.Scan(
		&f.ID,
		&f.InventoryID,
		&f.BasicFare,
		&f.YQ,
		&f.YR,
		&f.OT,
		&f.InfantFare,
		&f.Markup1,
		&f.Markup2,
		&f.GrossTotal,
		&f.GrandTotal,
		&f.TotalSeats,
		&f.AvailableSeats,
		&f.Version,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func insertMovement(ctx context.Context, tx pgx.Tx, m *model.SeatMovement) error {
	query := `
		INSERT INTO seat_movements (
			fare_id, kind, delta_total, delta_available,
			total_after, available_after, booking_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return tx.QueryRow(ctx, query,
		m.FareID, m.Kind, m.DeltaTotal, m.DeltaAvailable,
		m.TotalAfter, m.AvailableAfter, m.BookingID, m.CreatedAt,
	).Scan(&m.ID)
}

func (r *FareRepositoryImpl) Create(ctx context.Context, fare *model.FareRecord) (*model.FareRecord, error) {
	query := `
		INSERT INTO fare_records (
			id, inventory_id, basic_fare, yq, yr, ot, infant_fare, markup1, markup2,
			gross_total, grand_total, total_seats, available_seats, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING ` + fareColumns

	var created *model.FareRecord
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		created, err = scanFare(tx.QueryRow(ctx, query,
			fare.ID, fare.InventoryID, fare.BasicFare, fare.YQ, fare.YR, fare.OT,
			fare.InfantFare, fare.Markup1, fare.Markup2, fare.GrossTotal, fare.GrandTotal,
			fare.TotalSeats, fare.AvailableSeats, fare.Version, fare.CreatedAt,
		))
		if err != nil {
			return err
		}
		return insertMovement(ctx, tx, model.NewMovement(created, model.MovementAdd, created.TotalSeats, created.AvailableSeats, nil))
	})
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return nil, apperrors.NotFound("inventory", fare.InventoryID)
		}
		return nil, err
	}

	return created, nil
}

func (r *FareRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.FareRecord, error) {
	query := `SELECT ` + fareColumns + ` FROM fare_records WHERE id = $1`

	f, err := scanFare(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("fare", id)
		}
		return nil, err
	}
	return f, nil
}

func (r *FareRepositoryImpl) ListByInventoryID(ctx context.Context, inventoryID uuid.UUID) ([]*model.FareRecord, error) {
	query := `
		SELECT ` + fareColumns + `
		FROM fare_records
		WHERE inventory_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fares := make([]*model.FareRecord, 0)
	for rows.Next() {
		f, err := scanFare(rows)
		if err != nil {
			return nil, err
		}
		fares = append(fares, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fares, nil
}

func (r *FareRepositoryImpl) AddSeats(ctx context.Context, id uuid.UUID, seats int, at time.Time) (*model.FareRecord, error) {
	// 條件式加位：加完不能超過單一層級上限
	query := `
		UPDATE fare_records
		SET total_seats = total_seats + $1,
			available_seats = available_seats + $1,
			version = version + 1,
			updated_at = $2
		WHERE id = $3 AND total_seats <= $4 - $1
		RETURNING ` + fareColumns

	var updated *model.FareRecord
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = scanFare(tx.QueryRow(ctx, query, seats, at, id, model.MaxTierSeats))
		if errors.Is(err, pgx.ErrNoRows) {
			return classifyOverflow(ctx, tx, id)
		}
		if err != nil {
			return err
		}
		return insertMovement(ctx, tx, model.NewMovement(updated, model.MovementTopUp, seats, seats, nil))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// classifyOverflow 加位沒有命中時，區分不存在與超過上限
func classifyOverflow(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var total int
	err := tx.QueryRow(ctx, `SELECT total_seats FROM fare_records WHERE id = $1`, id).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("fare", id)
	}
	if err != nil {
		return err
	}
	return TierCapacityExceeded(total)
}

func (r *FareRepositoryImpl) MinusSeats(ctx context.Context, id uuid.UUID, seats int, at time.Time) (*model.FareRecord, error) {
	// 條件式扣減：available_seats >= seats 才會更新，避免負數
	query := `
		UPDATE fare_records
		SET available_seats = available_seats - $1,
			version = version + 1,
			updated_at = $2
		WHERE id = $3 AND available_seats >= $1
		RETURNING ` + fareColumns

	var updated *model.FareRecord
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = scanFare(tx.QueryRow(ctx, query, seats, at, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return classifyShortfall(ctx, tx, id, seats)
		}
		if err != nil {
			return err
		}
		return insertMovement(ctx, tx, model.NewMovement(updated, model.MovementMinus, 0, -seats, nil))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// classifyShortfall 條件式更新沒有命中時，區分不存在與座位不足
func classifyShortfall(ctx context.Context, tx pgx.Tx, id uuid.UUID, requested int) error {
	var available int
	err := tx.QueryRow(ctx, `SELECT available_seats FROM fare_records WHERE id = $1`, id).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("fare", id)
	}
	if err != nil {
		return err
	}
	return apperrors.InsufficientSeats(requested, available)
}

func (r *FareRepositoryImpl) UpdateMarkup(ctx context.Context, fare *model.FareRecord, expectedVersion int64) (*model.FareRecord, error) {
	query := `
		UPDATE fare_records
		SET infant_fare = $1, markup1 = $2, markup2 = $3,
			gross_total = $4, grand_total = $5,
			version = version + 1,
			updated_at = $6
		WHERE id = $7 AND version = $8
		RETURNING ` + fareColumns

	updated, err := scanFare(r.pool.QueryRow(ctx, query,
		fare.InfantFare, fare.Markup1, fare.Markup2,
		fare.GrossTotal, fare.GrandTotal, fare.UpdatedAt,
		fare.ID, expectedVersion,
	))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if _, findErr := r.FindByID(ctx, fare.ID); findErr != nil {
		return nil, findErr
	}
	return nil, apperrors.ConcurrencyConflict("fare", fare.ID)
}

func (r *FareRepositoryImpl) ListMovements(ctx context.Context, fareID uuid.UUID) ([]*model.SeatMovement, error) {
	query := `
		SELECT id, fare_id, kind, delta_total, delta_available,
				total_after, available_after, booking_id, created_at
		FROM seat_movements
		WHERE fare_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, fareID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]*model.SeatMovement, 0)
	for rows.Next() {
		var m model.SeatMovement
		err := rows.Scan(
			&m.ID,
			&m.FareID,
			&m.Kind,
			&m.DeltaTotal,
			&m.DeltaAvailable,
			&m.TotalAfter,
			&m.AvailableAfter,
			&m.BookingID,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
