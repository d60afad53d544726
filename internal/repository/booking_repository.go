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

type BookingRepository interface {
	// Confirm 在同一個交易內扣減座位、寫入訂位與 book 異動。
	// 票價（grand_total / infant_fare）須與 booking.Pricing 一致，否則回傳 ErrInvalidState。
	Confirm(ctx context.Context, booking *model.Booking) (*model.Booking, *model.FareRecord, error)
	// Cancel 在同一個交易內將 CONFIRMED 改為 CANCELLED 並歸還座位
	Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*model.Booking, *model.FareRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, reference, quote_id, inventory_id, fare_id, pnr,
		passengers, contact, pricing, status, cancel_reason, cancelled_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.QuoteID,
		&b.InventoryID,
		&b.FareID,
		&b.PNR,
		&b.Passengers,
		&b.Contact,
		&b.Pricing,
		&b.Status,
		&b.CancelReason,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepositoryImpl) Confirm(ctx context.Context, booking *model.Booking) (*model.Booking, *model.FareRecord, error) {
	seats := booking.SeatsHeld()
	if seats <= 0 {
		return nil, nil, apperrors.Validation("booking must hold at least one seat", nil)
	}

	// 條件式扣減：座位足夠、票價未變、航班啟用中才會命中
	decrement := `
		UPDATE fare_records
		SET available_seats = available_seats - $1,
			version = version + 1,
			updated_at = $2
		WHERE id = $3
			AND available_seats >= $1
			AND grand_total = $4
			AND infant_fare = $5
			AND EXISTS (
				SELECT 1 FROM flight_inventories i
				WHERE i.id = fare_records.inventory_id AND i.enabled
			)
		RETURNING ` + fareColumns

	insert := `
		INSERT INTO bookings (
			id, reference, quote_id, inventory_id, fare_id, pnr,
			passengers, contact, pricing, seats_held, total_amount,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		RETURNING ` + bookingColumns

	var (
		created *model.Booking
		fare    *model.FareRecord
	)
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		fare, err = scanFare(tx.QueryRow(ctx, decrement,
			seats, booking.CreatedAt, booking.FareID,
			booking.Pricing.GrandTotal, booking.Pricing.InfantFare,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return classifyConfirmFailure(ctx, tx, booking)
		}
		if err != nil {
			return err
		}

		created, err = scanBooking(tx.QueryRow(ctx, insert,
			booking.ID, booking.Reference, booking.QuoteID, booking.InventoryID, booking.FareID, booking.PNR,
			booking.Passengers, booking.Contact, booking.Pricing, seats, booking.Pricing.TotalAmount,
			model.BookingStatusConfirmed, booking.CreatedAt,
		))
		if err != nil {
			return err
		}

		return insertMovement(ctx, tx, model.NewMovement(fare, model.MovementBook, 0, -seats, &created.ID))
	})
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgUniqueViolation {
			switch constraint {
			case "bookings_quote_id_key":
				return nil, nil, apperrors.InvalidState(fmt.Sprintf("quote %s is already confirmed", booking.QuoteID))
			case "bookings_reference_key":
				return nil, nil, ErrDuplicateReference
			}
		}
		return nil, nil, err
	}

	return created, fare, nil
}

// classifyConfirmFailure 依序判斷：不存在、航班停用、票價已變、座位不足
func classifyConfirmFailure(ctx context.Context, tx pgx.Tx, booking *model.Booking) error {
	query := `
		SELECT f.available_seats, f.grand_total, f.infant_fare, i.enabled
		FROM fare_records f
		JOIN flight_inventories i ON i.id = f.inventory_id
		WHERE f.id = $1
	`

	var (
		available int
		current   model.FareRecord
		enabled   bool
	)
	err := tx.QueryRow(ctx, query, booking.FareID).Scan(&available, &current.GrandTotal, &current.InfantFare, &enabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("fare", booking.FareID)
	}
	if err != nil {
		return err
	}

	switch {
	case !enabled:
		return apperrors.InvalidState("flight inventory is disabled")
	case !current.GrandTotal.Equal(booking.Pricing.GrandTotal) || !current.InfantFare.Equal(booking.Pricing.InfantFare):
		return apperrors.InvalidState("fare changed since quote, request a new quote")
	default:
		return apperrors.InsufficientSeats(booking.SeatsHeld(), available)
	}
}

func (r *BookingRepositoryImpl) Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*model.Booking, *model.FareRecord, error) {
	// 只有 CONFIRMED 能轉為 CANCELLED，重複取消不會重複歸還座位
	cancel := `
		UPDATE bookings
		SET status = $1, cancel_reason = $2, cancelled_at = $3, updated_at = $3
		WHERE id = $4 AND status = $5
		RETURNING ` + bookingColumns

	restore := `
		UPDATE fare_records
		SET available_seats = available_seats + $1,
			version = version + 1,
			updated_at = $2
		WHERE id = $3 AND available_seats + $1 <= total_seats
		RETURNING ` + fareColumns

	var (
		cancelled *model.Booking
		fare      *model.FareRecord
	)
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		cancelled, err = scanBooking(tx.QueryRow(ctx, cancel,
			model.BookingStatusCancelled, reason, at, id, model.BookingStatusConfirmed,
		))
		if errors.Is(err, pgx.ErrNoRows) {
			return classifyCancelFailure(ctx, tx, id)
		}
		if err != nil {
			return err
		}

		seats := cancelled.SeatsHeld()
		fare, err = scanFare(tx.QueryRow(ctx, restore, seats, at, cancelled.FareID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("restoring %d seats to fare %s exceeds total seats: %w", seats, cancelled.FareID, apperrors.ErrInternal)
		}
		if err != nil {
			return err
		}

		return insertMovement(ctx, tx, model.NewMovement(fare, model.MovementCancel, 0, seats, &cancelled.ID))
	})
	if err != nil {
		return nil, nil, err
	}

	return cancelled, fare, nil
}

func classifyCancelFailure(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var status model.BookingStatus
	err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound("booking", id)
	}
	if err != nil {
		return err
	}
	return apperrors.InvalidState(fmt.Sprintf("booking %s is %s and cannot be cancelled", id, status))
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("booking", id)
		}
		return nil, err
	}
	return b, nil
}
