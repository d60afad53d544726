package service_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"flight-fare-ledger/internal/fare"
	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)

		created := openFare(t, f, inv.ID, 10)

		assert.True(t, created.GrossTotal.Equal(dec("5350")), created.GrossTotal.String())
		assert.True(t, created.GrandTotal.Equal(dec("5350")), created.GrandTotal.String())
		assert.Equal(t, 10, created.TotalSeats)
		assert.Equal(t, 10, created.AvailableSeats)
		assert.Equal(t, int64(1), created.Version)

		got, err := f.inventory.Get(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.TotalSeats)
		assert.Equal(t, 10, got.AvailableSeats)
		require.Len(t, got.Fares, 1)
		assert.Equal(t, created.ID, got.Fares[0].ID)
	})

	t.Run("Success - tiers are kept separate", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)

		first := openFare(t, f, inv.ID, 10)
		second := openFare(t, f, inv.ID, 5)
		assert.NotEqual(t, first.ID, second.ID)

		got, err := f.inventory.Get(ctx, inv.ID)
		require.NoError(t, err)
		assert.Len(t, got.Fares, 2)
		assert.Equal(t, 15, got.TotalSeats)
	})

	t.Run("Failed - inventory not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.ledger.AddSeats(ctx, uuid.New(), model.AddSeatsRequest{Seats: 10})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Failed - zero seats", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		_, err := f.ledger.AddSeats(ctx, inv.ID, model.AddSeatsRequest{Seats: 0})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, apperrors.FieldsOf(err), "seats")
	})

	t.Run("Failed - more seats than one request allows", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		_, err := f.ledger.AddSeats(ctx, inv.ID, model.AddSeatsRequest{Seats: model.MaxSeatsPerRequest + 1})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, "must be at most 100000", apperrors.FieldsOf(err)["seats"])
	})

	t.Run("Failed - component beyond storable amount", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		_, err := f.ledger.AddSeats(ctx, inv.ID, model.AddSeatsRequest{
			Seats:      10,
			Components: fare.Components{BasicFare: dec("1000000000000")},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, apperrors.FieldsOf(err), "basic_fare")
	})

	t.Run("Failed - negative component", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		_, err := f.ledger.AddSeats(ctx, inv.ID, model.AddSeatsRequest{
			Seats:      10,
			Components: fare.Components{BasicFare: dec("100"), OT: dec("-5")},
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		got, err := f.inventory.Get(ctx, inv.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Fares)
	})
}

func TestLedger_AddMoreSeats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := createFlight(t, f)
	created := openFare(t, f, inv.ID, 10)

	updated, err := f.ledger.AddMoreSeats(ctx, created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.TotalSeats)
	assert.Equal(t, 15, updated.AvailableSeats)
	assert.Equal(t, int64(2), updated.Version)

	t.Run("Failed - not found", func(t *testing.T) {
		_, err := f.ledger.AddMoreSeats(ctx, uuid.New(), 5)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Failed - negative seats", func(t *testing.T) {
		_, err := f.ledger.AddMoreSeats(ctx, created.ID, -1)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, 15, availableSeats(t, f, created.ID))
	})

	t.Run("Failed - huge top-up cannot wrap the counters", func(t *testing.T) {
		_, err := f.ledger.AddMoreSeats(ctx, created.ID, math.MaxInt)
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		got, err := f.ledger.GetFare(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 15, got.TotalSeats)
		assert.Equal(t, 15, got.AvailableSeats)
		assert.True(t, got.SeatsValid())
	})
}

func TestLedger_AddMoreSeatsStopsAtTierCapacity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := createFlight(t, f)
	created := openFare(t, f, inv.ID, model.MaxSeatsPerRequest)

	for i := 1; i < model.MaxTierSeats/model.MaxSeatsPerRequest; i++ {
		_, err := f.ledger.AddMoreSeats(ctx, created.ID, model.MaxSeatsPerRequest)
		require.NoError(t, err)
	}

	_, err := f.ledger.AddMoreSeats(ctx, created.ID, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, apperrors.FieldsOf(err), "seats")

	got, err := f.ledger.GetFare(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MaxTierSeats, got.TotalSeats)
	assert.Equal(t, model.MaxTierSeats, got.AvailableSeats)

	// 上限內仍可扣除再使用
	updated, err := f.ledger.MinusSeats(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, model.MaxTierSeats-1, updated.AvailableSeats)
}

func TestLedger_MinusSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		created := openFare(t, f, inv.ID, 10)

		updated, err := f.ledger.MinusSeats(ctx, created.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 10, updated.TotalSeats)
		assert.Equal(t, 7, updated.AvailableSeats)
		assert.Equal(t, 3, updated.SoldSeats())
	})

	t.Run("Success - down to sold out", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		created := openFare(t, f, inv.ID, 2)

		updated, err := f.ledger.MinusSeats(ctx, created.ID, 2)
		require.NoError(t, err)
		assert.True(t, updated.IsSoldOut())
		assert.True(t, updated.ToResponse().SoldOut)
	})

	t.Run("Failed - more than available leaves fare unchanged", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		created := openFare(t, f, inv.ID, 10)

		_, err := f.ledger.MinusSeats(ctx, created.ID, 11)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientSeats)

		got, err := f.ledger.GetFare(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.TotalSeats)
		assert.Equal(t, 10, got.AvailableSeats)
		assert.Equal(t, int64(1), got.Version)
	})

	t.Run("Failed - zero seats", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)
		created := openFare(t, f, inv.ID, 10)

		_, err := f.ledger.MinusSeats(ctx, created.ID, 0)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestLedger_UpdateFareMarkup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		_, marked := openMarkedUpFare(t, f, 10)

		assert.True(t, marked.GrossTotal.Equal(dec("5350")))
		assert.True(t, marked.GrandTotal.Equal(dec("5850")), marked.GrandTotal.String())
		assert.Equal(t, 10, marked.TotalSeats)
		assert.Equal(t, 10, marked.AvailableSeats)
		assert.Equal(t, int64(2), marked.Version)
	})

	t.Run("Success - unchanged values are a no-op", func(t *testing.T) {
		f := newFixture(t)
		_, marked := openMarkedUpFare(t, f, 10)

		result, err := f.ledger.UpdateFareMarkup(ctx, marked.ID, model.UpdateMarkupRequest{
			Markup1: decPtr("300.00"),
			Markup2: decPtr("200"),
		})
		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Equal(t, marked.Version, result.Fare.Version)
	})

	t.Run("Success - omitted fields keep their value", func(t *testing.T) {
		f := newFixture(t)
		_, marked := openMarkedUpFare(t, f, 10)

		result, err := f.ledger.UpdateFareMarkup(ctx, marked.ID, model.UpdateMarkupRequest{
			InfantFare: decPtr("1200"),
		})
		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.True(t, result.Fare.Markup1.Equal(dec("300")))
		assert.True(t, result.Fare.InfantFare.Equal(dec("1200")))
		assert.True(t, result.Fare.GrandTotal.Equal(dec("5850")))
	})

	t.Run("Failed - markup beyond storable amount", func(t *testing.T) {
		f := newFixture(t)
		_, created := openMarkedUpFare(t, f, 10)
		_, err := f.ledger.UpdateFareMarkup(ctx, created.ID, model.UpdateMarkupRequest{Markup1: decPtr("1e12")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, apperrors.FieldsOf(err), "markup1")
	})

	t.Run("Failed - negative markup", func(t *testing.T) {
		f := newFixture(t)
		_, marked := openMarkedUpFare(t, f, 10)

		_, err := f.ledger.UpdateFareMarkup(ctx, marked.ID, model.UpdateMarkupRequest{Markup2: decPtr("-1")})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		got, err := f.ledger.GetFare(ctx, marked.ID)
		require.NoError(t, err)
		assert.True(t, got.GrandTotal.Equal(dec("5850")))
	})

	t.Run("Failed - stale version", func(t *testing.T) {
		f := newFixture(t)
		_, marked := openMarkedUpFare(t, f, 10)

		stale := *marked
		stale.Markup1 = dec("1")
		_, err := f.store.Fares().UpdateMarkup(ctx, &stale, marked.Version-1)
		assert.ErrorIs(t, err, apperrors.ErrConcurrencyConflict)
	})
}

func TestLedger_ToggleEnabled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv, marked := openMarkedUpFare(t, f, 10)

	disabled, err := f.ledger.ToggleEnabled(ctx, inv.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.Enabled)

	_, err = f.booking.CreateQuote(ctx, model.CreateQuoteRequest{
		FareID:        marked.ID,
		DepartureDate: departure.Format(model.DateLayout),
		Passengers:    model.PassengerCount{Adults: 1},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	enabled, err := f.ledger.ToggleEnabled(ctx, inv.ID, true)
	require.NoError(t, err)
	assert.True(t, enabled.Enabled)

	_, err = f.ledger.ToggleEnabled(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedger_GetAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := createFlight(t, f)
	created := openFare(t, f, inv.ID, 4)
	_, err := f.ledger.MinusSeats(ctx, created.ID, 4)
	require.NoError(t, err)

	got, err := f.ledger.GetAvailability(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AvailabilitySourceStore, got.Source)
	assert.Equal(t, 0, got.AvailableSeats)
	assert.Equal(t, 4, got.SoldSeats)
	assert.True(t, got.SoldOut)

	_, err = f.ledger.GetAvailability(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedger_ListMovements(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := createFlight(t, f)
	created := openFare(t, f, inv.ID, 10)

	_, err := f.ledger.AddMoreSeats(ctx, created.ID, 5)
	require.NoError(t, err)
	_, err = f.ledger.MinusSeats(ctx, created.ID, 2)
	require.NoError(t, err)

	movements, err := f.ledger.ListMovements(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, movements, 3)

	assert.Equal(t, model.MovementAdd, movements[0].Kind)
	assert.Equal(t, 10, movements[0].AvailableAfter)
	assert.Equal(t, model.MovementTopUp, movements[1].Kind)
	assert.Equal(t, 15, movements[1].TotalAfter)
	assert.Equal(t, model.MovementMinus, movements[2].Kind)
	assert.Equal(t, -2, movements[2].DeltaAvailable)
	assert.Equal(t, 13, movements[2].AvailableAfter)

	assert.Equal(t, float64(15), testutil.ToFloat64(f.metrics.SeatsMoved.WithLabelValues("in")))
	assert.Equal(t, float64(2), testutil.ToFloat64(f.metrics.SeatsMoved.WithLabelValues("out")))
}

// 隨機操作序列下 0 <= available <= total 恆成立，且日誌可重算出計數
func TestLedger_SeatBoundHoldsForRandomSequences(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		f := newFixture(t)
		inv, marked := openMarkedUpFare(t, f, 1+rng.Intn(5))
		var confirmed []uuid.UUID

		for step := 0; step < 40; step++ {
			switch rng.Intn(4) {
			case 0:
				_, _ = f.ledger.AddMoreSeats(ctx, marked.ID, 1+rng.Intn(3))
			case 1:
				_, _ = f.ledger.MinusSeats(ctx, marked.ID, 1+rng.Intn(4))
			case 2:
				q, err := f.booking.CreateQuote(ctx, model.CreateQuoteRequest{
					FareID:        marked.ID,
					DepartureDate: inv.DepartureDate(),
					Passengers:    model.PassengerCount{Adults: 1 + rng.Intn(2), Children: rng.Intn(2)},
				})
				if err != nil {
					continue
				}
				b, err := f.booking.ConfirmBooking(ctx, confirmRequest(q))
				if err == nil {
					confirmed = append(confirmed, b.ID)
				}
			case 3:
				if len(confirmed) == 0 {
					continue
				}
				i := rng.Intn(len(confirmed))
				_, err := f.booking.CancelBooking(ctx, confirmed[i], model.CancelBookingRequest{Reason: "random"})
				require.NoError(t, err)
				confirmed = append(confirmed[:i], confirmed[i+1:]...)
			}

			got, err := f.ledger.GetFare(ctx, marked.ID)
			require.NoError(t, err)
			require.True(t, got.SeatsValid(), "round %d step %d: available=%d total=%d", round, step, got.AvailableSeats, got.TotalSeats)
		}

		got, err := f.ledger.GetFare(ctx, marked.ID)
		require.NoError(t, err)
		movements, err := f.ledger.ListMovements(ctx, marked.ID)
		require.NoError(t, err)

		var total, available int
		for _, m := range movements {
			total += m.DeltaTotal
			available += m.DeltaAvailable
		}
		assert.Equal(t, got.TotalSeats, total)
		assert.Equal(t, got.AvailableSeats, available)
	}
}
