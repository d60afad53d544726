package service_test

import (
	"context"
	"testing"
	"time"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		inv := createFlight(t, f)

		assert.NotEqual(t, uuid.Nil, inv.ID)
		assert.True(t, inv.Enabled)
		assert.Equal(t, "2026-12-01", inv.DepartureDate())
		assert.Equal(t, 0, inv.TotalSeats)
		assert.Equal(t, startTime, inv.CreatedAt)
	})

	t.Run("Failed - invalid request", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.inventory.Create(ctx, model.CreateInventoryRequest{
			FromAirport:  "DEL",
			ToAirport:    "DEL",
			Airline:      "Air India",
			FlightNumber: "AI101",
			PNR:          "PNR123",
			DepartureAt:  departure,
			ArrivalAt:    departure.Add(-time.Hour),
		})
		require.ErrorIs(t, err, apperrors.ErrValidation)

		fields := apperrors.FieldsOf(err)
		assert.Contains(t, fields, "to_airport")
		assert.Contains(t, fields, "arrival_at")
	})

	t.Run("Failed - lowercase airport code", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.inventory.Create(ctx, model.CreateInventoryRequest{
			FromAirport:  "del",
			ToAirport:    "BOM",
			Airline:      "Air India",
			FlightNumber: "AI101",
			PNR:          "PNR123",
			DepartureAt:  departure,
			ArrivalAt:    departure.Add(time.Hour),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, apperrors.FieldsOf(err), "from_airport")
	})
}

func TestInventory_GetAggregatesFares(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := createFlight(t, f)
	first := openFare(t, f, inv.ID, 10)
	openFare(t, f, inv.ID, 6)

	_, err := f.ledger.MinusSeats(ctx, first.ID, 4)
	require.NoError(t, err)

	got, err := f.inventory.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 16, got.TotalSeats)
	assert.Equal(t, 12, got.AvailableSeats)
	assert.Equal(t, 4, got.SoldSeats())
	assert.Len(t, got.Fares, 2)

	_, err = f.inventory.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInventory_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first := createFlight(t, f)
	openFare(t, f, first.ID, 5)
	later, err := f.inventory.Create(ctx, model.CreateInventoryRequest{
		FromAirport:  "DEL",
		ToAirport:    "BOM",
		Airline:      "Air India",
		FlightNumber: "AI103",
		PNR:          "PNR456",
		DepartureAt:  departure.Add(24 * time.Hour),
		ArrivalAt:    departure.Add(26 * time.Hour),
	})
	require.NoError(t, err)
	laterFare := openFare(t, f, later.ID, 2)

	all, err := f.inventory.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "AI101", all[0].FlightNumber)

	found, err := f.inventory.Search(ctx, model.SearchInventoryRequest{From: "DEL", To: "BOM", Date: "2026-12-02"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, later.ID, found[0].ID)

	none, err := f.inventory.Search(ctx, model.SearchInventoryRequest{From: "BOM", To: "DEL", Date: "2026-12-01"})
	require.NoError(t, err)
	assert.Empty(t, none)

	// 售完或停用的航班不出現在搜尋結果
	_, err = f.ledger.MinusSeats(ctx, laterFare.ID, 2)
	require.NoError(t, err)
	found, err = f.inventory.Search(ctx, model.SearchInventoryRequest{From: "DEL", To: "BOM", Date: "2026-12-02"})
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = f.ledger.ToggleEnabled(ctx, first.ID, false)
	require.NoError(t, err)
	found, err = f.inventory.Search(ctx, model.SearchInventoryRequest{From: "DEL", To: "BOM", Date: "2026-12-01"})
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = f.inventory.Search(ctx, model.SearchInventoryRequest{From: "DEL", To: "BOM", Date: "01/12/2026"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
