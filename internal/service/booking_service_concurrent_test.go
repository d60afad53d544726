package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrent_LastSeat(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, marked := openMarkedUpFare(t, f, 1)

	q1 := quoteFor(t, f, marked.ID, 1, 0, 0)
	q2 := quoteFor(t, f, marked.ID, 1, 0, 0)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, q := range []*model.Quote{q1, q2} {
		wg.Add(1)
		go func(i int, q *model.Quote) {
			defer wg.Done()
			_, errs[i] = f.booking.ConfirmBooking(ctx, confirmRequest(q))
		}(i, q)
	}
	wg.Wait()

	var succeeded, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, apperrors.ErrInsufficientSeats):
			insufficient++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, 0, availableSeats(t, f, marked.ID))
}

// 100 個請求搶 10 個座位，只有 10 個成功
func TestConcurrent_OversubscribedFare(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, marked := openMarkedUpFare(t, f, 10)

	quotes := make([]*model.Quote, 100)
	for i := range quotes {
		quotes[i] = quoteFor(t, f, marked.ID, 1, 0, 0)
	}

	var (
		wg           sync.WaitGroup
		succeeded    atomic.Int32
		insufficient atomic.Int32
		other        atomic.Int32
	)
	for _, q := range quotes {
		wg.Add(1)
		go func(q *model.Quote) {
			defer wg.Done()
			_, err := f.booking.ConfirmBooking(ctx, confirmRequest(q))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, apperrors.ErrInsufficientSeats):
				insufficient.Add(1)
			default:
				other.Add(1)
			}
		}(q)
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	assert.Equal(t, int32(90), insufficient.Load())
	assert.Equal(t, int32(0), other.Load())

	got, err := f.ledger.GetFare(ctx, marked.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableSeats)
	assert.Equal(t, 10, got.TotalSeats)
}

func TestConcurrent_TopUpAndMinus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := createFlight(t, f)
	created := openFare(t, f, inv.ID, 50)

	var wg sync.WaitGroup
	var minusOK atomic.Int32
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := f.ledger.AddMoreSeats(ctx, created.ID, 1)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			if _, err := f.ledger.MinusSeats(ctx, created.ID, 2); err == nil {
				minusOK.Add(1)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInsufficientSeats)
			}
		}()
	}
	wg.Wait()

	got, err := f.ledger.GetFare(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.TotalSeats)
	assert.Equal(t, 100-2*int(minusOK.Load()), got.AvailableSeats)
	assert.True(t, got.SeatsValid())
	// 初始 1 + 每次成功的操作各 1
	assert.Equal(t, int64(1+50)+int64(minusOK.Load()), got.Version)
}

func TestConcurrent_ConfirmAndCancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, marked := openMarkedUpFare(t, f, 20)

	bookings := make([]*model.Booking, 0, 10)
	for i := 0; i < 10; i++ {
		b, err := f.booking.ConfirmBooking(ctx, confirmRequest(quoteFor(t, f, marked.ID, 1, 0, 0)))
		require.NoError(t, err)
		bookings = append(bookings, b)
	}
	quotes := make([]*model.Quote, 10)
	for i := range quotes {
		quotes[i] = quoteFor(t, f, marked.ID, 1, 0, 0)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(b *model.Booking) {
			defer wg.Done()
			_, err := f.booking.CancelBooking(ctx, b.ID, model.CancelBookingRequest{Reason: "load"})
			assert.NoError(t, err)
		}(bookings[i])
		go func(q *model.Quote) {
			defer wg.Done()
			_, err := f.booking.ConfirmBooking(ctx, confirmRequest(q))
			assert.NoError(t, err)
		}(quotes[i])
	}
	wg.Wait()

	assert.Equal(t, 10, availableSeats(t, f, marked.ID))
}
