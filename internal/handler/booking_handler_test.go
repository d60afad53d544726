package handler_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func bytesReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func sampleBooking(status model.BookingStatus) *model.Booking {
	return &model.Booking{
		ID:        uuid.New(),
		Reference: "BK-20261101-000000-0001",
		QuoteID:   uuid.New(),
		PNR:       "PNR123",
		Status:    status,
		Pricing:   model.PricingSnapshot{SeatsHeld: 1, TotalAmount: decimal.RequireFromString("5850")},
	}
}

func confirmBody(quoteID uuid.UUID) model.ConfirmBookingRequest {
	return model.ConfirmBookingRequest{
		QuoteID:    quoteID,
		Passengers: []model.Passenger{{Type: model.PassengerAdult, FirstName: "Asha", LastName: "Rao"}},
		Contact:    model.ContactInfo{Name: "Asha Rao", Email: "asha@example.com", Phone: "+919800000000"},
	}
}

func TestCreateQuote(t *testing.T) {
	req := model.CreateQuoteRequest{
		FareID:        uuid.New(),
		DepartureDate: "2026-12-01",
		Passengers:    model.PassengerCount{Adults: 2, Children: 1, Infants: 1},
	}

	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.booking.EXPECT().CreateQuote(mock.Anything, req).Return(&model.Quote{
			ID:          uuid.New(),
			FareID:      req.FareID,
			Passengers:  req.Passengers,
			TotalAmount: decimal.RequireFromString("16087.50"),
			ExpiresAt:   time.Date(2026, 11, 1, 0, 15, 0, 0, time.UTC),
		}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/quotes", req))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "16087.5", decodeBody(t, w)["total_amount"])
	})

	t.Run("Failed - ErrInsufficientSeats", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.booking.EXPECT().CreateQuote(mock.Anything, req).Return(nil, apperrors.InsufficientSeats(3, 2)).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/quotes", req))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "insufficient_seats", decodeBody(t, w)["code"])
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		router, s := setupTestRouter(t)

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/quotes", InvalidJSON))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.booking.AssertNotCalled(t, "CreateQuote")
	})
}

func TestConfirmBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		quoteID := uuid.New()
		booking := sampleBooking(model.BookingStatusConfirmed)
		s.booking.EXPECT().ConfirmBooking(mock.Anything, confirmBody(quoteID)).Return(booking, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", confirmBody(quoteID)))

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "CONFIRMED", body["status"])
		assert.Equal(t, booking.Reference, body["reference"])
	})

	t.Run("Failed - ErrQuoteExpired", func(t *testing.T) {
		router, s := setupTestRouter(t)
		quoteID := uuid.New()
		s.booking.EXPECT().ConfirmBooking(mock.Anything, mock.Anything).
			Return(nil, apperrors.QuoteExpired(quoteID, time.Now())).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", confirmBody(quoteID)))

		assert.Equal(t, http.StatusGone, w.Code)
		assert.Equal(t, "quote_expired", decodeBody(t, w)["code"])
	})

	t.Run("Failed - ErrInvalidState", func(t *testing.T) {
		router, s := setupTestRouter(t)
		s.booking.EXPECT().ConfirmBooking(mock.Anything, mock.Anything).
			Return(nil, apperrors.InvalidState("fare changed since quote, request a new quote")).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings", confirmBody(uuid.New())))

		assert.Equal(t, http.StatusConflict, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "invalid_state", body["code"])
		assert.Nil(t, body["retryable"])
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, s := setupTestRouter(t)
		booking := sampleBooking(model.BookingStatusCancelled)
		s.booking.EXPECT().CancelBooking(mock.Anything, booking.ID, model.CancelBookingRequest{Reason: "plans changed"}).
			Return(booking, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings/"+booking.ID.String()+"/cancel",
			model.CancelBookingRequest{Reason: "plans changed"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CANCELLED", decodeBody(t, w)["status"])
	})

	t.Run("Failed - ErrInvalidState", func(t *testing.T) {
		router, s := setupTestRouter(t)
		id := uuid.New()
		s.booking.EXPECT().CancelBooking(mock.Anything, id, mock.Anything).
			Return(nil, apperrors.InvalidState("booking is CANCELLED and cannot be cancelled")).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/bookings/"+id.String()+"/cancel",
			model.CancelBookingRequest{Reason: "again"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetQuoteAndBooking(t *testing.T) {
	t.Run("Quote not found", func(t *testing.T) {
		router, s := setupTestRouter(t)
		id := uuid.New()
		s.booking.EXPECT().GetQuote(mock.Anything, id).Return(nil, apperrors.NotFound("quote", id)).Once()

		req, _ := http.NewRequest("GET", "/api/v1/quotes/"+id.String(), nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Booking", func(t *testing.T) {
		router, s := setupTestRouter(t)
		booking := sampleBooking(model.BookingStatusConfirmed)
		s.booking.EXPECT().GetBooking(mock.Anything, booking.ID).Return(booking, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/bookings/"+booking.ID.String(), nil)
		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "PNR123", decodeBody(t, w)["pnr"])
	})
}

func TestPing(t *testing.T) {
	router, _ := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/ping", nil)
	w := serve(router, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeBody(t, w)["message"])
}
