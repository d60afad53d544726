package apperrors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "ok"},
		{"validation", Validation("bad", nil), "validation"},
		{"not found", NotFound("fare", 1), "not_found"},
		{"insufficient seats", InsufficientSeats(3, 1), "insufficient_seats"},
		{"quote expired", QuoteExpired("q", time.Unix(0, 0)), "quote_expired"},
		{"invalid state", InvalidState("cancelled"), "invalid_state"},
		{"concurrency conflict", ConcurrencyConflict("fare", 1), "concurrency_conflict"},
		{"wrapped", fmt.Errorf("confirm: %w", InsufficientSeats(2, 0)), "insufficient_seats"},
		{"plain error", errors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	err := InsufficientSeats(3, 1)
	assert.ErrorIs(t, err, ErrInsufficientSeats)
	assert.Equal(t, "insufficient seats: requested 3 seats, 1 available", err.Error())

	bare := &Error{Kind: ErrInternal}
	assert.Equal(t, "internal server error", bare.Error())
}

func TestFieldsOf(t *testing.T) {
	fields := map[string]string{"seats": "must be greater than 0"}
	assert.Equal(t, fields, FieldsOf(fmt.Errorf("wrap: %w", Validation("bad", fields))))
	assert.Nil(t, FieldsOf(errors.New("plain")))
}
