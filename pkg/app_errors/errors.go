package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Callers branch on these with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientSeats   = errors.New("insufficient seats")
	ErrQuoteExpired        = errors.New("quote expired")
	ErrInvalidState        = errors.New("invalid state")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrInternal            = errors.New("internal server error")
)

// Error 帶有錯誤種類與欄位細節的業務錯誤
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Validation(message string, fields map[string]string) error {
	return &Error{Kind: ErrValidation, Message: message, Fields: fields}
}

func NotFound(entity string, id any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s %v not found", entity, id)}
}

func InsufficientSeats(requested, available int) error {
	return &Error{
		Kind:    ErrInsufficientSeats,
		Message: fmt.Sprintf("requested %d seats, %d available", requested, available),
	}
}

func QuoteExpired(id any, expiredAt time.Time) error {
	return &Error{
		Kind:    ErrQuoteExpired,
		Message: fmt.Sprintf("quote %v expired at %s", id, expiredAt.UTC().Format(time.RFC3339)),
	}
}

func InvalidState(message string) error {
	return &Error{Kind: ErrInvalidState, Message: message}
}

func ConcurrencyConflict(entity string, id any) error {
	return &Error{
		Kind:    ErrConcurrencyConflict,
		Message: fmt.Sprintf("%s %v was modified concurrently", entity, id),
	}
}

// KindOf 回傳錯誤種類的短名稱，供 metrics label 及 API code 使用
func KindOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInsufficientSeats):
		return "insufficient_seats"
	case errors.Is(err, ErrQuoteExpired):
		return "quote_expired"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrConcurrencyConflict):
		return "concurrency_conflict"
	default:
		return "internal"
	}
}

// FieldsOf 取出驗證錯誤的欄位細節
func FieldsOf(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
