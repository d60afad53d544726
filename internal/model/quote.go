package model

import (
	"time"

	"flight-fare-ledger/internal/fare"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxPassengersPerType 單一報價每種乘客的人數上限
const MaxPassengersPerType = 9

// PassengerCount 乘客人數組合
type PassengerCount struct {
	Adults   int `json:"adults" validate:"gte=1,lte=9"`
	Children int `json:"children" validate:"gte=0,lte=9"`
	Infants  int `json:"infants" validate:"gte=0,lte=9"`
}

// SeatsRequired 嬰兒不佔位
func (p PassengerCount) SeatsRequired() int {
	return fare.SeatsRequired(p.Adults, p.Children, p.Infants)
}

func (p PassengerCount) Total() int {
	return p.Adults + p.Children + p.Infants
}

// Quote 報價：價格快照與有效期限，不保留座位
type Quote struct {
	ID             uuid.UUID       `json:"id"`
	FareID         uuid.UUID       `json:"fare_id"`
	InventoryID    uuid.UUID       `json:"inventory_id"`
	DepartureDate  string          `json:"departure_date"`
	Passengers     PassengerCount  `json:"passengers"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	ChildPrice     decimal.Decimal `json:"child_price"`
	InfantFare     decimal.Decimal `json:"infant_fare"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	SeatsRequired  int             `json:"seats_required"`
	AvailableSeats int             `json:"available_seats"`
	CreatedAt      time.Time       `json:"created_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
}

// IsExpired 報價在 ExpiresAt 當下即視為過期
func (q *Quote) IsExpired(now time.Time) bool {
	return !now.Before(q.ExpiresAt)
}

// CreateQuoteRequest 報價請求
type CreateQuoteRequest struct {
	FareID        uuid.UUID      `json:"fare_id" validate:"required"`
	DepartureDate string         `json:"departure_date" validate:"required,datetime=2006-01-02"`
	Passengers    PassengerCount `json:"passengers"`
}
