package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus 訂位狀態類型
type BookingStatus string

const (
	BookingStatusQuoted    BookingStatus = "QUOTED"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusQuoted, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusQuoted:    {BookingStatusConfirmed},
		BookingStatusConfirmed: {BookingStatusCancelled},
		BookingStatusCancelled: {}, // 終態
	}

	for _, status := range transitions[s] {
		if status == target {
			return true
		}
	}
	return false
}

// PassengerType 乘客類型
type PassengerType string

const (
	PassengerAdult  PassengerType = "ADULT"
	PassengerChild  PassengerType = "CHILD"
	PassengerInfant PassengerType = "INFANT"
)

type Passenger struct {
	Type        PassengerType `json:"type" validate:"required,oneof=ADULT CHILD INFANT"`
	Title       string        `json:"title" validate:"omitempty,max=10"`
	FirstName   string        `json:"first_name" validate:"required,max=64"`
	LastName    string        `json:"last_name" validate:"required,max=64"`
	DateOfBirth string        `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ContactInfo struct {
	Name  string `json:"name" validate:"required,max=128"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=6,max=20"`
}

// CountPassengers 依類型統計乘客名單
func CountPassengers(passengers []Passenger) PassengerCount {
	var c PassengerCount
	for _, p := range passengers {
		switch p.Type {
		case PassengerAdult:
			c.Adults++
		case PassengerChild:
			c.Children++
		case PassengerInfant:
			c.Infants++
		}
	}
	return c
}

// PricingSnapshot 訂位成立當下凍結的價格明細，之後票價變動不影響
type PricingSnapshot struct {
	BasicFare       decimal.Decimal `json:"basic_fare"`
	YQ              decimal.Decimal `json:"yq"`
	YR              decimal.Decimal `json:"yr"`
	OT              decimal.Decimal `json:"ot"`
	GrossTotal      decimal.Decimal `json:"gross_total"`
	Markup1         decimal.Decimal `json:"markup1"`
	Markup2         decimal.Decimal `json:"markup2"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	InfantFare      decimal.Decimal `json:"infant_fare"`
	ChildFareFactor decimal.Decimal `json:"child_fare_factor"`
	Passengers      PassengerCount  `json:"passengers"`
	SeatsHeld       int             `json:"seats_held"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

// Booking 訂位
type Booking struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Reference    string          `json:"reference" db:"reference"`
	QuoteID      uuid.UUID       `json:"quote_id" db:"quote_id"`
	InventoryID  uuid.UUID       `json:"inventory_id" db:"inventory_id"`
	FareID       uuid.UUID       `json:"fare_id" db:"fare_id"`
	PNR          string          `json:"pnr" db:"pnr"`
	Passengers   []Passenger     `json:"passengers" db:"passengers"`
	Contact      ContactInfo     `json:"contact" db:"contact"`
	Pricing      PricingSnapshot `json:"pricing" db:"pricing"`
	Status       BookingStatus   `json:"status" db:"status"`
	CancelReason string          `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CancelledAt  *time.Time      `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// SeatsHeld 此訂位佔用的座位數
func (b *Booking) SeatsHeld() int {
	return b.Pricing.SeatsHeld
}

// ConfirmBookingRequest 依報價成立訂位
type ConfirmBookingRequest struct {
	QuoteID    uuid.UUID   `json:"quote_id" validate:"required"`
	Passengers []Passenger `json:"passengers" validate:"required,min=1,dive"`
	Contact    ContactInfo `json:"contact"`
}

// CancelBookingRequest 取消訂位
type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// BookingEventType 訂位事件類型
type BookingEventType string

const (
	BookingEventConfirmed BookingEventType = "booking.confirmed"
	BookingEventCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent 訂位成立 / 取消後發送到通知隊列的事件
type BookingEvent struct {
	ID         uuid.UUID        `json:"id"`
	Type       BookingEventType `json:"type"`
	Booking    *Booking         `json:"booking"`
	Inventory  *FlightInventory `json:"inventory,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
