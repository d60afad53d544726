package model

import (
	"time"

	"github.com/google/uuid"
)

// FlightInventory 航班庫存：一個航段加上其下所有票價層級
type FlightInventory struct {
	ID                uuid.UUID     `json:"id" db:"id"`
	FromAirport       string        `json:"from_airport" db:"from_airport"`
	ToAirport         string        `json:"to_airport" db:"to_airport"`
	Airline           string        `json:"airline" db:"airline"`
	FlightNumber      string        `json:"flight_number" db:"flight_number"`
	PNR               string        `json:"pnr" db:"pnr"`
	DepartureAt       time.Time     `json:"departure_at" db:"departure_at"`
	ArrivalAt         time.Time     `json:"arrival_at" db:"arrival_at"`
	DepartureTerminal string        `json:"departure_terminal" db:"departure_terminal"`
	ArrivalTerminal   string        `json:"arrival_terminal" db:"arrival_terminal"`
	Enabled           bool          `json:"enabled" db:"enabled"`
	TotalSeats        int           `json:"total_seats"`
	AvailableSeats    int           `json:"available_seats"`
	Fares             []*FareRecord `json:"fares,omitempty"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" db:"updated_at"`
}

// DepartureDate 出發日（UTC，YYYY-MM-DD），報價時需與請求一致
func (i *FlightInventory) DepartureDate() string {
	return i.DepartureAt.UTC().Format(DateLayout)
}

// SoldSeats 所有票價層級已售座位總和
func (i *FlightInventory) SoldSeats() int {
	return i.TotalSeats - i.AvailableSeats
}

const DateLayout = "2006-01-02"

// CreateInventoryRequest 建立航班庫存請求
type CreateInventoryRequest struct {
	FromAirport       string    `json:"from_airport" validate:"required,len=3,alpha,uppercase"`
	ToAirport         string    `json:"to_airport" validate:"required,len=3,alpha,uppercase,nefield=FromAirport"`
	Airline           string    `json:"airline" validate:"required,max=64"`
	FlightNumber      string    `json:"flight_number" validate:"required,alphanum,max=10"`
	PNR               string    `json:"pnr" validate:"required,alphanum,max=10"`
	DepartureAt       time.Time `json:"departure_at" validate:"required"`
	ArrivalAt         time.Time `json:"arrival_at" validate:"required,gtefield=DepartureAt"`
	DepartureTerminal string    `json:"departure_terminal" validate:"omitempty,max=10"`
	ArrivalTerminal   string    `json:"arrival_terminal" validate:"omitempty,max=10"`
}

// SearchInventoryRequest 依航段與出發日搜尋
type SearchInventoryRequest struct {
	From string `form:"from" json:"from" validate:"required,len=3,alpha,uppercase"`
	To   string `form:"to" json:"to" validate:"required,len=3,alpha,uppercase"`
	Date string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
}

// ToggleEnabledRequest 啟用 / 停用航班
type ToggleEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}
