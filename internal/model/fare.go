package model

import (
	"time"

	"flight-fare-ledger/internal/fare"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FareRecord 票價層級：價格組成與座位計數
type FareRecord struct {
	ID          uuid.UUID `json:"id" db:"id"`
	InventoryID uuid.UUID `json:"inventory_id" db:"inventory_id"`
	fare.Components
	GrossTotal     decimal.Decimal `json:"gross_total" db:"gross_total"`
	GrandTotal     decimal.Decimal `json:"grand_total" db:"grand_total"`
	TotalSeats     int             `json:"total_seats" db:"total_seats"`
	AvailableSeats int             `json:"available_seats" db:"available_seats"`
	Version        int64           `json:"version" db:"version"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// SoldSeats 已售（或已扣除）座位數
func (f *FareRecord) SoldSeats() int {
	return f.TotalSeats - f.AvailableSeats
}

func (f *FareRecord) IsSoldOut() bool {
	return f.AvailableSeats == 0
}

// SeatsValid 檢查 0 <= available <= total
func (f *FareRecord) SeatsValid() bool {
	return f.AvailableSeats >= 0 && f.AvailableSeats <= f.TotalSeats
}

// Availability 由權威紀錄產生可售快照
func (f *FareRecord) Availability(source string) *FareAvailability {
	return &FareAvailability{
		FareID:         f.ID,
		TotalSeats:     f.TotalSeats,
		AvailableSeats: f.AvailableSeats,
		SoldSeats:      f.SoldSeats(),
		SoldOut:        f.IsSoldOut(),
		Version:        f.Version,
		Source:         source,
	}
}

// FareResponse 票價層級響應
type FareResponse struct {
	*FareRecord
	SoldSeats int  `json:"sold_seats"`
	SoldOut   bool `json:"sold_out"`
}

func (f *FareRecord) ToResponse() *FareResponse {
	return &FareResponse{FareRecord: f, SoldSeats: f.SoldSeats(), SoldOut: f.IsSoldOut()}
}

const (
	AvailabilitySourceCache = "cache"
	AvailabilitySourceStore = "store"
)

// FareAvailability 座位可售快照
type FareAvailability struct {
	FareID         uuid.UUID `json:"fare_id"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	SoldSeats      int       `json:"sold_seats"`
	SoldOut        bool      `json:"sold_out"`
	Version        int64     `json:"version"`
	Source         string    `json:"source"`
}

const (
	// MaxSeatsPerRequest 單次新增 / 扣除座位上限，與 validate tag 的 lte 一致
	MaxSeatsPerRequest = 100000
	// MaxTierSeats 單一票價層級的總座位上限
	MaxTierSeats = 1000000
)

// AddSeatsRequest 在航班下新增票價層級
type AddSeatsRequest struct {
	Seats int `json:"seats" validate:"gt=0,lte=100000"`
	fare.Components
}

// SeatAdjustRequest 增加 / 扣除座位
type SeatAdjustRequest struct {
	Seats int `json:"seats" validate:"gt=0,lte=100000"`
}

// UpdateMarkupRequest 未提供的欄位保留原值
type UpdateMarkupRequest struct {
	InfantFare *decimal.Decimal `json:"infant_fare"`
	Markup1    *decimal.Decimal `json:"markup1"`
	Markup2    *decimal.Decimal `json:"markup2"`
}

// MarkupUpdateResult Changed 為 false 表示與現值相同，未寫入
type MarkupUpdateResult struct {
	Fare    *FareResponse `json:"fare"`
	Changed bool          `json:"changed"`
}
