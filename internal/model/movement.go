package model

import (
	"time"

	"github.com/google/uuid"
)

// MovementKind 座位異動類型
type MovementKind string

const (
	MovementAdd    MovementKind = "add"
	MovementTopUp  MovementKind = "top_up"
	MovementMinus  MovementKind = "minus"
	MovementBook   MovementKind = "book"
	MovementCancel MovementKind = "cancel"
)

// SeatMovement 座位異動日誌，與計數變更在同一個原子單位寫入
type SeatMovement struct {
	ID             int64        `json:"id" db:"id"`
	FareID         uuid.UUID    `json:"fare_id" db:"fare_id"`
	Kind           MovementKind `json:"kind" db:"kind"`
	DeltaTotal     int          `json:"delta_total" db:"delta_total"`
	DeltaAvailable int          `json:"delta_available" db:"delta_available"`
	TotalAfter     int          `json:"total_after" db:"total_after"`
	AvailableAfter int          `json:"available_after" db:"available_after"`
	BookingID      *uuid.UUID   `json:"booking_id,omitempty" db:"booking_id"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
}

// NewMovement 依異動後的票價紀錄建立日誌
func NewMovement(f *FareRecord, kind MovementKind, deltaTotal, deltaAvailable int, bookingID *uuid.UUID) *SeatMovement {
	return &SeatMovement{
		FareID:         f.ID,
		Kind:           kind,
		DeltaTotal:     deltaTotal,
		DeltaAvailable: deltaAvailable,
		TotalAfter:     f.TotalSeats,
		AvailableAfter: f.AvailableSeats,
		BookingID:      bookingID,
		CreatedAt:      f.UpdatedAt,
	}
}
