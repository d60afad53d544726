package utils

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// GenerateBookingReference Format: BK-YYYYMMDD-HHMMSS-NNNN
func GenerateBookingReference(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("BK-%s-%s-%04d", now.Format("20060102"), now.Format("150405"), rand.IntN(10000))
}
