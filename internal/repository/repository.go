package repository

import (
	"errors"
	"fmt"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateReference 訂位代號重複，呼叫端可重新產生後重試
var ErrDuplicateReference = errors.New("booking reference already exists")

// TierCapacityExceeded 加位後會超過單一票價層級上限
func TierCapacityExceeded(total int) error {
	return apperrors.Validation(
		fmt.Sprintf("fare tier already holds %d seats, at most %d allowed", total, model.MaxTierSeats),
		map[string]string{"seats": fmt.Sprintf("must not raise total seats above %d", model.MaxTierSeats)},
	)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}
