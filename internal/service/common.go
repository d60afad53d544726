package service

import (
	"context"
	"time"

	"flight-fare-ledger/internal/cache"
	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/pkg/logger"

	"go.uber.org/zap"
)

// Clock 可注入的時間來源，測試時用固定時間
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// syncAvailability 交易提交後更新 Redis 鏡像；失敗時改寫成版本墓碑讓下次讀取回源
func syncAvailability(ctx context.Context, mirror cache.FareAvailabilityCache, fare *model.FareRecord) {
	if mirror == nil || fare == nil {
		return
	}
	log := logger.WithComponent("service").With(zap.String("fare_id", fare.ID.String()))
	if err := mirror.Warm(ctx, fare); err != nil {
		log.Warn("warm availability cache failed", zap.Error(err))
		if err := mirror.Invalidate(ctx, fare.ID, fare.Version); err != nil {
			log.Error("invalidate availability cache failed", zap.Error(err))
		}
	}
}

// detached 提交後的副作用不跟隨請求取消
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
}
