package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// FareAvailabilityCache 票價層級座位數的 Redis 鏡像，權威資料仍在 repository
type FareAvailabilityCache interface {
	// 預熱 / 更新：只有版本較新的快照會覆蓋 (使用Lua腳本確保原子性)
	Warm(ctx context.Context, fare *model.FareRecord) error
	// 獲取：未命中時回傳 apperrors.ErrNotFound
	Get(ctx context.Context, fareID uuid.UUID) (*model.FareAvailability, error)
	// 失效：刪除計數但保留版本墓碑，較舊的快照之後無法再寫入
	Invalidate(ctx context.Context, fareID uuid.UUID, version int64) error
}

type RedisFareAvailabilityCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFareAvailabilityCache(client *redis.Client, ttl time.Duration) FareAvailabilityCache {
	return &RedisFareAvailabilityCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

// 可售資訊 key
func (c *RedisFareAvailabilityCacheImpl) getInfoKey(fareID uuid.UUID) string {
	return fmt.Sprintf("fare:%s:availability", fareID)
}

/*
*

	以版本號做條件寫入，避免並行更新時舊快照覆蓋新快照
	1. 讀取目前版本
	2. 版本較舊則略過；同版本只能填回墓碑
	3. 寫入計數並重設 TTL
*/
var warmScript = redis.NewScript(`
	local key = KEYS[1]
	local version = tonumber(ARGV[1])
	local ttl = tonumber(ARGV[4])

	local current = redis.call('HGET', key, 'version')
	if current then
		local cv = tonumber(current)
		if cv > version then
			return 0
		end
		if cv == version and redis.call('HEXISTS', key, 'available') == 1 then
			return 0
		end
	end

	redis.call('HSET', key, 'version', ARGV[1], 'total', ARGV[2], 'available', ARGV[3])
	if ttl > 0 then
		redis.call('EXPIRE', key, ttl)
	end
	return 1
`)

// 失效時只留下版本號 (取較大者) 作為墓碑
var invalidateScript = redis.NewScript(`
	local key = KEYS[1]
	local version = ARGV[1]
	local ttl = tonumber(ARGV[2])

	local current = redis.call('HGET', key, 'version')
	if current and tonumber(current) > tonumber(version) then
		version = current
	end

	redis.call('DEL', key)
	redis.call('HSET', key, 'version', version)
	if ttl > 0 then
		redis.call('EXPIRE', key, ttl)
	end
	return 1
`)

func (c *RedisFareAvailabilityCacheImpl) Warm(ctx context.Context, fare *model.FareRecord) error {
	key := c.getInfoKey(fare.ID)
	ttlSeconds := int64(c.ttl / time.Second)
	return warmScript.Run(ctx, c.client, []string{key},
		fare.Version, fare.TotalSeats, fare.AvailableSeats, ttlSeconds,
	).Err()
}

func (c *RedisFareAvailabilityCacheImpl) Get(ctx context.Context, fareID uuid.UUID) (*model.FareAvailability, error) {
	key := c.getInfoKey(fareID)
	result, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	// key 不存在或只剩墓碑
	if _, ok := result["available"]; !ok {
		return nil, apperrors.NotFound("cached availability", fareID)
	}

	total, err := strconv.Atoi(result["total"])
	if err != nil {
		return nil, fmt.Errorf("invalid total: %w", err)
	}
	available, err := strconv.Atoi(result["available"])
	if err != nil {
		return nil, fmt.Errorf("invalid available: %w", err)
	}
	version, err := strconv.ParseInt(result["version"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid version: %w", err)
	}

	return &model.FareAvailability{
		FareID:         fareID,
		TotalSeats:     total,
		AvailableSeats: available,
		SoldSeats:      total - available,
		SoldOut:        available == 0,
		Version:        version,
		Source:         model.AvailabilitySourceCache,
	}, nil
}

func (c *RedisFareAvailabilityCacheImpl) Invalidate(ctx context.Context, fareID uuid.UUID, version int64) error {
	ttlSeconds := int64(c.ttl / time.Second)
	err := invalidateScript.Run(ctx, c.client, []string{c.getInfoKey(fareID)}, version, ttlSeconds).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
