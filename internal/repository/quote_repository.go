package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type QuoteRepository interface {
	// Save 保存報價；retention 過後報價會被移除（查詢回傳 ErrNotFound）
	Save(ctx context.Context, quote *model.Quote, retention time.Duration) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quote, error)
}

type RedisQuoteRepositoryImpl struct {
	client *redis.Client
}

func NewRedisQuoteRepository(client *redis.Client) QuoteRepository {
	return &RedisQuoteRepositoryImpl{
		client: client,
	}
}

func quoteKey(id uuid.UUID) string {
	return fmt.Sprintf("quote:%s", id)
}

func (r *RedisQuoteRepositoryImpl) Save(ctx context.Context, quote *model.Quote, retention time.Duration) error {
	payload, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	return r.client.Set(ctx, quoteKey(quote.ID), payload, retention).Err()
}

func (r *RedisQuoteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	payload, err := r.client.Get(ctx, quoteKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NotFound("quote", id)
	}
	if err != nil {
		return nil, err
	}

	var quote model.Quote
	if err := json.Unmarshal(payload, &quote); err != nil {
		return nil, fmt.Errorf("unmarshal quote %s: %w", id, err)
	}
	return &quote, nil
}
