package memory

import (
	"context"
	"sync"
	"time"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/repository"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
)

type storedQuote struct {
	quote    model.Quote
	deadline time.Time
}

// quoteSweepInterval Save 時最多每隔這段時間清掉過了保留期的報價
const quoteSweepInterval = time.Minute

type quoteRepo struct {
	mu        sync.Mutex
	quotes    map[uuid.UUID]storedQuote
	now       func() time.Time
	nextSweep time.Time
}

// NewQuoteRepository now 可為 nil，預設使用 time.Now
func NewQuoteRepository(now func() time.Time) repository.QuoteRepository {
	if now == nil {
		now = time.Now
	}
	return &quoteRepo{
		quotes: make(map[uuid.UUID]storedQuote),
		now:    now,
	}
}

func (r *quoteRepo) Save(ctx context.Context, quote *model.Quote, retention time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !now.Before(r.nextSweep) {
		r.sweep(now)
	}
	r.quotes[quote.ID] = storedQuote{quote: *quote, deadline: now.Add(retention)}
	return nil
}

// sweep 需持有 r.mu
func (r *quoteRepo) sweep(now time.Time) {
	for id, stored := range r.quotes {
		if !now.Before(stored.deadline) {
			delete(r.quotes, id)
		}
	}
	r.nextSweep = now.Add(quoteSweepInterval)
}

func (r *quoteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.quotes[id]
	if !ok {
		return nil, apperrors.NotFound("quote", id)
	}
	if !r.now().Before(stored.deadline) {
		delete(r.quotes, id)
		return nil, apperrors.NotFound("quote", id)
	}
	q := stored.quote
	return &q, nil
}
