package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"flight-fare-ledger/internal/model"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestQuoteRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)}
	repo := NewQuoteRepository(clock.Now)

	q := &model.Quote{ID: uuid.New(), SeatsRequired: 2}
	require.NoError(t, repo.Save(ctx, q, time.Hour))

	got, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SeatsRequired)

	clock.Advance(time.Hour)
	_, err = repo.FindByID(ctx, q.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuoteRepository_SaveSweepsQuotesPastRetention(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)}
	repo := NewQuoteRepository(clock.Now).(*quoteRepo)

	for i := 0; i < 100; i++ {
		require.NoError(t, repo.Save(ctx, &model.Quote{ID: uuid.New()}, 10*time.Minute))
	}
	kept := &model.Quote{ID: uuid.New()}
	require.NoError(t, repo.Save(ctx, kept, time.Hour))
	assert.Len(t, repo.quotes, 101)

	// 從未被查詢的過期報價也會在下一次 Save 時清掉
	clock.Advance(10 * time.Minute)
	require.NoError(t, repo.Save(ctx, &model.Quote{ID: uuid.New()}, time.Hour))
	assert.Len(t, repo.quotes, 2)

	_, err := repo.FindByID(ctx, kept.ID)
	assert.NoError(t, err)
}
