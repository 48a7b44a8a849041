package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 5, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))

	now = now.Add(2 * time.Minute)
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "forever", []byte("x"), 0))
	now = now.Add(24 * time.Hour)
	_, ok, _ = s.Get(ctx, "forever")
	assert.True(t, ok)

	require.NoError(t, s.Del(ctx, "forever"))
	_, ok, _ = s.Get(ctx, "forever")
	assert.False(t, ok)
}

func sampleList() []models.PayableView {
	return []models.PayableView{
		{ID: 1, Amount: decimal.RequireFromString("10.50"), SupplierName: "ACME", Status: models.StatusPending},
		{ID: 2, Amount: decimal.RequireFromString("3"), Status: models.StatusPaid},
	}
}

func TestListCache_StoreLoad(t *testing.T) {
	ctx := context.Background()
	c := NewListCache(NewMemoryStore(), time.Minute)

	_, ok := c.Load(ctx)
	assert.False(t, ok)

	token := c.Begin(ctx)
	assert.True(t, c.Store(ctx, token, sampleList()))

	list, ok := c.Load(ctx)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "ACME", list[0].SupplierName)
	assert.True(t, list[0].Amount.Equal(decimal.RequireFromString("10.5")))
}

func TestListCache_StaleFillDropped(t *testing.T) {
	ctx := context.Background()
	c := NewListCache(NewMemoryStore(), time.Minute)

	token := c.Begin(ctx)
	c.Invalidate(ctx)
	assert.False(t, c.Store(ctx, token, sampleList()))
	_, ok := c.Load(ctx)
	assert.False(t, ok)

	assert.True(t, c.Store(ctx, c.Begin(ctx), sampleList()))
	c.Invalidate(ctx)
	_, ok = c.Load(ctx)
	assert.False(t, ok)
	assert.Equal(t, uint64(2), c.Generation(ctx))
}

type failingStore struct{ Store }

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (failingStore) Del(context.Context, string) error { return nil }

func (failingStore) Incr(context.Context, string) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestMemoryStore_Incr(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	n, err := s.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = s.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	got, ok, err := s.Get(ctx, "counter")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", string(got))

	require.NoError(t, s.Set(ctx, "text", []byte("abc"), 0))
	_, err = s.Incr(ctx, "text")
	assert.Error(t, err)
}

func TestListCache_InvalidationSharedAcrossInstances(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore()
	a := NewListCache(shared, time.Minute)
	b := NewListCache(shared, time.Minute)

	token := a.Begin(ctx)
	b.Invalidate(ctx)
	assert.False(t, a.Store(ctx, token, sampleList()), "fill started before another instance's write")
	assert.Equal(t, b.Generation(ctx), a.Generation(ctx))

	require.True(t, a.Store(ctx, a.Begin(ctx), sampleList()))
	list, ok := b.Load(ctx)
	require.True(t, ok)
	assert.Len(t, list, 2)
}

func TestListCache_EntryFromOlderGenerationIsMiss(t *testing.T) {
	ctx := context.Background()
	shared := NewMemoryStore()
	a := NewListCache(shared, time.Minute)
	b := NewListCache(shared, time.Minute)

	// a passed its generation check, then b invalidated before a's write landed
	data, err := json.Marshal(listEntry{Generation: a.Begin(ctx), Payables: sampleList()})
	require.NoError(t, err)
	b.Invalidate(ctx)
	require.NoError(t, shared.Set(ctx, ListKey, data, time.Minute))

	_, ok := a.Load(ctx)
	assert.False(t, ok)
	_, ok = b.Load(ctx)
	assert.False(t, ok)
}

func TestListCache_StoreErrorsAreMisses(t *testing.T) {
	ctx := context.Background()
	c := NewListCache(failingStore{}, time.Minute)

	assert.False(t, c.Store(ctx, c.Begin(ctx), sampleList()))
	_, ok := c.Load(ctx)
	assert.False(t, ok)
}

func TestListCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, ListKey, []byte("{not json"), 0))

	c := NewListCache(store, time.Minute)
	_, ok := c.Load(ctx)
	assert.False(t, ok)
	_, present, _ := store.Get(ctx, ListKey)
	assert.False(t, present)
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "not-a-url")
	assert.Error(t, err)
}
