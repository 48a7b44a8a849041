package cache

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/lanca/lanca-api/internal/models"
	"github.com/lanca/lanca-api/pkg/logger"
)

// ListKey is the cache key of the joined ledger list
const ListKey = "payables:list"

// GenerationKey holds the invalidation counter. It lives in the store so
// every API instance sharing a redis sees the same generation.
const GenerationKey = "payables:list:generation"

// noToken is handed out when the generation cannot be read; Store never
// accepts it
const noToken = math.MaxUint64

// ListCache holds the last full ledger list. Fills are tagged with the
// generation they started in; a fill that started before an invalidation
// is dropped, and an entry written by such a fill is never served.
type ListCache struct {
	store Store
	ttl   time.Duration
}

type listEntry struct {
	Generation uint64               `json:"generation"`
	Payables   []models.PayableView `json:"payables"`
}

// NewListCache creates a list cache over store
func NewListCache(store Store, ttl time.Duration) *ListCache {
	return &ListCache{store: store, ttl: ttl}
}

// Begin returns the token a fill must present to Store
func (c *ListCache) Begin(ctx context.Context) uint64 {
	gen, err := c.generation(ctx)
	if err != nil {
		logger.Warn("ledger cache generation read failed", "error", err)
		return noToken
	}
	return gen
}

// Load returns the cached list, if any. Store errors count as a miss.
func (c *ListCache) Load(ctx context.Context) ([]models.PayableView, bool) {
	data, ok, err := c.store.Get(ctx, ListKey)
	if err != nil {
		logger.Warn("ledger cache read failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var entry listEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		logger.Warn("ledger cache entry corrupted", "error", err)
		_ = c.store.Del(ctx, ListKey)
		return nil, false
	}

	gen, err := c.generation(ctx)
	if err != nil {
		logger.Warn("ledger cache generation read failed", "error", err)
		return nil, false
	}
	if entry.Generation != gen {
		// written by a fill that lost the race with an invalidation
		return nil, false
	}
	return entry.Payables, true
}

// Store saves list if no invalidation happened since token was issued.
// It reports whether the list was kept.
func (c *ListCache) Store(ctx context.Context, token uint64, list []models.PayableView) bool {
	if token == noToken {
		return false
	}
	gen, err := c.generation(ctx)
	if err != nil {
		logger.Warn("ledger cache generation read failed", "error", err)
		return false
	}
	if token != gen {
		logger.Debug("stale ledger cache fill dropped", "token", token, "generation", gen)
		return false
	}

	data, err := json.Marshal(listEntry{Generation: token, Payables: list})
	if err != nil {
		logger.Warn("ledger cache encode failed", "error", err)
		return false
	}
	if err := c.store.Set(ctx, ListKey, data, c.ttl); err != nil {
		logger.Warn("ledger cache write failed", "error", err)
		return false
	}
	return true
}

// Invalidate bumps the generation and drops the cached list
func (c *ListCache) Invalidate(ctx context.Context) {
	if _, err := c.store.Incr(ctx, GenerationKey); err != nil {
		logger.Warn("ledger cache generation bump failed", "error", err)
	}
	if err := c.store.Del(ctx, ListKey); err != nil {
		logger.Warn("ledger cache invalidation failed", "error", err)
	}
}

// Generation returns the current generation, 0 when unreadable
func (c *ListCache) Generation(ctx context.Context) uint64 {
	gen, _ := c.generation(ctx)
	return gen
}

func (c *ListCache) generation(ctx context.Context) (uint64, error) {
	data, ok, err := c.store.Get(ctx, GenerationKey)
	if err != nil || !ok {
		return 0, err
	}
	return strconv.ParseUint(string(data), 10, 64)
}
