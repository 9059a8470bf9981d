// ABOUTME: Source Cache holding the most recently observed feed payload
// ABOUTME: In-process copy over a durable store; last write wins, readers never mutate

package feedcache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"notegrab-api/core/domain"
	"notegrab-api/core/errors"
	"notegrab-api/core/interfaces"
)

// Durable store layout. Both keys are written, read and cleared together.
const (
	keyPayload   = "cachedFeedData"
	keyTimestamp = "feedDataTimestamp"
)

// warmTimeout bounds the background load triggered by a GetSync miss
const warmTimeout = 5 * time.Second

// Cache holds the latest feed payload. At most one payload is held at a
// time; any newer payload overwrites the previous one without merging.
type Cache struct {
	store  interfaces.Cache
	logger interfaces.Logger

	mu         sync.RWMutex
	current    *domain.FeedPayload
	capturedAt time.Time

	warming sync.Mutex // serializes background warm-up loads
}

// New creates a feed cache over the given durable store
func New(store interfaces.Cache, logger interfaces.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logger,
	}
}

// Put stores payload as current and persists it with a capture
// timestamp. Unusable payloads (unparseable or empty item list) are
// rejected so readers never see them.
func (c *Cache) Put(ctx context.Context, raw []byte) error {
	payload, err := domain.ParseFeedPayload(raw)
	if err != nil {
		return &errors.ValidationError{Field: "payload", Message: "not a valid feed payload"}
	}
	if !payload.HasItems() {
		return &errors.ValidationError{Field: "payload", Message: "payload contains no items"}
	}

	now := time.Now()

	c.mu.Lock()
	c.current = payload
	c.capturedAt = now
	c.mu.Unlock()

	if err := c.store.Set(ctx, keyPayload, raw, 0); err != nil {
		return errors.WrapError(err, "failed to persist feed payload")
	}
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	if err := c.store.Set(ctx, keyTimestamp, []byte(ts), 0); err != nil {
		return errors.WrapError(err, "failed to persist feed timestamp")
	}

	return nil
}

// GetSync returns the in-process payload immediately, without touching
// the durable store. On a miss it kicks off a background load so the
// next call can be served; the current call still returns nil.
func (c *Cache) GetSync() *domain.FeedPayload {
	c.mu.RLock()
	payload := c.current
	c.mu.RUnlock()

	if payload != nil {
		return payload
	}

	go c.warm()
	return nil
}

// GetAsync loads the payload from the durable store, refreshes the
// in-process copy and returns it. A missing or unusable stored payload
// returns nil.
func (c *Cache) GetAsync(ctx context.Context) *domain.FeedPayload {
	raw, err := c.store.Get(ctx, keyPayload)
	if err != nil || raw == nil {
		return nil
	}

	payload, err := domain.ParseFeedPayload(raw)
	if err != nil || !payload.HasItems() {
		return nil
	}

	capturedAt := c.loadTimestamp(ctx)

	c.mu.Lock()
	c.current = payload
	c.capturedAt = capturedAt
	c.mu.Unlock()

	return payload
}

// Clear removes both the in-process and durable copies
func (c *Cache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.current = nil
	c.capturedAt = time.Time{}
	c.mu.Unlock()

	if err := c.store.Delete(ctx, keyPayload); err != nil {
		return errors.WrapError(err, "failed to clear feed payload")
	}
	if err := c.store.Delete(ctx, keyTimestamp); err != nil {
		return errors.WrapError(err, "failed to clear feed timestamp")
	}
	return nil
}

// CapturedAt returns when the current payload was captured, or the zero
// time when the cache is empty.
func (c *Cache) CapturedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.capturedAt
}

// warm loads the durable copy into the in-process cache.
// Serialized so a burst of GetSync misses triggers one load, not many.
func (c *Cache) warm() {
	if !c.warming.TryLock() {
		return
	}
	defer c.warming.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
	defer cancel()

	if payload := c.GetAsync(ctx); payload == nil {
		if c.logger != nil {
			c.logger.Debug("feed cache warm-up found nothing", nil)
		}
	}
}

// loadTimestamp reads the capture timestamp, zero time on any problem
func (c *Cache) loadTimestamp(ctx context.Context) time.Time {
	raw, err := c.store.Get(ctx, keyTimestamp)
	if err != nil || raw == nil {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
