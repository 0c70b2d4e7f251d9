package cache

import (
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/LucaDevAr/futcuervo-backend/internal/pkg/util"
)

// Entry wraps every cached value. CacheDay is the calendar day the
// value was computed on; an entry whose day no longer matches "today"
// is a miss no matter how much physical TTL remains.
type Entry struct {
	Payload  json.RawMessage `json:"payload"`
	CachedAt time.Time       `json:"cachedAt"`
	CacheDay string          `json:"cacheDay"`
}

// Cache is the read-through cache shared by every cached resource.
// Backend failures never surface: reads degrade to a miss, writes and
// invalidations to a logged no-op.
type Cache struct {
	store Store
	clock *util.DayClock
}

func New(store Store, clock *util.DayClock) *Cache {
	return &Cache{
		store: store,
		clock: clock,
	}
}

// Key builds the namespaced cache key for an entity instance.
func (s *Cache) Key(entityType, identifier string) string {
	return entityType + ":" + identifier
}

// GetOrCompute returns the cached payload if present and same-day
// fresh, otherwise runs compute, stores the result and returns it. The
// bool reports whether the value came from the cache. ttl <= 0 means
// "until next local midnight".
func GetOrCompute[T any](ctx context.Context, c *Cache, entityType, identifier string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, bool, error) {
	var zero T
	key := c.Key(entityType, identifier)

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "Cache get failed, treating as miss", "key", key, "err", err)
		raw = ""
	}

	if raw != "" {
		var entry Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.WarnContext(ctx, "Cache entry corrupt, treating as miss", "key", key, "err", err)
		} else if entry.CacheDay != "" && !c.clock.IsFresh(entry.CacheDay) {
			// Day rolled over; drop the entry so the physical TTL cannot
			// serve yesterday's data.
			if err := c.store.Delete(ctx, key); err != nil {
				log.WarnContext(ctx, "Cache delete of stale entry failed", "key", key, "err", err)
			}
		} else {
			var payload T
			if err := json.Unmarshal(entry.Payload, &payload); err != nil {
				log.WarnContext(ctx, "Cache payload corrupt, treating as miss", "key", key, "err", err)
			} else {
				return payload, true, nil
			}
		}
	}

	payload, err := compute(ctx)
	if err != nil {
		return zero, false, err
	}

	c.set(ctx, key, payload, ttl)
	return payload, false, nil
}

func (s *Cache) set(ctx context.Context, key string, payload any, ttl time.Duration) {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.WarnContext(ctx, "Cache payload marshal failed, skipping set", "key", key, "err", err)
		return
	}

	entry := Entry{
		Payload:  raw,
		CachedAt: s.clock.Now(),
		CacheDay: s.clock.TodayStamp(),
	}

	buf, err := json.Marshal(entry)
	if err != nil {
		log.WarnContext(ctx, "Cache entry marshal failed, skipping set", "key", key, "err", err)
		return
	}

	if ttl <= 0 {
		ttl = time.Duration(s.clock.SecondsUntilMidnight()) * time.Second
	}

	if err := s.store.Set(ctx, key, string(buf), ttl); err != nil {
		log.WarnContext(ctx, "Cache set failed", "key", key, "err", err)
	}
}

// Invalidate removes one cached entry so the next read recomputes.
func (s *Cache) Invalidate(ctx context.Context, entityType, identifier string) {
	key := s.Key(entityType, identifier)
	if err := s.store.Delete(ctx, key); err != nil {
		log.WarnContext(ctx, "Cache invalidate failed", "key", key, "err", err)
	}
}

// InvalidateByPrefix removes every entry of an entity type whose
// identifier starts with the given prefix.
func (s *Cache) InvalidateByPrefix(ctx context.Context, entityType, identifierPrefix string) {
	prefix := s.Key(entityType, identifierPrefix)
	if _, err := s.store.DeleteByPrefix(ctx, prefix); err != nil {
		log.WarnContext(ctx, "Cache prefix invalidate failed", "prefix", prefix, "err", err)
	}
}

// ClearAll removes every entry of an entity type.
func (s *Cache) ClearAll(ctx context.Context, entityType string) {
	if _, err := s.store.DeleteByPrefix(ctx, entityType+":"); err != nil {
		log.WarnContext(ctx, "Cache clear failed", "entity", entityType, "err", err)
	}
}
