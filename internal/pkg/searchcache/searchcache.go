package searchcache

import (
	"sync"
	"time"
)

type entry struct {
	value   any
	addedAt time.Time
}

// Cache is a bounded in-process cache for search results, keyed by the
// normalized query string. Entries expire after a fixed TTL; when the
// cache is full the oldest entry is evicted. Owned by the service
// lifecycle, never a package-level map.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func New(ttl time.Duration, maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// NewAt returns a cache with an overridden time source.
func NewAt(ttl time.Duration, maxEntries int, now func() time.Time) *Cache {
	c := New(ttl, maxEntries)
	c.now = now
	return c
}

// Get returns the cached value for a key if present and not expired.
func (s *Cache) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.addedAt) >= s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value, evicting the oldest entry when full.
func (s *Cache) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists && len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}
	s.entries[key] = entry{value: value, addedAt: s.now()}
}

func (s *Cache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		first     = true
	)
	for k, e := range s.entries {
		if first || e.addedAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.addedAt
			first = false
		}
	}
	if !first {
		delete(s.entries, oldestKey)
	}
}

// Len returns the number of live entries, expired ones included.
func (s *Cache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
