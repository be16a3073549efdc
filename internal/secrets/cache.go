package secrets

import (
	"context"
	"sync"
	"time"
)

const defaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// CachingGetter memoizes successful lookups of another Getter for a TTL.
// Failed lookups are not cached.
type CachingGetter struct {
	next Getter
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachingGetter wraps next. A zero ttl uses five minutes.
func NewCachingGetter(next Getter, ttl time.Duration) *CachingGetter {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachingGetter{next: next, ttl: ttl, now: time.Now, entries: make(map[string]cacheEntry)}
}

func (c *CachingGetter) GetSecret(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	entry, ok := c.entries[name]
	c.mu.Unlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	value, err := c.next.GetSecret(ctx, name)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.entries[name] = cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return value, nil
}
