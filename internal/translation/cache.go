package translation

import "sync"

type cacheKey struct {
	calculator string
	locale     string
}

// Cache memoizes successful overlay loads per (calculator, locale) pair. It
// is the engine's only shared mutable state and never affects merge
// correctness: a hit and a miss yield identical results because loads are
// pure. Owned by whoever constructs the loader; there is no package-level
// instance.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*LoadResult
}

// NewCache constructs an empty translation cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*LoadResult)}
}

// Get returns the memoized result for a pair if present.
func (c *Cache) Get(calculatorID, locale string) (*LoadResult, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.entries[cacheKey{calculator: calculatorID, locale: locale}]
	return result, ok
}

// Put memoizes a result. Concurrent first-loads of the same key may race;
// last write wins, which is harmless because both writers computed identical
// entries.
func (c *Cache) Put(calculatorID, locale string, result *LoadResult) {
	if c == nil || result == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{calculator: calculatorID, locale: locale}] = result
}

// Invalidate drops one memoized pair.
func (c *Cache) Invalidate(calculatorID, locale string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey{calculator: calculatorID, locale: locale})
}

// InvalidateCalculator drops every locale of one calculator.
func (c *Cache) InvalidateCalculator(calculatorID string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.calculator == calculatorID {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll resets the cache. Readers that started before the reset may
// observe a stale value once; subsequent reads re-populate correctly.
func (c *Cache) InvalidateAll() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*LoadResult)
}

// Len reports how many pairs are memoized.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
