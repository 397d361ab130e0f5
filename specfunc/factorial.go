package specfunc

import "sync"

// negativeFactorial is the defined fallback for k < 0: the radial
// prefactor must stay finite while a caller is mid-edit of its quantum
// numbers, so negative input degrades to the multiplicative identity.
const negativeFactorial = 1.0

// FactorialCache memoizes k! in an append-only table. The zero value is
// not ready for use; construct with NewFactorialCache. The cache only
// ever grows, and extending it never recomputes an already-cached entry:
// each new entry is derived from the last one in a single multiplication.
type FactorialCache struct {
	mu    sync.RWMutex
	table []float64
}

// NewFactorialCache returns a cache seeded with 0! = 1.
func NewFactorialCache() *FactorialCache {
	return &FactorialCache{table: []float64{1}}
}

// Factorial returns k! as a float64. Negative k returns 1 (see package
// numeric policy). Results beyond 170! overflow to +Inf, which callers
// treat as a zero-density signal downstream.
func (c *FactorialCache) Factorial(k int) float64 {
	if k < 0 {
		return negativeFactorial
	}

	c.mu.RLock()
	if k < len(c.table) {
		v := c.table[k]
		c.mu.RUnlock()

		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another writer may have extended the table while we waited.
	for len(c.table) <= k {
		next := c.table[len(c.table)-1] * float64(len(c.table))
		c.table = append(c.table, next)
	}

	return c.table[k]
}

// Len reports how many factorials are currently cached (k = 0..Len-1).
// Exposed so tests can observe that lookups never shrink or regrow the
// table.
func (c *FactorialCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.table)
}

// defaultFactorials backs the package-level Factorial helper. Shared and
// append-only; safe for concurrent callers.
var defaultFactorials = NewFactorialCache()

// Factorial returns k! using a shared package-level cache. Callers that
// need isolation (tests, instrumentation) should own a FactorialCache
// instead.
func Factorial(k int) float64 {
	return defaultFactorials.Factorial(k)
}
