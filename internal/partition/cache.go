package partition

import (
	"fmt"

	apperrors "github.com/agbru/pilegame/internal/errors"
)

// Cache holds the generated partitions for coin counts 2..max-1, the inputs
// Generate needs for every later coin count. Entries are written once, in
// strictly increasing coin order, and never mutated afterwards.
//
// A Cache is not safe for concurrent Put; concurrent Get is safe once the
// entries being read have been written.
type Cache struct {
	max     int
	highest int
	entries map[int][]StartPos
}

// NewCache returns an empty cache for a run exploring up to maxCoins.
func NewCache(maxCoins int) *Cache {
	return &Cache{
		max:     maxCoins,
		highest: 1,
		entries: make(map[int][]StartPos, maxCoins),
	}
}

// Max returns the highest coin count the cache was sized for.
func (c *Cache) Max() int { return c.max }

// Highest returns the largest coin count whose entry is present, or 1 when
// the cache is empty (coin count 1 is never stored).
func (c *Cache) Highest() int { return c.highest }

// Len returns the number of stored coin counts.
func (c *Cache) Len() int { return len(c.entries) }

// Get returns the stored partitions for coins.
func (c *Cache) Get(coins int) ([]StartPos, bool) {
	positions, ok := c.entries[coins]
	return positions, ok
}

// Put stores the partitions of coins. Coin counts must arrive in increasing
// order starting at 2, and only counts below Max are kept.
func (c *Cache) Put(coins int, positions []StartPos) error {
	if coins < 2 || coins >= c.max {
		return fmt.Errorf("cache put: coin count %d outside cached range 2..%d", coins, c.max-1)
	}
	if coins != c.highest+1 {
		return &apperrors.PreconditionError{Operation: "cache.Put", Coins: coins, Missing: c.highest + 1}
	}
	c.entries[coins] = positions
	c.highest = coins
	return nil
}
