package partition

import (
	"math/rand"
	"slices"
)

// Enumerate returns every descending partition of n by plain recursion over
// the largest allowed part. It shares no code with Generate and is meant as
// a reference oracle for tests and the self-check.
func Enumerate(n int) []Partition {
	if n < 1 {
		return nil
	}
	var out []Partition
	var walk func(remaining, maxPart int, prefix Partition)
	walk = func(remaining, maxPart int, prefix Partition) {
		if remaining == 0 {
			out = append(out, prefix.Clone())
			return
		}
		if maxPart > remaining {
			maxPart = remaining
		}
		for part := maxPart; part >= 1; part-- {
			walk(remaining-part, part, append(prefix, part))
		}
	}
	walk(n, n, make(Partition, 0, n))
	return out
}

// Count returns p(n), the number of partitions of n, using the classic
// coin-change recurrence.
func Count(n int) int {
	if n < 0 {
		return 0
	}
	ways := make([]int, n+1)
	ways[0] = 1
	for part := 1; part <= n; part++ {
		for total := part; total <= n; total++ {
			ways[total] += ways[total-part]
		}
	}
	return ways[n]
}

// RandomPartition draws random pile sizes until they total n and returns
// them sorted in descending order. The distribution is not uniform over
// partitions; it only has to reach every partition with non-zero chance.
func RandomPartition(rng *rand.Rand, n int) Partition {
	if n < 1 {
		return nil
	}
	var piles Partition
	for total := 0; total < n; {
		pile := 1 + rng.Intn(n-total)
		piles = append(piles, pile)
		total += pile
	}
	slices.SortFunc(piles, func(a, b int) int { return b - a })
	return piles
}
