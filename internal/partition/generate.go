package partition

import (
	apperrors "github.com/agbru/pilegame/internal/errors"
)

// Generate returns every descending partition of coins, each annotated with
// its ones count. The first element is always the single pile [coins].
//
// The cache must already hold the partitions of every coin count in
// 2..coins-1; otherwise a *apperrors.PreconditionError is returned. When
// coins is below cache.Max() and not yet cached, the result is stored for
// the next call; an existing entry is never replaced.
//
// The partitions are built from pair splits [left, right] with left >= right:
// each pair is emitted, then every cached partition of left (except the
// single pile, which is the pair itself) whose smallest pile is >= right is
// extended with right. The >= filter keeps the output descending and free
// of duplicates.
func Generate(coins int, cache *Cache) ([]StartPos, error) {
	if coins < 1 {
		return nil, apperrors.ValidationError{Field: "coins", Message: "must be at least 1"}
	}
	if cache == nil {
		return nil, apperrors.ValidationError{Field: "cache", Message: "must not be nil"}
	}
	if coins > 2 && cache.Highest() < coins-1 {
		return nil, &apperrors.PreconditionError{Operation: "generate", Coins: coins, Missing: cache.Highest() + 1}
	}

	initial := StartPos{Position: Partition{coins}}
	if coins == 1 {
		initial.Ones = 1
		return []StartPos{initial}, nil
	}

	positions := []StartPos{initial}
	for left, right := coins-1, 1; left >= right; left, right = left-1, right+1 {
		pair := StartPos{Position: Partition{left, right}}
		if left == 1 {
			pair.Ones++
		}
		if right == 1 {
			pair.Ones++
		}
		positions = append(positions, pair)

		if left == 1 {
			continue
		}
		cached, ok := cache.Get(left)
		if !ok {
			return nil, &apperrors.PreconditionError{Operation: "generate", Coins: coins, Missing: left}
		}
		for _, sub := range cached[1:] {
			if sub.Position[len(sub.Position)-1] < right {
				continue
			}
			extended := make(Partition, len(sub.Position)+1)
			copy(extended, sub.Position)
			extended[len(sub.Position)] = right
			ones := sub.Ones
			if right == 1 {
				ones++
			}
			positions = append(positions, StartPos{Position: extended, Ones: ones})
		}
	}

	if _, stored := cache.Get(coins); !stored && coins < cache.Max() {
		if err := cache.Put(coins, positions); err != nil {
			return nil, err
		}
	}
	return positions, nil
}
