package partition

import (
	"strconv"
	"strings"

	apperrors "github.com/agbru/pilegame/internal/errors"
)

// Partition is a non-increasing sequence of positive pile sizes.
type Partition []int

// Sum returns the number of coins in the partition.
func (p Partition) Sum() int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}

// Ones returns how many piles hold exactly one coin.
func (p Partition) Ones() int {
	n := 0
	for _, v := range p {
		if v == 1 {
			n++
		}
	}
	return n
}

// IsDescending reports whether every pile is positive and no pile is larger
// than the one before it.
func (p Partition) IsDescending() bool {
	for i, v := range p {
		if v <= 0 {
			return false
		}
		if i > 0 && v > p[i-1] {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same piles in the same order.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	copy(out, p)
	return out
}

// String renders the partition as "[3,2,1]".
func (p Partition) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Key returns a string usable as a map key for set comparisons.
func (p Partition) Key() string { return p.String() }

// StartPos is a partition annotated with its count of single-coin piles.
// Ones must always equal Position.Ones(); producers keep it in sync so the
// simulator can size its next buffer exactly.
type StartPos struct {
	Position Partition
	Ones     int
}

// NewStartPos annotates p with its ones count.
func NewStartPos(p Partition) StartPos {
	return StartPos{Position: p, Ones: p.Ones()}
}

// Coins returns the number of coins in the position.
func (s StartPos) Coins() int { return s.Position.Sum() }

// Validate checks every StartPos invariant. A coins value <= 0 skips the
// sum check.
func (s StartPos) Validate(coins int) error {
	if len(s.Position) == 0 {
		return apperrors.ValidationError{Field: "position", Message: "must contain at least one pile"}
	}
	if !s.Position.IsDescending() {
		return apperrors.ValidationError{Field: "position", Message: "must be positive and non-increasing, got " + s.Position.String()}
	}
	if coins > 0 && s.Position.Sum() != coins {
		return apperrors.ValidationError{Field: "position", Message: "must sum to " + strconv.Itoa(coins) + ", got " + s.Position.String()}
	}
	if s.Ones != s.Position.Ones() {
		return apperrors.ValidationError{Field: "ones", Message: "cached ones count " + strconv.Itoa(s.Ones) + " does not match " + s.Position.String()}
	}
	return nil
}
