package game

import (
	"fmt"

	apperrors "github.com/agbru/pilegame/internal/errors"
	"github.com/agbru/pilegame/internal/partition"
)

// DefaultMaxMoves bounds a single Play call. Any position of N coins
// repeats within p(N) moves, so for the coin counts this program handles the
// ceiling is never reached unless the simulator itself is broken.
const DefaultMaxMoves = 1 << 22

// Result is the outcome of one game.
type Result struct {
	// Score is the number of moves made until a position repeated,
	// including the move that produced the repeat.
	Score int
	// Loop is the number of moves between the first occurrence of the
	// repeated position and its recurrence.
	Loop int
}

// Option configures Play.
type Option func(*settings)

type settings struct {
	maxMoves int
}

// WithMaxMoves overrides DefaultMaxMoves. Values <= 0 keep the default.
func WithMaxMoves(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxMoves = n
		}
	}
}

// Play runs the game from start until a position repeats.
//
// start must satisfy partition.StartPos invariants; otherwise a
// apperrors.ValidationError is returned. Exceeding the move ceiling returns a
// *apperrors.InvariantError, since the finite state space makes that
// unreachable for a correct simulator.
func Play(start partition.StartPos, opts ...Option) (Result, error) {
	cfg := settings{maxMoves: DefaultMaxMoves}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := start.Validate(0); err != nil {
		return Result{}, err
	}

	current := start
	history := []partition.Partition{start.Position}
	for score := 1; score <= cfg.maxMoves; score++ {
		current = Step(current)
		if i := lastIndexOf(history, current.Position); i >= 0 {
			return Result{Score: score, Loop: score - i}, nil
		}
		history = append(history, current.Position)
	}

	return Result{}, &apperrors.InvariantError{
		Operation: "play",
		Detail:    fmt.Sprintf("no repeated position after %d moves from %s", cfg.maxMoves, start.Position),
	}
}

// Step performs one move on pos and returns the next annotated position.
//
// The next position has exactly len(pos) - ones + 1 piles: every pile of one
// coin disappears and one new pile of len(pos) coins is added. Survivors keep
// their descending order; the new pile goes before the first survivor that is
// <= its size, or last when none is.
func Step(pos partition.StartPos) partition.StartPos {
	piles := pos.Position
	newPile := len(piles)
	next := make(partition.Partition, len(piles)-pos.Ones+1)

	ones := 0
	if newPile == 1 {
		ones++
	}

	idx := 0
	inserted := false
	for _, pile := range piles {
		remaining := pile - 1
		if remaining == 0 {
			continue
		}
		if remaining == 1 {
			ones++
		}
		if !inserted && remaining <= newPile {
			next[idx] = newPile
			idx++
			inserted = true
		}
		next[idx] = remaining
		idx++
	}
	if !inserted {
		next[idx] = newPile
	}

	return partition.StartPos{Position: next, Ones: ones}
}

// lastIndexOf scans history from the most recent position backwards and
// returns the index of the first exact match, or -1.
func lastIndexOf(history []partition.Partition, p partition.Partition) int {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Equal(p) {
			return i
		}
	}
	return -1
}
