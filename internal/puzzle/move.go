package puzzle

import (
	"errors"
	"fmt"
)

// AdjacencyRule decides which cells may slide into the free cell.
type AdjacencyRule string

const (
	// RowAware only allows horizontal moves within the same row.
	RowAware AdjacencyRule = "row-aware"
	// Naive accepts any index difference of 1 or 4, including across row ends.
	Naive AdjacencyRule = "naive"
)

// ErrUnknownRule is returned by ParseRule for unrecognised names.
var ErrUnknownRule = errors.New("puzzle: unknown adjacency rule")

// ParseRule converts a rule name to an AdjacencyRule.
// An empty name selects RowAware.
func ParseRule(s string) (AdjacencyRule, error) {
	switch AdjacencyRule(s) {
	case RowAware, "":
		return RowAware, nil
	case Naive:
		return Naive, nil
	default:
		return RowAware, fmt.Errorf("%w: %q", ErrUnknownRule, s)
	}
}

// Adjacent applies the rule to a pair of indices.
func (r AdjacencyRule) Adjacent(i, j int) bool {
	if r == Naive {
		return IsAdjacentNaive(i, j)
	}
	return IsAdjacent(i, j)
}

// AttemptMove slides the tile at target into the free cell if the rule allows it.
// On success it returns the new free index (the old target) and true.
// Otherwise the board is untouched and it returns free, false.
func AttemptMove(b *Board, free, target int, rule AdjacencyRule) (int, bool) {
	if !InBounds(target) || !InBounds(free) {
		return free, false
	}
	if !rule.Adjacent(target, free) {
		return free, false
	}
	b.Swap(target, free)
	return target, true
}
