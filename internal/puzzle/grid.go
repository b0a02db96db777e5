// Package puzzle implements the 15-puzzle engine: the 4x4 board, the shuffle
// generator, move legality, victory detection and the game session.
// It has no terminal or storage dependencies; drivers read its state and call
// into a Session.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Board dimensions.
const (
	Side  = 4
	Cells = Side * Side
)

// Cell is a tile value in [1,15], or Empty.
type Cell int

// Empty marks the single free cell.
const Empty Cell = 0

// ErrInvalidBoard is returned when a board breaks the tile invariants.
var ErrInvalidBoard = errors.New("puzzle: invalid board")

// Board holds the 16 cells in row-major order.
// It is an array, so assignment copies it.
type Board [Cells]Cell

// Solved returns the canonical solved board [1..15, Empty].
func Solved() Board {
	var b Board
	for i := 0; i < Cells-1; i++ {
		b[i] = Cell(i + 1)
	}
	b[Cells-1] = Empty
	return b
}

// Row returns the board row of index i.
func Row(i int) int {
	return i / Side
}

// Col returns the board column of index i.
func Col(i int) int {
	return i % Side
}

// Index converts a row/column pair to a board index.
func Index(row, col int) int {
	return row*Side + col
}

// InBounds reports whether i is a valid board index.
func InBounds(i int) bool {
	return i >= 0 && i < Cells
}

// Swap exchanges the cells at i and j. Indices are not validated.
func (b *Board) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

// Find returns the index holding v, or -1.
func (b Board) Find(v Cell) int {
	for i, c := range b {
		if c == v {
			return i
		}
	}
	return -1
}

// IsAdjacent reports whether j is directly above, below, left or right of i.
// Horizontal neighbours must share a row, so 3 and 4 are not adjacent.
func IsAdjacent(i, j int) bool {
	d := abs(i - j)
	if d == Side {
		return true
	}
	return d == 1 && Row(i) == Row(j)
}

// IsAdjacentNaive reports whether the index difference is 1 or 4.
// It ignores row boundaries: the last cell of one row and the first cell of
// the next are treated as neighbours.
func IsAdjacentNaive(i, j int) bool {
	d := abs(i - j)
	return d == 1 || d == Side
}

// Validate checks that the board holds exactly one Empty and each of 1..15 once.
func (b Board) Validate() error {
	var seen [Cells]bool
	for i, c := range b {
		if c < Empty || int(c) >= Cells {
			return fmt.Errorf("%w: value %d at index %d out of range", ErrInvalidBoard, c, i)
		}
		if seen[c] {
			if c == Empty {
				return fmt.Errorf("%w: more than one empty cell", ErrInvalidBoard)
			}
			return fmt.Errorf("%w: duplicate tile %d", ErrInvalidBoard, c)
		}
		seen[c] = true
	}
	return nil
}

// String encodes the board as space-separated values with "_" for Empty.
func (b Board) String() string {
	parts := make([]string, Cells)
	for i, c := range b {
		if c == Empty {
			parts[i] = "_"
			continue
		}
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, " ")
}

// ParseBoard decodes the format produced by Board.String and validates it.
func ParseBoard(s string) (Board, error) {
	var b Board
	fields := strings.Fields(s)
	if len(fields) != Cells {
		return b, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidBoard, Cells, len(fields))
	}
	for i, f := range fields {
		if f == "_" {
			b[i] = Empty
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil || v < 1 {
			return b, fmt.Errorf("%w: bad cell %q at index %d", ErrInvalidBoard, f, i)
		}
		b[i] = Cell(v)
	}
	if err := b.Validate(); err != nil {
		return b, err
	}
	return b, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
