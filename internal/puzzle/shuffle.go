package puzzle

import "math/rand"

// Shuffle generates a board with the free cell at index 0 and the 15 tiles in
// an order whose inversion count is odd.
func Shuffle(rng *rand.Rand) Board {
	var tiles [Cells - 1]Cell
	for i := range tiles {
		tiles[i] = Cell(i + 1)
	}

	// Fisher-Yates
	for i := len(tiles) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}

	if Inversions(tiles[:])%2 == 0 {
		tiles[0], tiles[1] = tiles[1], tiles[0]
	}

	var b Board
	b[0] = Empty
	copy(b[1:], tiles[:])
	return b
}

// Inversions counts pairs i < j with values[i] > values[j].
// Empty cells are skipped.
func Inversions(values []Cell) int {
	count := 0
	for i := 0; i < len(values); i++ {
		if values[i] == Empty {
			continue
		}
		for j := i + 1; j < len(values); j++ {
			if values[j] != Empty && values[i] > values[j] {
				count++
			}
		}
	}
	return count
}

// Reachable reports whether b can be reached from the solved board by legal
// moves. On a 4-wide board that holds when the tile inversions plus the blank's
// row counted from the bottom (1-based) is odd.
func Reachable(b Board) bool {
	free := b.Find(Empty)
	if free < 0 {
		return false
	}
	rowFromBottom := Side - Row(free)
	return (Inversions(b[:])+rowFromBottom)%2 == 1
}
