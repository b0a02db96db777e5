package puzzle

// IsSolved reports whether tiles 1..15 occupy indices 0..14.
// Index 15 is not inspected.
func IsSolved(b Board) bool {
	for i := 0; i < Cells-1; i++ {
		if b[i] != Cell(i+1) {
			return false
		}
	}
	return true
}
