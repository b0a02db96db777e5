package puzzle

import (
	"errors"
	"testing"
)

func TestSolvedBoard(t *testing.T) {
	b := Solved()

	if err := b.Validate(); err != nil {
		t.Fatalf("Solved().Validate() = %v", err)
	}
	if b[Cells-1] != Empty {
		t.Errorf("Solved()[15] = %d, want Empty", b[Cells-1])
	}
	if got := b.Find(Empty); got != 15 {
		t.Errorf("Find(Empty) = %d, want 15", got)
	}
	if !IsSolved(b) {
		t.Error("Solved board should satisfy IsSolved")
	}
}

func TestRowColIndex(t *testing.T) {
	for i := 0; i < Cells; i++ {
		if got := Index(Row(i), Col(i)); got != i {
			t.Errorf("Index(Row(%d), Col(%d)) = %d", i, i, got)
		}
	}
	if Row(7) != 1 || Col(7) != 3 {
		t.Errorf("index 7 = (%d,%d), want (1,3)", Row(7), Col(7))
	}
}

func TestSwap(t *testing.T) {
	b := Solved()
	b.Swap(0, 15)

	if b[0] != Empty || b[15] != 1 {
		t.Errorf("after Swap(0,15): b[0]=%d b[15]=%d", b[0], b[15])
	}
}

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		name  string
		i, j  int
		row   bool
		naive bool
	}{
		{"right neighbour", 5, 6, true, true},
		{"left neighbour", 6, 5, true, true},
		{"above", 1, 5, true, true},
		{"below", 9, 5, true, true},
		{"row wrap 3->4", 3, 4, false, true},
		{"row wrap 4->3", 4, 3, false, true},
		{"row wrap 11->12", 11, 12, false, true},
		{"diagonal", 0, 5, false, false},
		{"two apart", 0, 2, false, false},
		{"same cell", 6, 6, false, false},
		{"two rows apart", 2, 10, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAdjacent(tt.i, tt.j); got != tt.row {
				t.Errorf("IsAdjacent(%d,%d) = %v, want %v", tt.i, tt.j, got, tt.row)
			}
			if got := IsAdjacentNaive(tt.i, tt.j); got != tt.naive {
				t.Errorf("IsAdjacentNaive(%d,%d) = %v, want %v", tt.i, tt.j, got, tt.naive)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dup := Solved()
	dup[0] = 2

	twoEmpty := Solved()
	twoEmpty[0] = Empty

	outOfRange := Solved()
	outOfRange[3] = 16

	noEmpty := Solved()
	noEmpty[15] = 1
	noEmpty[0] = 15
	noEmpty[14] = 16

	tests := []struct {
		name  string
		board Board
	}{
		{"duplicate tile", dup},
		{"two empty cells", twoEmpty},
		{"value out of range", outOfRange},
		{"no empty cell", noEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board.Validate()
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("Validate() = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestBoardStringRoundTrip(t *testing.T) {
	b := Solved()
	b.Swap(14, 15)

	s := b.String()
	want := "1 2 3 4 5 6 7 8 9 10 11 12 13 14 _ 15"
	if s != want {
		t.Fatalf("String() = %q, want %q", s, want)
	}

	parsed, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}
	if parsed != b {
		t.Errorf("ParseBoard(String()) = %v, want %v", parsed, b)
	}
}

func TestParseBoardRejects(t *testing.T) {
	inputs := []string{
		"",
		"1 2 3",
		"1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 15",
		"_ _ 2 3 4 5 6 7 8 9 10 11 12 13 14 15",
		"x 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15",
		"0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15",
	}

	for _, in := range inputs {
		if _, err := ParseBoard(in); !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("ParseBoard(%q) error = %v, want ErrInvalidBoard", in, err)
		}
	}
}
