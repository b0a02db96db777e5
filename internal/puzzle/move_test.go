package puzzle

import (
	"errors"
	"testing"
)

// blankFirst is [Empty, 1, 2, ..., 15].
func blankFirst() Board {
	var b Board
	for i := 1; i < Cells; i++ {
		b[i] = Cell(i)
	}
	return b
}

func TestAttemptMoveHorizontal(t *testing.T) {
	b := blankFirst()

	free, ok := AttemptMove(&b, 0, 1, RowAware)
	if !ok {
		t.Fatal("moving index 1 into free 0 should be legal")
	}
	if free != 1 {
		t.Errorf("free = %d, want 1", free)
	}
	if b[0] != 1 || b[1] != Empty {
		t.Errorf("board after move = %v", b)
	}
}

func TestAttemptMoveVertical(t *testing.T) {
	b := blankFirst()

	free, ok := AttemptMove(&b, 0, 4, RowAware)
	if !ok {
		t.Fatal("moving index 4 into free 0 should be legal")
	}
	if free != 4 || b[0] != 4 || b[4] != Empty {
		t.Errorf("free=%d board=%v", free, b)
	}
}

func TestAttemptMoveIllegalLeavesBoard(t *testing.T) {
	targets := []int{0, 2, 3, 5, 8, 15, -1, 16}

	for _, target := range targets {
		b := blankFirst()
		before := b

		free, ok := AttemptMove(&b, 0, target, RowAware)
		if ok {
			t.Errorf("AttemptMove(target=%d) should be rejected", target)
		}
		if free != 0 {
			t.Errorf("AttemptMove(target=%d) free = %d, want 0", target, free)
		}
		if b != before {
			t.Errorf("AttemptMove(target=%d) changed board to %v", target, b)
		}
	}
}

func TestAttemptMoveAcrossRowBoundary(t *testing.T) {
	// Free cell at index 3 (end of row 0), target 4 (start of row 1).
	base := Solved()
	base.Swap(3, 15)

	t.Run("row-aware rejects", func(t *testing.T) {
		b := base
		free, ok := AttemptMove(&b, 3, 4, RowAware)
		if ok || free != 3 || b != base {
			t.Errorf("row-aware rule accepted 3<->4: ok=%v free=%d", ok, free)
		}
	})

	t.Run("naive accepts", func(t *testing.T) {
		b := base
		free, ok := AttemptMove(&b, 3, 4, Naive)
		if !ok || free != 4 {
			t.Fatalf("naive rule rejected 3<->4: ok=%v free=%d", ok, free)
		}
		if b[3] != 5 || b[4] != Empty {
			t.Errorf("board after naive move = %v", b)
		}
	})
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in      string
		want    AdjacencyRule
		wantErr bool
	}{
		{"", RowAware, false},
		{"row-aware", RowAware, false},
		{"naive", Naive, false},
		{"diagonal", RowAware, true},
	}

	for _, tt := range tests {
		got, err := ParseRule(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownRule) {
				t.Errorf("ParseRule(%q) error = %v, want ErrUnknownRule", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseRule(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
