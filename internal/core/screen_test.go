package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(30, 14)

	if s.Width() != 30 {
		t.Errorf("Width() = %d, expected 30", s.Width())
	}
	if s.Height() != 14 {
		t.Errorf("Height() = %d, expected 14", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColoredOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(2, 1, 'X', ColorTileDark)
	if c := s.GetCell(2, 1); c.Rune != 'X' || c.Color != ColorTileDark {
		t.Errorf("GetCell(2, 1) = %+v", c)
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(4, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 4, 'A')

	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(9, 9).Rune != ' ' {
		t.Error("out of bounds GetCell should return a space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(NewRect(0, 0, 5, 3), '#', ColorFrame)
	s.Clear()

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("after Clear screen = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, want 8x2", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Resize should clear the buffer")
	}

	s.Resize(-3, -3)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative Resize: got %dx%d, want 0x0", s.Width(), s.Height())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)

	s.DrawText(7, 0, "hello")
	if got := s.Row(0); got != "       hel" {
		t.Errorf("clipped text row = %q", got)
	}

	s.DrawTextCentered(1, "ab")
	if got := s.Row(1); got != "    ab    " {
		t.Errorf("centered row = %q", got)
	}

	if got := s.Row(5); got != strings.Repeat(" ", 10) {
		t.Errorf("out of range Row = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorFrame)

	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nwant:\n%s", got, want)
	}
	if s.GetCell(0, 0).Color != ColorFrame {
		t.Error("box corner should carry the frame color")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("Right/Bottom = %d/%d, want 6/5", r.Right(), r.Bottom())
	}
}

func TestActionString(t *testing.T) {
	if ActionNewGame.String() != "NewGame" {
		t.Errorf("ActionNewGame.String() = %q", ActionNewGame.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
