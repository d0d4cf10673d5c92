package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(2, 1, "ok", ColorCorrect)

	c := s.GetCell(2, 1)
	if c.Rune != 'o' || c.Color != ColorCorrect {
		t.Errorf("GetCell(2, 1) = %+v, expected 'o' in ColorCorrect", c)
	}
	if s.GetCell(4, 1).Color != ColorDefault {
		t.Error("cell after text should keep default color")
	}

	s.Clear()
	if s.GetCell(2, 1) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("Clear should reset color as well as rune")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "Hello")
	if s.Row(1) != "  Hello             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipping at right edge
	s.DrawText(17, 2, "Hello")
	if s.Row(2) != "                 Hel" {
		t.Errorf("Row(2) = %q, expected clipping", s.Row(2))
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawText(0, 0, "Correct! ✓")

	if s.Get(9, 0) != '✓' {
		t.Errorf("Get(9, 0) = %q, expected check mark at rune offset 9", s.Get(9, 0))
	}
	if s.Get(10, 0) != ' ' {
		t.Errorf("Get(10, 0) = %q, multibyte rune should use one cell", s.Get(10, 0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "abcd", ColorDefault)

	if s.Row(0) != "   abcd   " {
		t.Errorf("Row(0) = %q, expected centered text", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if s.Row(y) != want {
			t.Errorf("Row(%d) = %q, expected %q", y, s.Row(y), want)
		}
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawBox(NewRect(1, 1, 1, 3))

	if strings.TrimSpace(s.String()) != "" {
		t.Error("boxes narrower than two cells should not be drawn")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')
	s.Set(8, 8, 'Y')

	s.Resize(5, 5)
	if s.Width() != 5 || s.Height() != 5 {
		t.Fatalf("Resize dims = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("content inside the new bounds should be preserved")
	}

	s.Resize(10, 10)
	if s.Get(8, 8) != ' ' {
		t.Error("content clipped by a shrink should not come back")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if s.String() != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", s.String(), "abc\ndef")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short text", 20, []string{"short text"}},
		{"breaks on words", "Which keyword is used to create a class", 16, []string{"Which keyword is", "used to create a", "class"}},
		{"splits long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"collapses spaces", "a   b", 10, []string{"a b"}},
		{"empty", "", 10, nil},
		{"zero width", "abc", 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.text, tc.width)
			if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
				t.Errorf("Wrap(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestScreenDrawWrapped(t *testing.T) {
	s := NewScreen(10, 4)
	n := s.DrawWrapped(0, 1, 6, "one two three", ColorWhite)

	if n != 3 {
		t.Fatalf("DrawWrapped returned %d lines, expected 3", n)
	}
	if strings.TrimRight(s.Row(3), " ") != "three" {
		t.Errorf("Row(3) = %q, expected \"three\"", s.Row(3))
	}
	if s.GetCell(0, 1).Color != ColorWhite {
		t.Error("wrapped text should carry its color")
	}
}
