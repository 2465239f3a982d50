package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || !c.FG.IsDefault() || !c.BG.IsDefault() {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetKeepsColors(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	s.SetBackground(5, 5, ColorBlue)
	s.Set(5, 5, 'Y')

	c := s.GetCell(5, 5)
	if c.Rune != 'Y' {
		t.Errorf("rune = %q, expected 'Y'", c.Rune)
	}
	if c.FG != ColorRed || c.BG != ColorBlue {
		t.Errorf("Set should keep colors, got fg=%s bg=%s", c.FG.Hex(), c.BG.Hex())
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.SetColored(100, 0, 'A', ColorRed)
	s.SetCell(0, 100, Cell{Rune: 'A'})
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0).Rune != ' ' {
		t.Error("out of bounds reads should return a blank cell")
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		text  string
		check map[int]rune
	}{
		{"ascii", 2, "Hello", map[int]rune{2: 'H', 6: 'o'}},
		{"clipped", 18, "Hello", map[int]rune{18: 'H', 19: 'e'}},
		{"multibyte", 0, "◈ok", map[int]rune{0: '◈', 1: 'o', 2: 'k'}},
		{"wide rune takes two cells", 0, "世x", map[int]rune{0: '世', 2: 'x'}},
		{"wide emoji takes two cells", 3, "🚀x", map[int]rune{3: '🚀', 5: 'x'}},
		{"wide rune clipped at right edge", 19, "世", map[int]rune{19: ' '}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(20, 1)
			s.DrawText(tc.x, 0, tc.text)
			for x, want := range tc.check {
				if got := s.Get(x, 0); got != want {
					t.Errorf("Get(%d, 0) = %q, expected %q", x, got, want)
				}
			}
		})
	}
}

func TestScreenWideRuneAtEdge(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(3, 0, '世', ColorRed)
	s.SetCell(3, 1, Cell{Rune: '🚀'})
	s.Set(2, 1, '世')

	if got := s.Row(0); got != "    " {
		t.Errorf("row 0 = %q, wide rune in the last column should be dropped", got)
	}
	if s.GetCell(3, 0).FG != ColorRed {
		t.Error("clipped cell should keep its color")
	}
	if got := s.Row(1); got != "  世" {
		t.Errorf("row 1 = %q, expected %q", got, "  世")
	}
	if w := TextWidth(s.Row(1)); w != s.Width() {
		t.Errorf("row width = %d, expected %d", w, s.Width())
	}

	// A region copy can still leave a wide rune in the last column.
	if err := s.WriteRegion(NewRect(3, 0, 1, 1), []Cell{{Rune: '世'}}); err != nil {
		t.Fatalf("WriteRegion() failed: %v", err)
	}
	if w := TextWidth(s.Row(0)); w != s.Width() {
		t.Errorf("row width after region write = %d, expected %d", w, s.Width())
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCenteredColored(2, "Hi", ColorGreen)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
	if s.GetCell(x, 2).FG != ColorGreen {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if s.GetCell(0, 0).FG != ColorCyan {
		t.Error("colors should be preserved after enlarging")
	}
}

func TestScreenRegionRoundTrip(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawTextColored(1, 1, "abc", ColorYellow)

	r := NewRect(1, 1, 3, 1)
	cells, err := s.ReadRegion(r)
	if err != nil {
		t.Fatalf("ReadRegion() failed: %v", err)
	}
	if len(cells) != 3 || cells[2].Rune != 'c' {
		t.Fatalf("ReadRegion() = %+v", cells)
	}

	for i := range cells {
		cells[i].Rune = 'z'
	}
	if err := s.WriteRegion(NewRect(0, 3, 3, 1), cells); err != nil {
		t.Fatalf("WriteRegion() failed: %v", err)
	}
	if s.Row(3) != "zzz   " {
		t.Errorf("row 3 = %q", s.Row(3))
	}
	if s.GetCell(0, 3).FG != ColorYellow {
		t.Error("written cells should keep their colors")
	}
}

func TestScreenRegionUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		screen *Screen
		region Rect
	}{
		{"zero sized screen", NewScreen(0, 0), NewRect(0, 0, 1, 1)},
		{"outside right edge", NewScreen(5, 5), NewRect(3, 0, 4, 1)},
		{"negative origin", NewScreen(5, 5), NewRect(-1, 0, 2, 2)},
		{"empty region", NewScreen(5, 5), NewRect(1, 1, 0, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.screen.ReadRegion(tc.region); !errors.Is(err, ErrSurfaceUnavailable) {
				t.Errorf("ReadRegion() error = %v, expected ErrSurfaceUnavailable", err)
			}
			err := tc.screen.WriteRegion(tc.region, make([]Cell, tc.region.W*tc.region.H))
			if !errors.Is(err, ErrSurfaceUnavailable) {
				t.Errorf("WriteRegion() error = %v, expected ErrSurfaceUnavailable", err)
			}
		})
	}

	s := NewScreen(5, 5)
	if err := s.WriteRegion(NewRect(0, 0, 2, 2), make([]Cell, 3)); !errors.Is(err, ErrSurfaceUnavailable) {
		t.Errorf("short cell slice should be rejected, got %v", err)
	}
}
