package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/void-arcade/internal/core"
)

func testRenderer(p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return r
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawText(0, 0, "void")
	s.DrawTextColored(2, 1, "ab", core.ColorRed)
	s.SetBackground(5, 2, core.ColorBlue)
	s.DrawText(0, 2, "世x")

	got := RenderScreenWith(testRenderer(termenv.Ascii), s)
	if got != s.String() {
		t.Errorf("plain render mismatch:\n%q\nexpected\n%q", got, s.String())
	}
}

func TestRenderScreenTruecolorRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(1, 0, "AB", core.RGB(255, 0, 0))
	s.SetCell(4, 0, core.Cell{Rune: 'C', FG: core.RGB(0, 255, 0), BG: core.RGB(0, 0, 255)})

	got := RenderScreenWith(testRenderer(termenv.TrueColor), s)

	if !strings.Contains(got, "38;2;255;0;0mAB") {
		t.Errorf("adjacent cells should share one styled run, got %q", got)
	}
	if !strings.Contains(got, "48;2;0;0;255") {
		t.Errorf("background should be rendered, got %q", got)
	}
	if !strings.HasPrefix(got, " ") {
		t.Errorf("default cells should stay unstyled, got %q", got)
	}
}

func TestRenderScreenWideRuneAtEdgeKeepsWidth(t *testing.T) {
	s := core.NewScreen(4, 1)
	if err := s.WriteRegion(core.NewRect(3, 0, 1, 1), []core.Cell{{Rune: '世', FG: core.ColorRed}}); err != nil {
		t.Fatalf("WriteRegion() failed: %v", err)
	}

	for _, p := range []termenv.Profile{termenv.Ascii, termenv.TrueColor} {
		got := RenderScreenWith(testRenderer(p), s)
		if w := lipgloss.Width(got); w != s.Width() {
			t.Errorf("profile %v: rendered width = %d, expected %d (%q)", p, w, s.Width(), got)
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreenWith(testRenderer(termenv.TrueColor), core.NewScreen(0, 0)); got != "" {
		t.Errorf("empty screen rendered %q", got)
	}
}
