package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string using the
// default lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith converts a Screen buffer to a styled string for the given
// renderer. Adjacent cells sharing colors are emitted as one styled run.
// Truecolor degrades with the renderer's profile.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[[2]core.Color]lipgloss.Style)
	var run strings.Builder

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := [2]core.Color{first.FG, first.BG}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != first.FG || cell.BG != first.BG {
					break
				}
				r, n := cell.Rune, core.RuneCells(cell.Rune)
				if x+n > s.Width() {
					r, n = ' ', 1 // would wrap the terminal line
				}
				run.WriteRune(r)
				x += n // skip the right half of wide runes
			}

			if key == ([2]core.Color{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[key]
			if !ok {
				style = cellStyle(r, first.FG, first.BG)
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func cellStyle(r *lipgloss.Renderer, fg, bg core.Color) lipgloss.Style {
	style := r.NewStyle()
	if !fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		style = style.Background(lipgloss.Color(bg.Hex()))
	}
	return style
}
