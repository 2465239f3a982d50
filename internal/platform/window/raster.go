package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// One frame-buffer cell covers CellW x CellH pixels of the canvas.
const (
	CellW = 8
	CellH = 16
)

// gridSize returns how many cells fit a canvas, at least one each way.
func gridSize(w, h int) (cols, rows int) {
	return max(w/CellW, 1), max(h/CellH, 1)
}

// rgba converts a cell color, substituting fallback for the default color.
func rgba(c, fallback core.Color) color.RGBA {
	r, g, b := c.Or(fallback).Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// glyph classifies how a cell is drawn on the canvas.
type glyph int

const (
	glyphNone  glyph = iota // background only
	glyphBlock              // a solid block in the foreground color
	glyphText               // an ASCII character through the debug font
)

// classify picks the drawing for a rune. The debug font only covers
// ASCII, so every other visible rune becomes a block of its color.
func classify(r rune) glyph {
	switch {
	case r == 0 || r == ' ':
		return glyphNone
	case r > ' ' && r < 0x7f:
		return glyphText
	default:
		return glyphBlock
	}
}

// rasterizer draws a core.Screen onto an ebiten image.
type rasterizer struct {
	pixel *ebiten.Image
}

func newRasterizer() *rasterizer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &rasterizer{pixel: pixel}
}

func (r *rasterizer) fillCell(dst *ebiten.Image, x, y int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(CellW, CellH)
	op.GeoM.Translate(float64(x*CellW), float64(y*CellH))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(r.pixel, op)
}

// draw paints every cell: backgrounds first, then blocks and glyphs.
// The debug font is white, so text keeps the canvas contrast rather than
// its cell color.
func (r *rasterizer) draw(dst *ebiten.Image, s *core.Screen) {
	dst.Fill(rgba(core.DefaultBackground, core.DefaultBackground))

	for y := range s.Height() {
		for x := 0; x < s.Width(); {
			cell := s.GetCell(x, y)
			if !cell.BG.IsDefault() {
				r.fillCell(dst, x, y, rgba(cell.BG, core.DefaultBackground))
			}

			switch classify(cell.Rune) {
			case glyphBlock:
				r.fillCell(dst, x, y, rgba(cell.FG, core.DefaultForeground))
			case glyphText:
				ebitenutil.DebugPrintAt(dst, string(cell.Rune), x*CellW+1, y*CellH)
			}
			x += core.RuneCells(cell.Rune)
		}
	}
}
