package voidtripper

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// postEffect is one full-frame filter over the rendered cells.
type postEffect struct {
	name  string
	apply func(s core.Surface, v view) error
}

// postStats counts skipped filters.
type postStats struct {
	skipped int
	lastErr error
}

// postEffects lists the filters active this frame, in application order.
func (g *Game) postEffects() []postEffect {
	now := g.clock.Now()
	var fx []postEffect
	if active(g.fx.negative, now) {
		fx = append(fx, postEffect{"negative", invertColors})
	}
	if g.aberration > 0 {
		fx = append(fx, postEffect{"aberration", g.chromaticAberration})
	}
	if len(g.glitches) > 0 {
		fx = append(fx, postEffect{"glitch", g.displaceGlitches})
	}
	if g.kaleidoscope > 1 {
		fx = append(fx, postEffect{"kaleidoscope", g.kaleidoscopeBlend})
	}
	if g.trip >= 5 {
		fx = append(fx, postEffect{"scanlines", scanlines})
	}
	return fx
}

// applyPostEffects runs every active filter. A filter that fails or panics
// is skipped for this frame and the rest still run.
func (g *Game) applyPostEffects(s core.Surface, v view) {
	for _, fx := range g.postEffects() {
		if err := guard(fx, s, v); err != nil {
			g.post.skipped++
			g.post.lastErr = err
		}
	}
}

func guard(fx postEffect, s core.Surface, v view) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("postfx %s: panic: %v", fx.name, r)
		}
	}()
	if err := fx.apply(s, v); err != nil {
		return fmt.Errorf("postfx %s: %w", fx.name, err)
	}
	return nil
}

// readAll returns the whole frame.
func readAll(s core.Surface) (core.Rect, []core.Cell, error) {
	b := s.Bounds()
	if b.Empty() {
		return b, nil, core.ErrSurfaceUnavailable
	}
	cells, err := s.ReadRegion(b)
	if err != nil {
		return b, nil, err
	}
	if len(cells) != b.W*b.H {
		return b, nil, errors.New("short read")
	}
	return b, cells, nil
}

func fg(c core.Cell) core.Color { return c.FG.Or(core.DefaultForeground) }
func bg(c core.Cell) core.Color { return c.BG.Or(core.DefaultBackground) }

func invertColors(s core.Surface, _ view) error {
	b, cells, err := readAll(s)
	if err != nil {
		return err
	}
	for i, c := range cells {
		cells[i].FG = fg(c).Invert()
		cells[i].BG = bg(c).Invert()
	}
	return s.WriteRegion(b, cells)
}

// chromaticAberration samples red from the left and blue from the right.
func (g *Game) chromaticAberration(s core.Surface, v view) error {
	off := int(math.Round(g.aberration / v.sx))
	if off < 1 {
		return nil
	}
	b, cells, err := readAll(s)
	if err != nil {
		return err
	}
	out := make([]core.Cell, len(cells))
	for y := range b.H {
		row := cells[y*b.W : (y+1)*b.W]
		for x, c := range row {
			left := row[core.Clamp(x-off, 0, b.W-1)]
			right := row[core.Clamp(x+off, 0, b.W-1)]
			lr, _, _ := fg(left).Channels()
			_, _, rb := fg(right).Channels()
			br, _, _ := bg(left).Channels()
			_, _, bb := bg(right).Channels()
			c.FG = fg(c).WithChannels(int(lr), -1, int(rb))
			c.BG = bg(c).WithChannels(int(br), -1, int(bb))
			out[y*b.W+x] = c
		}
	}
	return s.WriteRegion(b, out)
}

// displaceGlitches copies each glitch block to its offset with a warm tint.
func (g *Game) displaceGlitches(s core.Surface, v view) error {
	b := s.Bounds()
	for _, gl := range g.glitches {
		src := core.NewRect(
			int(gl.X/v.sx), int(gl.Y/v.sy),
			max(int(gl.W/v.sx), 1), max(int(gl.H/v.sy), 1),
		)
		dx, dy := int(gl.OffsetX/v.sx), int(gl.OffsetY/v.sy)

		// Clip both rectangles so the copy stays on the surface.
		src = src.Intersect(b)
		dst := core.NewRect(src.X+dx, src.Y+dy, src.W, src.H).Intersect(b)
		src = core.NewRect(dst.X-dx, dst.Y-dy, dst.W, dst.H)
		if src.Empty() {
			continue
		}

		cells, err := s.ReadRegion(src)
		if err != nil {
			return err
		}
		for i, c := range cells {
			r, gg, _ := fg(c).Channels()
			cells[i].FG = fg(c).WithChannels(int(r)+50, int(gg)-30, -1)
			r, gg, _ = bg(c).Channels()
			cells[i].BG = bg(c).WithChannels(int(r)+50, int(gg)-30, -1)
		}
		if err := s.WriteRegion(dst, cells); err != nil {
			return err
		}
	}
	return nil
}

// kaleidoscopeBlend blends rotated copies of the frame at 30%.
func (g *Game) kaleidoscopeBlend(s core.Surface, v view) error {
	b, cells, err := readAll(s)
	if err != nil {
		return err
	}
	out := make([]core.Cell, len(cells))
	copy(out, cells)

	cx, cy := float64(b.W)/2, float64(b.H)/2
	aspect := v.sy / v.sx
	for k := 1; k < g.kaleidoscope; k++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(k) / float64(g.kaleidoscope))
		for y := range b.H {
			for x := range b.W {
				// Rotate in pixel space so circles stay round.
				px, py := float64(x)-cx, (float64(y)-cy)*aspect
				sx := int(math.Round(cx + px*cos - py*sin))
				sy := int(math.Round(cy + (px*sin+py*cos)/aspect))
				if sx < 0 || sx >= b.W || sy < 0 || sy >= b.H {
					continue
				}
				src := cells[sy*b.W+sx]
				c := &out[y*b.W+x]
				c.FG = fg(*c).Blend(fg(src), 0.3)
				c.BG = bg(*c).Blend(bg(src), 0.3)
				if c.Rune == ' ' && src.Rune != ' ' && core.RuneCells(src.Rune) == 1 {
					c.Rune = src.Rune
				}
			}
		}
	}
	return s.WriteRegion(b, out)
}

// scanlines darkens every other row.
func scanlines(s core.Surface, _ view) error {
	b, cells, err := readAll(s)
	if err != nil {
		return err
	}
	for y := 0; y < b.H; y += 2 {
		for x := range b.W {
			c := &cells[y*b.W+x]
			c.FG = fg(*c).Scale(0.85)
			c.BG = bg(*c).Scale(0.8)
		}
	}
	return s.WriteRegion(b, cells)
}
