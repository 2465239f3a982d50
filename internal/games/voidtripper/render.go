package voidtripper

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// view maps world pixels to screen cells, applying shake, screen flip and
// the slow dimension rotation of high trip levels.
type view struct {
	sx, sy float64 // World pixels per cell
	ox, oy float64 // Shake offset
	flip   bool
	rot    float64
	cx, cy float64
	w, h   float64
	cols   int
	rows   int
}

func (g *Game) newView(dst *core.Screen, now time.Duration) view {
	v := view{
		sx:   g.worldW / float64(max(dst.Width(), 1)),
		sy:   g.worldH / float64(max(dst.Height(), 1)),
		ox:   g.shakeX,
		oy:   g.shakeY,
		flip: active(g.fx.screenFlip, now),
		cx:   g.worldW / 2,
		cy:   g.worldH / 2,
		w:    g.worldW,
		h:    g.worldH,
		cols: dst.Width(),
		rows: dst.Height(),
	}
	if g.trip >= 7 {
		v.rot = math.Sin(float64(g.frame)*0.005) * 0.05
	}
	return v
}

// project returns the cell for a world position.
func (v view) project(x, y float64) (int, int) {
	x += v.ox
	y += v.oy
	if v.rot != 0 {
		dx, dy := x-v.cx, y-v.cy
		sin, cos := math.Sincos(v.rot)
		x = v.cx + dx*cos - dy*sin
		y = v.cy + dx*sin + dy*cos
	}
	if v.flip {
		y = v.h - y
	}
	return int(math.Floor(x / v.sx)), int(math.Floor(y / v.sy))
}

// unproject returns the world position at the center of a cell, ignoring
// shake and rotation.
func (v view) unproject(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * v.sx
	y := (float64(row) + 0.5) * v.sy
	if v.flip {
		y = v.h - y
	}
	return x, y
}

func (v view) text(dst *core.Screen, x, y float64, s string, fg core.Color) {
	col, row := v.project(x, y)
	dst.DrawTextColored(col-core.TextWidth(s)/2, row, s, fg)
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	switch g.phase {
	case PhaseIdle:
		g.drawBackground(dst, g.newView(dst, 0))
		g.drawTitle(dst)
		return
	case PhaseCrash:
		g.drawCrash(dst)
		return
	}

	now := g.clock.Now()
	v := g.newView(dst, now)
	g.drawBackground(dst, v)
	g.drawEntities(dst, v, now)
	g.applyPostEffects(dst, v)
	g.drawHUD(dst, now)

	switch {
	case g.phase == PhaseQuiz:
		g.drawQuiz(dst)
	case g.phase == PhaseGameOver:
		g.drawGameOver(dst)
	case g.paused:
		g.drawPaused(dst)
	}
}

// drawBackground paints breathing rings, the vortex and stars.
func (g *Game) drawBackground(dst *core.Screen, v view) {
	now := g.clock.Now()
	rings := 15 + g.trip*5
	maxR := math.Max(g.worldW, g.worldH)
	existential := active(g.fx.existential, now)
	chess := active(g.fx.dimension, now)

	for row := range v.rows {
		for col := range v.cols {
			x, y := v.unproject(col, row)
			r := core.Dist(x, y, v.cx, v.cy)
			i := math.Floor(r / maxR * float64(rings))
			phase := g.breathe + i*0.3
			light := 0.04 + 0.03*(math.Sin(phase)+1)*(1-i/float64(rings))
			bg := core.HSL(g.hue+i*20, 1, light)

			if chess && (int(x/60)+int(y/60))%2 == 0 {
				bg = bg.Blend(core.ColorWhite, 0.1)
			}
			if existential {
				bg = bg.Scale(0.7)
			}
			dst.SetBackground(col, row, bg)
		}
	}

	arms := 6 + g.trip
	for arm := range arms {
		base := g.vortex + 2*math.Pi*float64(arm)/float64(arms)
		fg := core.HSL(g.hue+float64(arm)*60, 1, 0.35)
		for t := 0.0; t < 4*math.Pi; t += 0.1 {
			sin, cos := math.Sincos(t + base)
			col, row := v.project(v.cx+cos*t*30, v.cy+sin*t*30)
			if dst.Get(col, row) == ' ' {
				dst.SetColored(col, row, '·', fg)
			}
		}
	}

	for _, s := range g.stars {
		col, row := v.project(s.X, s.Y)
		glyph := '.'
		if s.Speed > 2 {
			glyph = '*'
		}
		dst.SetColored(col, row, glyph, core.HSL(s.Hue+g.hue, 0.6, 0.75))
	}

	if existential {
		fg := core.HSL(g.hue, 0.5, 0.7)
		for i, t := range thoughts {
			fi := float64(i)
			x := v.cx + math.Sin(float64(g.frame)*0.01+fi)*200
			y := 100 + fi*80 + math.Cos(float64(g.frame)*0.02+fi)*30
			v.text(dst, x, y, t, fg)
		}
	}
}

func (g *Game) drawEntities(dst *core.Screen, v view, now time.Duration) {
	for _, a := range g.asteroids {
		g.drawAsteroid(dst, v, a)
	}

	for _, p := range g.powerUps {
		col, row := v.project(p.X, p.Y)
		fg := core.HSL(p.Hue, 1, 0.6)
		dst.SetColored(col-1, row, '[', fg)
		dst.DrawTextColored(col, row, p.Kind.Icon(), core.ColorBrightWhite)
		dst.SetColored(col+core.TextWidth(p.Kind.Icon()), row, ']', fg)
	}

	for _, p := range g.projectiles {
		for i, t := range p.Trail {
			col, row := v.project(t.X, t.Y)
			fade := float64(i+1) / float64(len(p.Trail)+1)
			dst.SetColored(col, row, '·', core.HSL(g.hue+180, 1, 0.6).Scale(fade))
		}
		col, row := v.project(p.X, p.Y)
		if p.Piece {
			dst.DrawTextColored(col, row, "♙", core.RGB(255, 215, 0))
		} else {
			dst.SetColored(col, row, '|', core.HSL(g.hue+180, 1, 0.7))
		}
	}

	for _, e := range g.explosions {
		for _, p := range e.Particles {
			col, row := v.project(p.X, p.Y)
			glyph := '·'
			switch {
			case p.Life > 0.66:
				glyph = '*'
			case p.Life > 0.33:
				glyph = '•'
			}
			dst.SetColored(col, row, glyph, core.HSL(p.Hue, 1, 0.6))
		}
	}

	g.drawPlayer(dst, v, now)

	for _, o := range g.overlays {
		v.text(dst, o.X, o.Y, o.Text, g.overlayColor(o))
	}
}

func (g *Game) drawAsteroid(dst *core.Screen, v view, a Asteroid) {
	fill := core.HSL(a.Hue+g.hue, 0.8, 0.45)
	edge := core.HSL(a.Hue+g.hue+40, 1, 0.65)
	r := a.Size
	n := len(a.Vertices)

	c0, r0 := v.project(a.X-r, a.Y-r)
	c1, r1 := v.project(a.X+r, a.Y+r)
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := v.unproject(col, row)
			dx, dy := x-v.ox-a.X, y-v.oy-a.Y
			d := math.Hypot(dx, dy)
			if n == 0 || d >= r {
				continue
			}
			angle := math.Atan2(dy, dx) - a.Rotation
			f := math.Mod(angle/(2*math.Pi)*float64(n)+float64(4*n), float64(n))
			k := int(f)
			frac := f - float64(k)
			limit := r * (a.Vertices[k%n]*(1-frac) + a.Vertices[(k+1)%n]*frac)
			switch {
			case d < limit*0.8:
				dst.SetColored(col, row, '▓', fill)
			case d < limit:
				dst.SetColored(col, row, '░', edge)
			}
		}
	}

	switch a.Variant {
	case VariantPiece:
		col, row := v.project(a.X, a.Y)
		dst.DrawTextColored(col, row, a.Glyph, core.RGB(255, 215, 0))
	case VariantDialogue:
		v.text(dst, a.X, a.Y-a.Size-15, a.Text, core.ColorBrightWhite)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view, now time.Duration) {
	for i, p := range g.player.Trail {
		if i == 0 || i%2 != 0 {
			continue
		}
		col, row := v.project(p.X, p.Y)
		dst.SetColored(col, row, '·', core.HSL(g.hue+float64(i)*15, 1, 0.3))
	}

	invincible := active(g.player.InvincibleUntil, now)
	if invincible && (g.frame/4)%2 == 1 {
		return
	}

	body := core.HSL(g.hue+180, 0.9, 0.7)
	if invincible {
		body = body.Scale(0.7)
	}
	g.drawRocket(dst, v, g.player.X, g.player.Y, body)

	if g.trip >= 6 {
		g.drawRocket(dst, v, g.worldW-g.player.X, g.player.Y, body.Scale(0.3))
	}
	if active(g.fx.shield, now) {
		col, row := v.project(g.player.X, g.player.Y)
		ring := core.HSL(g.hue+90, 1, 0.6)
		dst.SetColored(col-2, row, '(', ring)
		dst.SetColored(col+2, row, ')', ring)
	}
}

func (g *Game) drawRocket(dst *core.Screen, v view, x, y float64, body core.Color) {
	col, row := v.project(x, y)
	flame := core.HSL(g.hue+30, 1, 0.6)
	dir := 1
	if v.flip {
		dir = -1
	}

	if g.player.SizeMult >= 2 {
		dst.DrawTextColored(col-1, row-dir, "/▲\\", body)
		dst.DrawTextColored(col-2, row, "◢███◣", body)
		dst.DrawTextColored(col-1, row+dir, "▼▼▼", flame)
		return
	}
	if g.player.SizeMult < 1 {
		dst.SetColored(col, row, '▴', body)
		return
	}
	dst.SetColored(col, row-dir, '▲', body)
	dst.DrawTextColored(col-1, row, "◢█◣", body)
	dst.SetColored(col, row+dir, '▼', flame)
}

func (g *Game) overlayColor(o Overlay) core.Color {
	var c core.Color
	switch o.Style {
	case StyleGlitch:
		c = core.HSL(float64((g.frame*37)%360), 1, 0.7)
	case StylePiece:
		c = core.RGB(255, 215, 0)
	case StyleNegative:
		c = core.ColorBrightWhite
	default:
		c = core.HSL(g.hue, 0.8, 0.7)
	}
	if o.MaxLife <= 0 {
		return c
	}
	return c.Scale(math.Max(0.35, float64(o.Life)/float64(o.MaxLife)))
}

// drawHUD draws the unfiltered status lines.
func (g *Game) drawHUD(dst *core.Screen, now time.Duration) {
	scoreHue := g.hue + 180
	dst.DrawTextColored(1, 0, g.hudScore(), core.HSL(scoreHue, 1, 0.7))

	trip := fmt.Sprintf("TRIP LEVEL: %d", g.trip)
	dst.DrawTextCenteredColored(0, trip, core.HSL(g.hue, 1, 0.7))

	hi := fmt.Sprintf("HI: %d", max(g.score, g.highScore))
	dst.DrawTextColored(dst.Width()-core.TextWidth(hi)-1, 0, hi, core.HSL(scoreHue+120, 1, 0.7))

	if g.inverted(now) {
		dst.DrawTextCenteredColored(1, msgInverted, core.HSL(float64((g.frame*10)%360), 1, 0.5))
	}

	for i, k := range g.activeLabels(now) {
		dst.DrawTextColored(1, 2+i, "▸ "+k.String(), core.HSL(g.hue+float64(i)*40, 1, 0.7))
	}

	lives := strings.Repeat("♥ ", max(g.lives, 0))
	dst.DrawTextColored(1, dst.Height()-1, strings.TrimSpace(lives), core.ColorBrightRed)
}

// box draws a filled frame centered on the screen and returns its area.
func box(dst *core.Screen, w, h int, border core.Color) core.Rect {
	w = min(w, dst.Width())
	h = min(h, dst.Height())
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetCell(x, y, core.Cell{Rune: ' ', BG: core.RGB(10, 0, 20)})
		}
	}
	dst.DrawBox(r)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if y == r.Y || y == r.Bottom()-1 || x == r.X || x == r.Right()-1 {
				c := dst.GetCell(x, y)
				c.FG = border
				dst.SetCell(x, y, c)
			}
		}
	}
	return r
}

func (g *Game) drawTitle(dst *core.Screen) {
	mid := dst.Height()/2 - 4
	dst.DrawTextCenteredColored(mid, "V O I D", core.HSL(g.hue+300, 1, 0.65))
	dst.DrawTextCenteredColored(mid+1, "T R I P P E R", core.HSL(g.hue+200, 1, 0.65))
	dst.DrawTextCenteredColored(mid+3, "Reality bends. Perception warps.", core.ColorGray)
	dst.DrawTextCenteredColored(mid+4, "How deep can you go?", core.ColorBrightCyan)
	if g.highScore > 0 {
		dst.DrawTextCenteredColored(mid+6, fmt.Sprintf("HI: %d", g.highScore), core.ColorYellow)
	}
	dst.DrawTextCenteredColored(mid+8, "Press ENTER or SPACE to begin", core.HSL(g.hue, 1, 0.7))
	dst.DrawTextCenteredColored(mid+10, "←/→ move  SPACE shoot  P pause  Q quit", core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	r := box(dst, 46, 12, core.HSL(g.hue, 1, 0.6))
	y := r.Y + 1
	dst.DrawTextCenteredColored(y, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCenteredColored(y+2, fmt.Sprintf("SCORE: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(y+3, fmt.Sprintf("Trip Level Reached: %d", g.trip), core.ColorBrightMagenta)
	dst.DrawTextCenteredColored(y+4, fmt.Sprintf("BEST: %d", g.highScore), core.ColorYellow)
	dst.DrawTextCenteredColored(y+5, summaryBlurb(g.score), core.ColorGray)
	if g.newRecord && g.score > 0 {
		dst.DrawTextCenteredColored(y+7, msgRecord, core.HSL(float64((g.frame*10)%360), 1, 0.6))
	}
	dst.DrawTextCenteredColored(r.Bottom()-2, "R restart  ESC title  Q quit", core.ColorGray)
}

func (g *Game) drawQuiz(dst *core.Screen) {
	if g.quiz == nil {
		return
	}
	r := box(dst, 44, 10, core.RGB(255, 215, 0))
	y := r.Y + 1
	dst.DrawTextCenteredColored(y, strings.Join(g.quiz.puzzle.Pieces, " "), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(y+2, "♔ CHESS DIMENSION ♔", core.RGB(255, 215, 0))
	dst.DrawTextCenteredColored(y+4, g.quiz.puzzle.Question, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(y+6, "[Y] YES      [N] NO", core.ColorBrightCyan)
}

func (g *Game) drawCrash(dst *core.Screen) {
	bg := core.RGB(0, 0, 170)
	for y := range dst.Height() {
		for x := range dst.Width() {
			dst.SetCell(x, y, core.Cell{Rune: ' ', FG: core.ColorBrightWhite, BG: bg})
		}
	}
	mid := dst.Height()/2 - 3
	dst.DrawTextCenteredColored(mid, "FATAL ERROR", core.ColorBrightWhite)
	dst.DrawTextCenteredColored(mid+2, g.crash.message, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(mid+4, "The reality engine has stopped responding", core.ColorWhite)
	dst.DrawTextCenteredColored(mid+5, "core dumped to /dev/void", core.ColorWhite)
}

func (g *Game) drawPaused(dst *core.Screen) {
	r := box(dst, 24, 5, core.ColorBrightCyan)
	dst.DrawTextCenteredColored(r.Y+2, "PAUSED", core.ColorBrightWhite)
}
