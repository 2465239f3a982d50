package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// Bullet size in field pixels.
const (
	bulletW = 2
	bulletH = 8
)

// Sprite glyphs, alternated on every march step.
var invaderFrames = [2]string{"▛▜", "▙▟"}

// rowColors tints the swarm by its starting row.
var rowColors = []core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
}

// layout maps field pixels onto the screen.
type layout struct {
	ox, oy int     // Top-left cell of the field
	cols   int     // Field width in cells
	rows   int     // Field height in cells
	px, py float64 // Field pixels per cell
}

// layout centers the field below the HUD row, shrinking it when the screen
// is smaller than the field at its nominal cell size.
func (g *Game) layout(screenW, screenH int) layout {
	f := g.cfg.Field
	fw, fh := float64(f.Width), float64(f.Height)
	cw, ch := float64(max(f.CellWidth, 1)), float64(max(f.CellHeight, 1))

	// Border takes two columns, HUD and border take three rows.
	availW := float64(max(screenW-2, 1))
	availH := float64(max(screenH-3, 1))
	scale := math.Max(1, math.Max(fw/cw/availW, fh/ch/availH))

	l := layout{px: cw * scale, py: ch * scale}
	l.cols = max(int(math.Ceil(fw/l.px-1e-9)), 1)
	l.rows = max(int(math.Ceil(fh/l.py-1e-9)), 1)
	l.ox = max((screenW-l.cols)/2, 1)
	l.oy = max((screenH-l.rows)/2+1, 2)
	return l
}

// cell returns the screen cell for a field position.
func (l layout) cell(x, y int) (int, int) {
	return l.ox + int(float64(x)/l.px), l.oy + int(float64(y)/l.py)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	l := g.layout(dst.Width(), dst.Height())

	dst.DrawBox(core.NewRect(l.ox-1, l.oy-1, l.cols+2, l.rows+2))
	g.drawHUD(dst, l)

	if g.state == StateIdle {
		g.drawTitle(dst, l)
		return
	}

	g.drawSwarm(dst, l)
	g.drawPlayer(dst, l)
	g.drawBullets(dst, l)

	switch g.state {
	case StatePaused:
		dst.DrawTextCenteredColored(l.oy+l.rows/2, "PAUSED", core.ColorBrightWhite)
		dst.DrawTextCenteredColored(l.oy+l.rows/2+1, "Press P to resume", core.ColorGray)
	case StateWon:
		g.drawResult(dst, l, "YOU WIN!", core.ColorBrightGreen)
	case StateGameOver:
		g.drawResult(dst, l, "GAME OVER", core.ColorBrightRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen, l layout) {
	y := l.oy - 2
	dst.DrawTextColored(l.ox, y, fmt.Sprintf("SCORE: %d", g.score), core.ColorBrightCyan)
	hi := fmt.Sprintf("HI: %d", g.highScore)
	dst.DrawTextColored(l.ox+l.cols-core.TextWidth(hi), y, hi, core.ColorGray)
}

func (g *Game) drawSwarm(dst *core.Screen, l layout) {
	frame := invaderFrames[g.marchFrame%2]
	cols := max(g.cfg.Swarm.Cols, 1)
	for i, inv := range g.invaders {
		if !inv.Alive {
			continue
		}
		x, y := l.cell(inv.X, inv.Y)
		dst.DrawTextColored(x, y, frame, rowColors[(i/cols)%len(rowColors)])
	}
	for _, p := range g.puffs {
		x, y := l.cell(p.X, p.Y)
		dst.DrawTextColored(x, y, "✶✶", core.ColorOrange)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, l layout) {
	p := g.cfg.Player
	cx, y := l.cell(g.playerX+p.Width/2, g.playerY())
	dst.DrawTextColored(cx-1, y, "▟█▙", core.ColorBrightGreen)
}

func (g *Game) drawBullets(dst *core.Screen, l layout) {
	for _, b := range g.bullets {
		x, y := l.cell(b.X, b.Y)
		dst.SetColored(x, y, '│', core.ColorBrightWhite)
	}
	for _, b := range g.enemyFire {
		x, y := l.cell(b.X, b.Y)
		dst.SetColored(x, y, '¦', core.ColorBrightRed)
	}
}

func (g *Game) drawTitle(dst *core.Screen, l layout) {
	mid := l.oy + l.rows/2
	dst.DrawTextCenteredColored(mid-2, "S P A C E", core.ColorBrightMagenta)
	dst.DrawTextCenteredColored(mid-1, "I N V A D E R S", core.ColorBrightCyan)
	dst.DrawTextCenteredColored(mid+1, "Press ENTER to start", core.ColorBrightWhite)
	dst.DrawTextCenteredColored(mid+2, "←/→ move · SPACE fire · P pause", core.ColorGray)
}

func (g *Game) drawResult(dst *core.Screen, l layout, title string, color core.Color) {
	mid := l.oy + l.rows/2
	dst.DrawTextCenteredColored(mid-1, title, color)
	dst.DrawTextCenteredColored(mid, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(mid+2, "R to restart · ESC for menu", core.ColorGray)
}
