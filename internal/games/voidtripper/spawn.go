package voidtripper

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/void-arcade/internal/core"
)

func (g *Game) seedStars() {
	n := g.cfg.World.StarCount
	g.stars = make([]Star, n)
	for i := range g.stars {
		g.stars[i] = Star{
			X:     g.rng.Float64() * g.worldW,
			Y:     g.rng.Float64() * g.worldH,
			Speed: g.rng.Float64()*2 + 0.5,
			Hue:   g.rng.Float64() * 360,
		}
	}
}

// spawnInterval is the asteroid cadence in frames at the current difficulty.
func (g *Game) spawnInterval() int {
	a := g.cfg.Asteroids
	interval := int(math.Floor(float64(a.SpawnBase) - g.difficulty*a.SpawnStep))
	return max(a.SpawnFloor, interval, 1)
}

// spawn creates asteroids and power-ups on their frame cadences.
func (g *Game) spawn() {
	if g.frame > g.cfg.Asteroids.SpawnAfterFrame && g.frame%g.spawnInterval() == 0 {
		g.asteroids = append(g.asteroids, g.newAsteroid())
	}

	pu := g.cfg.PowerUps
	if pu.SpawnEvery > 0 && g.frame%pu.SpawnEvery == 0 && g.rng.Chance(pu.SpawnChance) {
		g.powerUps = append(g.powerUps, g.newPowerUp())
	}
}

func (g *Game) newAsteroid() Asteroid {
	cfg := g.cfg.Asteroids
	now := g.clock.Now()

	size := g.rng.Float64()*cfg.SizeRange + cfg.MinSize
	verts := make([]float64, 6+g.rng.Intn(4))
	for i := range verts {
		verts[i] = 0.6 + g.rng.Float64()*0.4
	}

	a := Asteroid{
		X:        g.rng.Float64()*(g.worldW-100) + 50,
		Y:        -60,
		VY:       (g.rng.Float64()*cfg.SpeedRange + cfg.MinSpeed) * g.difficulty,
		Size:     size,
		Rotation: g.rng.Float64() * 2 * math.Pi,
		RotSpeed: (g.rng.Float64() - 0.5) * 0.08,
		Vertices: verts,
		Hue:      g.rng.Float64() * 360,
		Phase:    g.rng.Float64() * 2 * math.Pi,
	}

	if active(g.fx.dimension, now) && g.rng.Chance(cfg.PieceChance) {
		a.Variant = VariantPiece
		a.Glyph = core.Pick(g.rng, chessGlyphs)
	} else if g.trip >= cfg.DialogueMinTier && g.rng.Chance(cfg.DialogueChance) {
		a.Variant = VariantDialogue
		a.Text = core.Pick(g.rng, dialogues)
	}
	return a
}

func (g *Game) newPowerUp() PowerUp {
	return PowerUp{
		X:    g.rng.Float64()*(g.worldW-60) + 30,
		Y:    -30,
		VY:   g.cfg.PowerUps.FallSpeed,
		Kind: PowerUpKind(g.rng.Intn(int(powerUpKinds))),
		Hue:  g.rng.Float64() * 360,
	}
}

// explode adds a ring of count particles at (x, y).
func (g *Game) explode(x, y, hue float64, count int) {
	if count <= 0 {
		return
	}
	parts := make([]Particle, count)
	for i := range parts {
		angle := 2*math.Pi*float64(i)/float64(count) + g.rng.Float64()*0.5
		speed := g.rng.Float64()*6 + 3
		parts[i] = Particle{
			X:    x,
			Y:    y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed,
			Life: 1,
			Hue:  math.Mod(hue+g.rng.Float64()*60-30+360, 360),
			Size: g.rng.Float64()*6 + 3,
		}
	}
	g.explosions = append(g.explosions, Explosion{X: x, Y: y, Particles: parts})
}

func (g *Game) addGlitches(n int) {
	for range n {
		w := g.rng.Float64()*200 + 50
		h := g.rng.Float64()*100 + 20
		g.glitches = append(g.glitches, Glitch{
			X:       g.rng.Float64() * max(g.worldW-w, 0),
			Y:       g.rng.Float64() * max(g.worldH-h, 0),
			W:       w,
			H:       h,
			OffsetX: (g.rng.Float64() - 0.5) * 100,
			OffsetY: (g.rng.Float64() - 0.5) * 50,
			Life:    g.rng.Float64()*10 + 5,
		})
	}
}

func (g *Game) addOverlay(text string, x, y float64, style OverlayStyle) {
	g.addOverlayLife(text, x, y, style, overlayLife)
}

func (g *Game) addOverlayLife(text string, x, y float64, style OverlayStyle, life int) {
	g.overlays = append(g.overlays, Overlay{
		Text:    text,
		X:       x,
		Y:       y,
		Life:    life,
		MaxLife: life,
		Style:   style,
	})
}

// randomOverlay places text somewhere away from the edges.
func (g *Game) randomOverlay(text string) {
	x := g.rng.Float64()*max(g.worldW-200, 0) + min(100, g.worldW/2)
	y := g.rng.Float64()*max(g.worldH-200, 0) + min(100, g.worldH/2)
	g.addOverlay(text, x, y, StyleMeta)
}

// randomEvents rolls the ambient weirdness for this frame.
func (g *Game) randomEvents(now time.Duration) {
	ev := g.cfg.Events
	trip := float64(g.trip)

	if now-g.lastMeta > ev.MetaCooldown && g.rng.Chance(ev.MetaChance) {
		g.lastMeta = now
		g.randomOverlay(core.Pick(g.rng, metaMessages))
	}

	if g.rng.Chance(ev.GlitchChance * trip) {
		g.addGlitches(1)
	}

	if g.trip >= ev.InversionMinTier && !g.inverted(now) && g.rng.Chance(ev.InversionChance*trip) {
		span := 2*time.Second + time.Duration(g.rng.Float64()*float64(3*time.Second))
		g.fx.inverted = now + span
		g.shake = 20
		g.addOverlay(msgInverted, g.worldW/2, 100, StyleGlitch)
	}

	if g.trip >= ev.DecoyMinTier && g.rng.Chance(ev.DecoyChance) {
		g.showDecoy(now)
	}
}

// showDecoy replaces the HUD score with a fake one until its scheduled
// clear. A newer decoy outlives the clears of earlier ones.
func (g *Game) showDecoy(now time.Duration) {
	due := now + g.cfg.Events.DecoyDuration
	g.decoy = g.rng.Intn(100000)
	g.decoyUntil = due
	g.sched.after(now, g.cfg.Events.DecoyDuration, func(g *Game) {
		if g.decoyUntil == due {
			g.decoyUntil = 0
		}
	})
}

// hudScore is the score text, or the decoy while one is showing.
func (g *Game) hudScore() string {
	if g.decoyUntil > 0 {
		return fmt.Sprintf("SC0R3: %d", g.decoy)
	}
	return fmt.Sprintf("SCORE: %d", g.score)
}
