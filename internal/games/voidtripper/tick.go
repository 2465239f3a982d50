package voidtripper

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/void-arcade/internal/core"
)

// tick runs one frame of the playing phase.
func (g *Game) tick(in core.InputFrame) {
	if g.pendingQuiz != nil {
		g.openQuiz(in.Now)
		return
	}

	g.clock.Advance(in.Now)
	now := g.clock.Now()
	g.frame++

	if g.updateTrip(in.Now) {
		return
	}
	g.updateOscillators(now)
	g.expireEffects(now)
	g.sched.drain(now, g)

	g.movePlayer(in, now)
	if in.Has(core.ActionFire) && g.canFire(now) {
		g.fire(now)
	}

	g.advanceWorld()
	if g.resolveCollisions(now, in.Now) {
		return
	}
	g.updateParticles()
	g.updateOverlays()
	g.randomEvents(now)
	g.spawn()
	g.difficulty = g.escal.At(g.frame)
}

// updateTrip recomputes the trip level and reports whether a fake crash
// interrupted the tick.
func (g *Game) updateTrip(wall time.Time) bool {
	level := g.tiers.Tier(g.score)
	if level <= g.trip {
		return false
	}
	g.trip = level

	g.aberration = 20
	g.shake = 15
	g.addGlitches(2)
	g.addOverlay(fmt.Sprintf("TRIP LEVEL %d", level), g.worldW/2, g.worldH/2, StyleMeta)
	g.emit(core.EventLevelUp, level)

	ev := g.cfg.Events
	if level >= ev.FakeCrashMinTier && g.rng.Chance(ev.FakeCrashChance) {
		g.openCrash(wall)
		return true
	}
	return false
}

func (g *Game) updateOscillators(now time.Duration) {
	trip := float64(g.trip)
	fx := g.cfg.Effects

	g.hue = math.Mod(g.hue+0.5*trip, 360)
	g.breathe += 0.03 * g.warp
	g.vortex += 0.005 * trip * g.warp

	g.shake = decay(g.shake, fx.ShakeDecay, fx.Epsilon)
	g.aberration = decay(g.aberration, fx.AberrationDecay, fx.Epsilon)
	if g.shake > 0 {
		g.shakeX = (g.rng.Float64() - 0.5) * g.shake
		g.shakeY = (g.rng.Float64() - 0.5) * g.shake
	} else {
		g.shakeX, g.shakeY = 0, 0
	}

	tw := g.cfg.TimeWarp
	target := 1.0
	if active(g.fx.timeSlow, now) {
		target = tw.SlowTarget
	}
	target += math.Sin(float64(g.frame)*0.01) * tw.Wobble * (trip / 10)
	g.warp += (target - g.warp) * tw.Smoothing
}

// drift animates the title screen background.
func (g *Game) drift() {
	g.hue = math.Mod(g.hue+0.5, 360)
	g.breathe += 0.03
	g.vortex += 0.005
}

func decay(v, factor, eps float64) float64 {
	v *= factor
	if v < eps {
		return 0
	}
	return v
}

// expireEffects undoes effects whose expiry has passed.
func (g *Game) expireEffects(now time.Duration) {
	if g.player.SizeMult != 1 && !active(g.fx.sizeChaos, now) {
		g.player.SizeMult = 1
	}
}

// inverted reports whether left and right are swapped.
func (g *Game) inverted(now time.Duration) bool {
	return active(g.fx.inverted, now)
}

func (g *Game) movePlayer(in core.InputFrame, now time.Duration) {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	if g.inverted(now) {
		left, right = right, left
	}

	speed := g.cfg.Player.Speed * g.warp
	if left {
		g.player.X -= speed
	}
	if right {
		g.player.X += speed
	}
	margin := g.cfg.Player.BoundsMargin
	g.player.X = core.ClampF(g.player.X, margin, g.worldW-margin)
	g.player.remember()
}

// canFire applies the warp-scaled rate limit.
func (g *Game) canFire(now time.Duration) bool {
	interval := g.cfg.Weapons.ShotInterval
	if g.warp > 0 {
		interval = time.Duration(float64(interval) / g.warp)
	}
	return now-g.lastShot > interval
}

func (g *Game) fire(now time.Duration) {
	w := g.cfg.Weapons
	g.lastShot = now

	offsets := []float64{0}
	if active(g.fx.multiShot, now) && len(w.MultiShotOffsets) > 0 {
		offsets = w.MultiShotOffsets
	}
	piece := active(g.fx.dimension, now)
	for _, off := range offsets {
		g.projectiles = append(g.projectiles, Projectile{
			X:     g.player.X + off,
			Y:     g.player.Y - w.MuzzleOffset,
			VY:    -w.ProjectileSpeed,
			Piece: piece,
		})
	}
	g.shake = max(g.shake, 2)
	g.emit(core.EventShot, len(offsets))
}

// advanceWorld moves every entity by the current time warp and drops what
// left the world.
func (g *Game) advanceWorld() {
	warp := g.warp
	trail := g.cfg.Weapons.TrailLength

	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Trail = pushTrail(p.Trail, Point{p.X, p.Y}, trail)
		p.Y += p.VY * warp
		if p.Y > -20 {
			kept = append(kept, p)
		}
	}
	g.projectiles = kept

	rocks := g.asteroids[:0]
	for _, a := range g.asteroids {
		a.X += a.VX * warp
		a.Y += a.VY * warp
		a.Rotation += a.RotSpeed * warp
		a.Phase += 0.05 * warp
		if a.Y < g.worldH+60 {
			rocks = append(rocks, a)
		}
	}
	g.asteroids = rocks

	drops := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Y += p.VY * warp
		p.Rotation += 0.05 * warp
		p.Hue = math.Mod(p.Hue+1, 360)
		if p.Y < g.worldH+30 {
			drops = append(drops, p)
		}
	}
	g.powerUps = drops

	for i := range g.stars {
		s := &g.stars[i]
		s.Y += s.Speed * warp
		if s.Y > g.worldH {
			s.Y = 0
			s.X = g.rng.Float64() * g.worldW
		}
	}
}

// resolveCollisions handles shots, player hits and pickups. It reports
// whether the session ended.
func (g *Game) resolveCollisions(now time.Duration, wall time.Time) bool {
	g.resolveShots()

	if !active(g.player.InvincibleUntil, now) {
		for i, a := range g.asteroids {
			radius := (a.Size + g.cfg.Player.HitRadius) * g.player.SizeMult
			if !core.CirclesTouch(g.player.X, g.player.Y, a.X, a.Y, radius) {
				continue
			}
			g.asteroids = append(g.asteroids[:i], g.asteroids[i+1:]...)
			if g.hitPlayer(now, wall) {
				return true
			}
			break
		}
	}

	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		if core.CirclesTouch(g.player.X, g.player.Y, p.X, p.Y, g.cfg.PowerUps.PickupRadius*g.player.SizeMult) {
			g.applyPowerUp(p.Kind, now)
			g.addOverlay(p.Kind.String(), p.X, p.Y-30, StyleMeta)
			g.shake = 5
			g.emit(core.EventPowerUp, int(p.Kind))
			continue
		}
		kept = append(kept, p)
	}
	g.powerUps = kept
	return false
}

// resolveShots destroys every asteroid touched by a projectile. Each
// projectile destroys at most one asteroid.
func (g *Game) resolveShots() {
	if len(g.projectiles) == 0 || len(g.asteroids) == 0 {
		return
	}
	spent := make([]bool, len(g.projectiles))

	rocks := g.asteroids[:0]
	for _, a := range g.asteroids {
		hit := false
		for j, p := range g.projectiles {
			if spent[j] || !core.CirclesTouch(p.X, p.Y, a.X, a.Y, a.Size) {
				continue
			}
			spent[j] = true
			hit = true
			break
		}
		if !hit {
			rocks = append(rocks, a)
			continue
		}
		g.destroyAsteroid(a)
	}
	g.asteroids = rocks

	shots := g.projectiles[:0]
	for j, p := range g.projectiles {
		if !spent[j] {
			shots = append(shots, p)
		}
	}
	g.projectiles = shots
}

// killPoints is floor(size) scaled by trip level and the score multiplier.
func killPoints(size float64, trip, mult int) int {
	return int(math.Floor(size)) * trip * mult
}

func (g *Game) destroyAsteroid(a Asteroid) {
	g.explode(a.X, a.Y, a.Hue, 30+g.trip*5)
	g.addScore(killPoints(a.Size, g.trip, g.cfg.Weapons.ScoreMultiplier))

	switch a.Variant {
	case VariantDialogue:
		g.addOverlay(msgMonster, a.X, a.Y-50, StyleMeta)
	case VariantPiece:
		g.addOverlay(a.Glyph+" captured!", a.X, a.Y-50, StylePiece)
	}

	g.shake = float64(10 + g.trip)
	g.aberration = float64(10 + 2*g.trip)
	g.emit(core.EventExplosion, int(a.Size))
}

// hitPlayer costs a life and reports whether it was the last one.
func (g *Game) hitPlayer(now time.Duration, wall time.Time) bool {
	g.explode(g.player.X, g.player.Y, g.hue, 50)
	g.lives--
	g.player.InvincibleUntil = now + g.cfg.Player.HitInvincibility
	g.shake = 30
	g.aberration = 30
	g.addGlitches(5)
	g.addOverlay(core.Pick(g.rng, hitMessages), g.player.X, g.player.Y-50, StyleMeta)
	g.emit(core.EventPlayerHit, g.lives)

	if g.lives <= 0 {
		g.lives = 0
		g.endSession(wall)
		return true
	}
	return false
}

func (g *Game) updateParticles() {
	warp := g.warp
	blasts := g.explosions[:0]
	for _, e := range g.explosions {
		alive := e.Particles[:0]
		for _, p := range e.Particles {
			p.X += p.VX * warp
			p.Y += p.VY * warp
			p.VY += 0.15 * warp
			p.Life -= 0.015 * warp
			p.Hue = math.Mod(p.Hue+2, 360)
			if p.Life > 0 {
				alive = append(alive, p)
			}
		}
		e.Particles = alive
		if len(alive) > 0 {
			blasts = append(blasts, e)
		}
	}
	g.explosions = blasts

	glitches := g.glitches[:0]
	for _, gl := range g.glitches {
		gl.Life--
		if gl.Life > 0 {
			glitches = append(glitches, gl)
		}
	}
	g.glitches = glitches
}

func (g *Game) updateOverlays() {
	kept := g.overlays[:0]
	for _, o := range g.overlays {
		o.Life--
		if o.Life > 0 {
			kept = append(kept, o)
		}
	}
	g.overlays = kept
}
