package voidtripper

import (
	"math"
	"time"
)

// Snapshot is a primitive-typed summary of the world, used to compare runs.
type Snapshot struct {
	Tick       int
	Clock      time.Duration
	Phase      string
	Score      int
	HighScore  int
	Lives      int
	Trip       int
	Difficulty float64
	Warp       float64

	PlayerX, PlayerY float64
	SizeMult         float64
	Invincible       time.Duration

	Projectiles int
	Asteroids   int
	PowerUps    int
	Explosions  int
	Overlays    int
	Glitches    int
	Scheduled   int

	// Effect expiries in PowerUpKind order, then inversion.
	Effects []time.Duration

	// Asteroid positions, flattened as X, Y, Size.
	AsteroidData []float64

	RNGState uint64
}

// Snapshot returns the current world summary.
func (g *Game) Snapshot() Snapshot {
	rocks := make([]float64, 0, len(g.asteroids)*3)
	for _, a := range g.asteroids {
		rocks = append(rocks, a.X, a.Y, a.Size)
	}

	return Snapshot{
		Tick:       g.frame,
		Clock:      g.clock.Now(),
		Phase:      g.phase.String(),
		Score:      g.score,
		HighScore:  g.highScore,
		Lives:      g.lives,
		Trip:       g.trip,
		Difficulty: g.difficulty,
		Warp:       g.warp,

		PlayerX:    g.player.X,
		PlayerY:    g.player.Y,
		SizeMult:   g.player.SizeMult,
		Invincible: g.player.InvincibleUntil,

		Projectiles: len(g.projectiles),
		Asteroids:   len(g.asteroids),
		PowerUps:    len(g.powerUps),
		Explosions:  len(g.explosions),
		Overlays:    len(g.overlays),
		Glitches:    len(g.glitches),
		Scheduled:   g.sched.pending(),

		Effects: []time.Duration{
			g.fx.multiShot, g.fx.timeSlow, g.fx.shield, g.fx.screenFlip,
			g.fx.existential, g.fx.dimension, g.labels[RealityBreak],
			g.labels[FourthWall], g.fx.sizeChaos, g.fx.negative, g.fx.inverted,
		},
		AsteroidData: rocks,

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Clock)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Trip)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Difficulty)
	h = h*31 + math.Float64bits(snap.Warp)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.SizeMult)
	h = h*31 + uint64(snap.Invincible)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Asteroids)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUps)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Explosions)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Overlays)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Glitches)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Scheduled)   //#nosec G115 -- hash computation

	for _, e := range snap.Effects {
		h = h*31 + uint64(e) //#nosec G115 -- hash computation
	}
	for _, v := range snap.AsteroidData {
		h = h*31 + math.Float64bits(v)
	}
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}
