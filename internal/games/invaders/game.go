// Package invaders implements a compact Space Invaders on a fixed logical
// field that the renderer centers on screen.
package invaders

import (
	"time"

	"github.com/vovakirdan/void-arcade/internal/config"
	"github.com/vovakirdan/void-arcade/internal/core"
	"github.com/vovakirdan/void-arcade/internal/registry"
)

// GameState constants
const (
	StateIdle     = core.PhaseIdle
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateWon      = "won"
	StateGameOver = "gameover"
)

// maxFrameDelta clamps one tick of session time after a host stall.
const maxFrameDelta = 250 * time.Millisecond

// dangerLine is how far above the bottom edge an invader ends the game.
const dangerLine = 60

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Invader is one member of the swarm, in field pixels.
type Invader struct {
	X, Y  int
	Alive bool
}

// Bullet is a projectile in field pixels.
type Bullet struct {
	X, Y int
}

// Game implements Space Invaders.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	fixedCfg   bool
	difficulty *config.DifficultyManager
	rng        *core.RNG
	clock      core.SimClock

	state     string
	score     int
	highScore int
	highDirty bool
	tickCount int

	playerX   int
	invaders  []Invader
	direction int
	bullets   []Bullet
	enemyFire []Bullet

	lastShot   time.Duration
	lastMarch  time.Duration
	lastVolley time.Duration
	marchFrame int
	puffs      []Bullet // Explosion sprites, cleared on the next march

	events []core.Event
}

// New creates a Space Invaders game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg. Reset does not reload it.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes the game and shows the title card.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadInvaders(configPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
		}
		if difficultyPreset != "" {
			config.ApplyInvadersPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	def := core.DefaultConfig()
	if runtime.ScreenW <= 0 {
		runtime.ScreenW = def.ScreenW
	}
	if runtime.ScreenH <= 0 {
		runtime.ScreenH = def.ScreenH
	}
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRNG(runtime.Seed)
	g.clock = core.NewSimClock(maxFrameDelta)
	g.highScore = max(runtime.HighScore, 0)

	g.resetRound()
	g.state = StateIdle
}

// resetRound rebuilds the swarm and clears the score.
func (g *Game) resetRound() {
	f, p, s := g.cfg.Field, g.cfg.Player, g.cfg.Swarm

	g.score = 0
	g.highDirty = false
	g.tickCount = 0
	g.clock.Reset()

	g.playerX = f.Width/2 - p.Width/2
	g.invaders = make([]Invader, 0, s.Rows*s.Cols)
	for row := range s.Rows {
		for col := range s.Cols {
			g.invaders = append(g.invaders, Invader{
				X:     col*s.SpacingX + s.OffsetX,
				Y:     row*s.SpacingY + s.OffsetY,
				Alive: true,
			})
		}
	}
	g.direction = 1
	g.bullets = nil
	g.enemyFire = nil
	g.puffs = nil

	g.lastShot = -time.Hour
	g.lastMarch = 0
	g.lastVolley = 0
	g.marchFrame = 0
}

func (g *Game) start(wall time.Time) {
	g.resetRound()
	g.clock.Sync(wall)
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.state {
	case StateIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.start(in.Now)
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.state = StatePaused
			break
		}
		g.tick(in)

	case StatePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.clock.Sync(in.Now)
			g.state = StatePlaying
		}

	case StateWon, StateGameOver:
		switch {
		case in.Has(core.ActionBack):
			g.resetRound()
			g.state = StateIdle
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.start(in.Now)
		}
	}

	if g.highDirty {
		g.highDirty = false
		g.emit(core.EventHighScore, g.highScore)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) tick(in core.InputFrame) {
	g.clock.Advance(in.Now)
	now := g.clock.Now()
	g.tickCount++

	g.movePlayer(in)
	if in.Has(core.ActionFire) {
		g.fire(now)
	}
	g.moveBullets()

	if now-g.lastMarch >= g.marchInterval() {
		g.lastMarch = now
		g.march()
	}
	if now-g.lastVolley >= g.cfg.Swarm.FireInterval {
		g.lastVolley = now
		g.enemyShoot()
	}

	g.resolveHits()
	g.checkEnd()
}

func (g *Game) movePlayer(in core.InputFrame) {
	p := g.cfg.Player
	if in.Has(core.ActionLeft) {
		g.playerX = max(0, g.playerX-p.Speed)
	}
	if in.Has(core.ActionRight) {
		g.playerX = min(g.cfg.Field.Width-p.Width, g.playerX+p.Speed)
	}
}

func (g *Game) fire(now time.Duration) {
	p := g.cfg.Player
	if now-g.lastShot < p.ShotCooldown {
		return
	}
	g.lastShot = now
	g.bullets = append(g.bullets, Bullet{
		X: g.playerX + p.Width/2 - bulletW/2,
		Y: g.playerY() - bulletH,
	})
	g.emit(core.EventShot, 1)
}

func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= g.cfg.Player.BulletSpeed
		if b.Y+bulletH > 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept

	keptEnemy := g.enemyFire[:0]
	for _, b := range g.enemyFire {
		b.Y += g.cfg.Swarm.BulletSpeed
		if b.Y < g.cfg.Field.Height {
			keptEnemy = append(keptEnemy, b)
		}
	}
	g.enemyFire = keptEnemy
}

// marchInterval shortens as difficulty rises.
func (g *Game) marchInterval() time.Duration {
	s := g.cfg.Swarm
	return time.Duration(g.difficulty.Lerp(
		float64(s.MoveInterval), float64(s.MinInterval), g.score, g.tickCount,
	))
}

// march steps the swarm sideways, reversing and dropping at the edges.
func (g *Game) march() {
	s := g.cfg.Swarm
	minX, maxX, ok := g.swarmSpan()
	if !ok {
		return
	}

	drop := 0
	switch {
	case g.direction > 0 && maxX >= g.cfg.Field.Width-s.Size-10:
		g.direction = -1
		drop = s.Drop
	case g.direction < 0 && minX <= 10:
		g.direction = 1
		drop = s.Drop
	}

	for i := range g.invaders {
		g.invaders[i].X += g.direction * s.Step
		g.invaders[i].Y += drop
	}
	g.marchFrame++
	g.puffs = nil
}

// swarmSpan returns the leftmost and rightmost living invader X.
func (g *Game) swarmSpan() (minX, maxX int, ok bool) {
	for _, inv := range g.invaders {
		if !inv.Alive {
			continue
		}
		if !ok {
			minX, maxX, ok = inv.X, inv.X, true
			continue
		}
		minX = min(minX, inv.X)
		maxX = max(maxX, inv.X)
	}
	return minX, maxX, ok
}

func (g *Game) enemyShoot() {
	alive := g.alive()
	if len(alive) == 0 {
		return
	}
	shooter := g.invaders[core.Pick(g.rng, alive)]
	size := g.cfg.Swarm.Size
	g.enemyFire = append(g.enemyFire, Bullet{
		X: shooter.X + size/2,
		Y: shooter.Y + size,
	})
}

// alive returns the indices of living invaders.
func (g *Game) alive() []int {
	var idx []int
	for i, inv := range g.invaders {
		if inv.Alive {
			idx = append(idx, i)
		}
	}
	return idx
}

func (g *Game) resolveHits() {
	size := g.cfg.Swarm.Size
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		br := core.NewRect(b.X, b.Y, bulletW, bulletH)
		for i := range g.invaders {
			inv := &g.invaders[i]
			if !inv.Alive || !br.Intersects(core.NewRect(inv.X, inv.Y, size, size)) {
				continue
			}
			inv.Alive = false
			hit = true
			g.addScore(g.cfg.Swarm.Points)
			g.puffs = append(g.puffs, Bullet{X: inv.X, Y: inv.Y})
			g.emit(core.EventExplosion, size)
			break
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	g.bullets = kept

	player := g.playerRect()
	for _, b := range g.enemyFire {
		if player.Intersects(core.NewRect(b.X, b.Y, bulletW, bulletH)) {
			g.emit(core.EventPlayerHit, 0)
			g.finish(StateGameOver)
			return
		}
	}
}

func (g *Game) checkEnd() {
	if g.state != StatePlaying {
		return
	}
	alive := g.alive()
	if len(alive) == 0 {
		g.finish(StateWon)
		return
	}
	for _, i := range alive {
		if g.invaders[i].Y > g.cfg.Field.Height-dangerLine {
			g.finish(StateGameOver)
			return
		}
	}
}

func (g *Game) finish(state string) {
	g.state = state
	if state == StateWon {
		g.emit(core.EventWin, g.score)
	}
	g.emit(core.EventGameOver, g.score)
}

func (g *Game) addScore(points int) {
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
		g.highDirty = true
	}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

func (g *Game) playerY() int {
	return g.cfg.Field.Height - 30
}

func (g *Game) playerRect() core.Rect {
	p := g.cfg.Player
	return core.NewRect(g.playerX, g.playerY(), p.Width, p.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.state == StateGameOver || g.state == StateWon,
		Paused:    g.state == StatePaused,
		Phase:     g.state,
	}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
