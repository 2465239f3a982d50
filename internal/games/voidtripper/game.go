// Package voidtripper implements Void Tripper, a psychedelic vertical shooter.
//
// The player steers a rocket along the bottom of the world and shoots falling
// asteroids. Score raises the trip level, which intensifies the visuals and
// unlocks random events. Power-ups bend time, flip the screen, shift into a
// chess dimension or break the fourth wall.
//
// The world is simulated in logical pixels (8x16 per terminal cell by
// default) and on a session clock that only advances while play is running.
// Step never performs I/O: sounds and high-score persistence are driven by the
// events it returns.
package voidtripper

import (
	"time"

	"github.com/vovakirdan/void-arcade/internal/config"
	"github.com/vovakirdan/void-arcade/internal/core"
	"github.com/vovakirdan/void-arcade/internal/registry"
)

// Phase is the session state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseQuiz
	PhaseCrash
	PhaseGameOver
)

// String returns the phase name reported in GameState.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return core.PhaseIdle
	case PhasePlaying:
		return "playing"
	case PhaseQuiz:
		return "chess_popup"
	case PhaseCrash:
		return "fake_crash"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// restartGuard keeps a held fire button from skipping the game-over summary.
const restartGuard = time.Second

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

// Game implements Void Tripper.
type Game struct {
	cfg      config.VoidConfig
	fixedCfg bool
	runtime  core.RuntimeConfig
	rng      *core.RNG
	clock    core.SimClock
	sched    scheduler
	tiers    config.TierLadder
	escal    config.Escalation

	worldW, worldH float64

	phase   Phase
	paused  bool
	endedAt time.Time

	// Session
	score      int
	highScore  int
	newRecord  bool
	highDirty  bool
	lives      int
	trip       int
	difficulty float64
	frame      int

	player      Player
	projectiles []Projectile
	asteroids   []Asteroid
	powerUps    []PowerUp
	explosions  []Explosion
	overlays    []Overlay
	glitches    []Glitch
	stars       []Star

	fx     effects
	labels [powerUpKinds]time.Duration

	// Oscillators and cosmetic state
	hue          float64
	breathe      float64
	vortex       float64
	shake        float64
	shakeX       float64
	shakeY       float64
	aberration   float64
	warp         float64
	kaleidoscope int

	lastShot   time.Duration
	lastMeta   time.Duration
	decoy      int
	decoyUntil time.Duration // 0 when no decoy is showing

	pendingQuiz *Puzzle
	quiz        *quizState
	crash       crashState

	events []core.Event
	post   postStats
}

// New creates a Void Tripper game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg. Reset does not reload it.
func NewWithConfig(cfg config.VoidConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "voidtripper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Void Tripper"
}

// Reset binds the game to a runtime config and returns to the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.fixedCfg {
		loaded, err := config.LoadVoid(configPath)
		if err != nil {
			loaded = config.DefaultVoidConfig()
		}
		if difficultyPreset != "" {
			config.ApplyVoidPreset(&loaded, difficultyPreset)
		}
		g.cfg = loaded
	}

	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 {
		cfg.ScreenW = def.ScreenW
	}
	if cfg.ScreenH <= 0 {
		cfg.ScreenH = def.ScreenH
	}
	g.runtime = cfg
	g.worldW = float64(cfg.ScreenW * max(g.cfg.World.CellWidth, 1))
	g.worldH = float64(cfg.ScreenH * max(g.cfg.World.CellHeight, 1))

	g.rng = core.NewRNG(cfg.Seed)
	g.clock = core.NewSimClock(g.cfg.World.MaxFrameDelta)
	g.tiers = config.NewTierLadder(g.cfg.Tiers)
	g.escal = config.NewEscalation(g.cfg.Escalation)
	g.highScore = max(cfg.HighScore, 0)

	g.resetSession()
	g.phase = PhaseIdle
}

// resetSession clears everything that belongs to one run.
func (g *Game) resetSession() {
	g.score = 0
	g.newRecord = false
	g.highDirty = false
	g.lives = g.cfg.Player.Lives
	g.trip = g.tiers.Tier(0)
	g.frame = 0
	g.difficulty = g.escal.At(0)
	g.paused = false
	g.endedAt = time.Time{}

	g.clock.Reset()
	g.sched.clear()

	g.player = Player{
		X:               g.worldW / 2,
		Y:               g.worldH - g.cfg.Player.BottomOffset,
		SizeMult:        1,
		InvincibleUntil: g.cfg.Player.SpawnInvincibility,
	}
	g.projectiles = nil
	g.asteroids = nil
	g.powerUps = nil
	g.explosions = nil
	g.overlays = nil
	g.glitches = nil
	g.seedStars()

	g.fx = effects{}
	g.labels = [powerUpKinds]time.Duration{}

	g.hue = 0
	g.breathe = 0
	g.vortex = 0
	g.shake = 0
	g.shakeX, g.shakeY = 0, 0
	g.aberration = 0
	g.warp = 1
	g.kaleidoscope = 1

	g.lastShot = -time.Hour
	g.lastMeta = 0
	g.decoy = 0
	g.decoyUntil = 0

	g.pendingQuiz = nil
	g.quiz = nil
	g.crash = crashState{}
}

// startSession begins a fresh run.
func (g *Game) startSession(wall time.Time) {
	g.resetSession()
	g.clock.Sync(wall)
	g.phase = PhasePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.phase {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.startSession(in.Now)
		} else {
			g.drift()
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
			if !g.paused {
				g.clock.Sync(in.Now)
			}
		}
		if !g.paused {
			g.tick(in)
		}

	case PhaseQuiz:
		g.stepQuiz(in)

	case PhaseCrash:
		g.stepCrash(in)

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionBack):
			g.resetSession()
			g.phase = PhaseIdle
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.startSession(in.Now)
		case in.Has(core.ActionFire) && g.restartAllowed(in.Now):
			g.startSession(in.Now)
		}
	}

	if g.highDirty {
		g.highDirty = false
		g.emit(core.EventHighScore, g.highScore)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) restartAllowed(wall time.Time) bool {
	if wall.IsZero() || g.endedAt.IsZero() {
		return true
	}
	return wall.Sub(g.endedAt) >= restartGuard
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused || g.phase == PhaseQuiz || g.phase == PhaseCrash,
		Phase:     g.phase.String(),
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// PostEffectSkips returns how many post-processing passes were skipped
// because the frame buffer refused access or the effect failed.
func (g *Game) PostEffectSkips() int {
	return g.post.skipped
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// addScore credits points. Score never decreases within a session.
func (g *Game) addScore(points int) {
	if points <= 0 {
		return
	}
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
		g.newRecord = true
		g.highDirty = true
	}
}

// endSession moves to the game-over summary.
func (g *Game) endSession(wall time.Time) {
	g.phase = PhaseGameOver
	g.paused = false
	g.endedAt = wall
	g.emit(core.EventGameOver, g.score)
}

func init() {
	registry.Register("voidtripper", func() registry.Game {
		return New()
	})
}
