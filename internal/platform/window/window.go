// Package window hosts arcade games in a desktop window through ebiten.
// The canvas always matches the window, and the game's frame buffer is
// rebuilt for it at CellW x CellH pixels per cell.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/void-arcade/internal/audio"
	"github.com/vovakirdan/void-arcade/internal/core"
	"github.com/vovakirdan/void-arcade/internal/registry"
	"github.com/vovakirdan/void-arcade/internal/storage"
)

// Options configures a windowed run.
type Options struct {
	Width, Height int // initial window size in pixels
	Store         *storage.Store
	Sound         *audio.Engine
	Logger        *log.Logger
}

// Host is the ebiten.Game driving one arcade game.
type Host struct {
	game    registry.Game
	cfg     core.RuntimeConfig
	screen  *core.Screen
	raster  *rasterizer
	touch   *touchInput
	store   *storage.Store
	sound   *audio.Engine
	writer  *storage.HighScoreWriter
	logger  *log.Logger
	clock   func() time.Time
	keys    keyState
	pointer pointerState

	state        core.GameState
	pendingReset bool
	scoreSaved   bool
}

// NewHost creates a host for game and resets it with the persisted best.
func NewHost(game registry.Game, cfg core.RuntimeConfig, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Width > 0 && opts.Height > 0 {
		cfg.ScreenW, cfg.ScreenH = gridSize(opts.Width, opts.Height)
	}
	if opts.Store != nil {
		cfg.HighScore = max(cfg.HighScore, opts.Store.LoadHighScore(game.ID()))
	}

	game.Reset(cfg)

	return &Host{
		game:    game,
		cfg:     cfg,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		touch:   newTouchInput(),
		store:   opts.Store,
		sound:   opts.Sound,
		writer:  storage.NewHighScoreWriter(opts.Store, game.ID(), logger),
		logger:  logger,
		clock:   time.Now,
		keys:    liveKeys{},
		pointer: &livePointer{},
		state:   game.State(),
	}
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	now := h.clock()
	frame := core.NewInputFrameAt(now)
	readKeys(h.keys, &frame)
	h.touch.update(h.pointer, &frame, now)

	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if frame.Has(core.ActionBack) && h.state.Phase == core.PhaseIdle {
		return ebiten.Termination
	}

	result := h.game.Step(frame)
	h.state = result.State
	h.sound.Handle(result.Events)
	for _, ev := range result.Events {
		if ev.Kind == core.EventHighScore {
			h.writer.Observe(ev.Value)
		}
	}

	if h.state.GameOver {
		if !h.scoreSaved {
			h.saveScore()
			h.scoreSaved = true
		}
	} else {
		h.scoreSaved = false
	}

	h.resetIfIdle()
	return nil
}

func (h *Host) saveScore() {
	if h.store == nil || h.state.Score <= 0 {
		return
	}
	runID, err := h.store.SaveScore(h.game.ID(), h.state.Score)
	if err != nil {
		h.logger.Warn("could not save score", "game", h.game.ID(), "error", err)
		return
	}
	h.logger.Info("run recorded", "game", h.game.ID(), "score", h.state.Score, "run", runID)
}

// resize adopts a new canvas size. The game is rebuilt once it is idle.
func (h *Host) resize(w, hgt int) {
	cols, rows := gridSize(w, hgt)
	if cols == h.cfg.ScreenW && rows == h.cfg.ScreenH {
		return
	}
	h.cfg.ScreenW, h.cfg.ScreenH = cols, rows
	h.screen.Resize(cols, rows)
	h.pendingReset = true
	h.resetIfIdle()
}

func (h *Host) resetIfIdle() {
	if !h.pendingReset || h.state.Phase != core.PhaseIdle {
		return
	}
	h.pendingReset = false
	h.cfg.HighScore = max(h.cfg.HighScore, h.state.HighScore)
	h.game.Reset(h.cfg)
	h.state = h.game.State()
}

// Draw renders the game's frame buffer onto the canvas.
func (h *Host) Draw(dst *ebiten.Image) {
	if h.raster == nil {
		h.raster = newRasterizer()
	}
	h.screen.Clear()
	h.game.Render(h.screen)
	h.raster.draw(dst, h.screen)
}

// Layout keeps the canvas equal to the window, one pixel per pixel.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close flushes the pending high score.
func (h *Host) Close() {
	h.writer.Close()
}

// Run opens a resizable window and plays game until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 100*CellW, 40*CellH
	}

	h := NewHost(game, cfg, opts)
	defer h.Close()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.cfg.TickRate)

	h.logger.Info("window opened", "game", game.ID(), "cols", h.cfg.ScreenW, "rows", h.cfg.ScreenH)
	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// liveKeys reads the real keyboard.
type liveKeys struct{}

func (liveKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (liveKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// livePointer reads real touches and the mouse.
type livePointer struct {
	ids []ebiten.TouchID
}

func (p *livePointer) JustPressedTouches() []ebiten.TouchID {
	p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
	return p.ids
}

func (p *livePointer) TouchX(id ebiten.TouchID) int {
	x, _ := ebiten.TouchPosition(id)
	return x
}

func (p *livePointer) TouchReleased(id ebiten.TouchID) bool {
	return inpututil.IsTouchJustReleased(id)
}

func (p *livePointer) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (p *livePointer) MouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (p *livePointer) MouseX() int {
	x, _ := ebiten.CursorPosition()
	return x
}
