package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/void-arcade/internal/core"
	"github.com/vovakirdan/void-arcade/internal/registry"
	"github.com/vovakirdan/void-arcade/internal/storage"
)

// Terminals deliver key repeats but never key-up. A held control stays
// pressed until no repeat arrived for holdWindow.
const holdWindow = 180 * time.Millisecond

// touchThreshold is the horizontal drag, in cells, that steers.
const touchThreshold = 0.5

// GameModel is the Bubble Tea model running one game. It turns terminal
// input into input frames, ticks the game and forwards its events to sound
// and persistence.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	host      *Host
	writer    *storage.HighScoreWriter
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	clock     func() time.Time

	held     *core.HeldControls
	touch    *core.TouchTracker
	commands core.InputFrame // one-shot actions since the last tick

	gameState    core.GameState
	pendingReset bool
	quitting     bool
	backToMenu   bool
	scoreSaved   bool // Whether score has been saved for current game over
}

// NewGameModel creates a model for game and resets it. The persisted best
// is loaded into the runtime config before the reset.
func NewGameModel(game registry.Game, host *Host, cfg core.RuntimeConfig) GameModel {
	if host == nil {
		host = NewHost(nil, nil, nil)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.HighScore = max(cfg.HighScore, host.loadHighScore(game.ID()))

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		host:      host,
		writer:    host.highScores(game.ID()),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		clock:     time.Now,
		held:      core.NewHeldControls(holdWindow),
		touch:     core.NewTouchTracker(touchThreshold),
		commands:  core.NewInputFrame(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		on := m.host.Sound.ToggleMute()
		m.host.Logger.Debug("sound toggled", "on", on)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && m.gameState.Phase == core.PhaseIdle:
		m.backToMenu = true
		return m, tea.Quit
	case action.Held():
		m.held.Press(action, m.clock())
	case action != core.ActionNone:
		m.commands.Set(action)
	}
	return m, nil
}

// handleMouse treats the left button as a touch: pressing fires and
// dragging steers.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := m.clock()
	x := float64(msg.X)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.touch.Start(x, m.held, now)
		}
	case tea.MouseActionMotion:
		m.touch.Move(x, m.held, now)
	case tea.MouseActionRelease:
		if m.touch.Active() {
			m.touch.End(m.held)
		}
	}
	return m, nil
}

// handleResize resizes the frame buffer. The game world is rebuilt for the
// new size the next time the game is idle.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.pendingReset = true
	m.resetIfIdle()
	return m, nil
}

func (m *GameModel) resetIfIdle() {
	if !m.pendingReset || m.gameState.Phase != core.PhaseIdle {
		return
	}
	m.pendingReset = false
	m.config.HighScore = max(m.config.HighScore, m.gameState.HighScore)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
}

// handleTick builds the input frame for this tick and advances the game.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.commands.Clone()
	frame.Now = now
	if m.touch.Active() {
		// A stationary touch sends no events but keeps firing.
		m.held.Press(core.ActionFire, now)
	}
	m.held.Apply(&frame, now)

	result := m.game.Step(frame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	m.resetIfIdle()
	m.commands.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents forwards tick events to sound and high-score persistence.
func (m GameModel) handleEvents(events []core.Event) {
	m.host.Sound.Handle(events)
	for _, ev := range events {
		if ev.Kind == core.EventHighScore {
			m.writer.Observe(ev.Value)
		}
	}
}

// saveScore records the finished run.
func (m GameModel) saveScore() {
	if m.host.Store == nil || m.gameState.Score <= 0 {
		return
	}
	runID, err := m.host.Store.SaveScore(m.game.ID(), m.gameState.Score)
	if err != nil {
		m.host.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.host.Logger.Info("run recorded", "game", m.game.ID(), "score", m.gameState.Score, "run", runID)
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m GameModel) saveScreenshot() {
	path, err := m.writeScreenshot()
	if err != nil {
		m.host.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.host.Logger.Info("screenshot saved", "path", path)
}

func (m GameModel) writeScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	m.draw()
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.clock().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m GameModel) draw() {
	m.screen.Clear()
	m.game.Render(m.screen)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreenWith(m.host.Renderer, m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the local terminal until the player quits or leaves.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, host *Host, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, host, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(GameModel); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
