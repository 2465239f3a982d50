package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/void-arcade/internal/audio"
	"github.com/vovakirdan/void-arcade/internal/storage"
)

// Host bundles the services a game talks to outside its tick: score
// storage, sound, logging and the lipgloss renderer of the terminal.
// One Host serves a local run or a single SSH session.
type Host struct {
	Store    *storage.Store
	Sound    *audio.Engine
	Logger   *log.Logger
	Renderer *lipgloss.Renderer

	mu      sync.Mutex
	writers map[string]*storage.HighScoreWriter
}

// NewHost creates a host. Any service may be nil: a nil store disables
// persistence, a nil engine is silent and a nil logger discards.
func NewHost(store *storage.Store, sound *audio.Engine, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		Store:    store,
		Sound:    sound,
		Logger:   logger,
		Renderer: lipgloss.DefaultRenderer(),
		writers:  make(map[string]*storage.HighScoreWriter),
	}
}

// highScores returns the writer persisting gameID's best, starting it on
// first use.
func (h *Host) highScores(gameID string) *storage.HighScoreWriter {
	h.mu.Lock()
	defer h.mu.Unlock()

	if w, ok := h.writers[gameID]; ok {
		return w
	}
	w := storage.NewHighScoreWriter(h.Store, gameID, h.Logger)
	h.writers[gameID] = w
	return w
}

// loadHighScore returns the persisted best for gameID, or 0 without a store.
func (h *Host) loadHighScore(gameID string) int {
	if h.Store == nil {
		return 0
	}
	return h.Store.LoadHighScore(gameID)
}

// Close flushes every pending high score. The store and the sound engine
// belong to the caller.
func (h *Host) Close() {
	h.mu.Lock()
	writers := h.writers
	h.writers = make(map[string]*storage.HighScoreWriter)
	h.mu.Unlock()

	for _, w := range writers {
		w.Close()
	}
}
