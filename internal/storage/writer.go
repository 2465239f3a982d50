package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// HighScoreWriter persists a game's best score off the simulation path.
// Observe never blocks: values are coalesced into a one-slot buffer and a
// background goroutine writes the largest one seen.
type HighScoreWriter struct {
	store  *Store
	gameID string
	logger *log.Logger

	mu      sync.Mutex
	closed  bool
	pending chan int
	done    chan struct{}
}

// NewHighScoreWriter starts a writer for gameID. A nil store yields a writer
// that drops everything. A nil logger discards write errors.
func NewHighScoreWriter(store *Store, gameID string, logger *log.Logger) *HighScoreWriter {
	w := &HighScoreWriter{
		store:   store,
		gameID:  gameID,
		logger:  logger,
		pending: make(chan int, 1),
		done:    make(chan struct{}),
	}
	if store == nil {
		w.closed = true
		close(w.done)
		return w
	}
	go w.run()
	return w
}

// Observe queues score for persistence.
func (w *HighScoreWriter) Observe(score int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	select {
	case w.pending <- score:
		return
	default:
	}

	// Slot taken: keep the larger value.
	select {
	case prev := <-w.pending:
		score = max(score, prev)
	default:
	}
	select {
	case w.pending <- score:
	default:
	}
}

// Close flushes the queued value and stops the writer. It is safe to call
// more than once.
func (w *HighScoreWriter) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.pending)
	}
	w.mu.Unlock()
	<-w.done
}

func (w *HighScoreWriter) run() {
	defer close(w.done)
	for score := range w.pending {
		if err := w.store.SaveHighScore(w.gameID, score); err != nil && w.logger != nil {
			w.logger.Error("cannot persist high score", "game", w.gameID, "score", score, "error", err)
		}
	}
}
