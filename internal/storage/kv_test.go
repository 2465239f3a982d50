package storage

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHighScoreKey(t *testing.T) {
	if got := HighScoreKey("invaders"); got != "invaders-highscore" {
		t.Errorf("HighScoreKey() = %q", got)
	}
	if got := HighScoreKey("voidtripper"); got != "voidtripper-highscore" {
		t.Errorf("HighScoreKey() = %q", got)
	}
}

func TestGetSetValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.GetValue("missing"); err != nil || ok {
		t.Fatalf("GetValue(missing) = ok %v err %v", ok, err)
	}

	if err := store.SetValue("theme", "neon"); err != nil {
		t.Fatalf("SetValue() failed: %v", err)
	}
	if err := store.SetValue("theme", "void"); err != nil {
		t.Fatalf("SetValue() overwrite failed: %v", err)
	}
	v, ok, err := store.GetValue("theme")
	if err != nil || !ok || v != "void" {
		t.Errorf("GetValue() = %q %v %v, expected void", v, ok, err)
	}
}

func TestLoadHighScoreTolerance(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "1250", 1250},
		{"zero", "0", 0},
		{"negative", "-40", 0},
		{"malformed", "lots", 0},
		{"empty", "", 0},
		{"float", "12.5", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := store.SetValue(HighScoreKey("voidtripper"), tc.value); err != nil {
				t.Fatalf("SetValue() failed: %v", err)
			}
			if got := store.LoadHighScore("voidtripper"); got != tc.want {
				t.Errorf("LoadHighScore() = %d, expected %d", got, tc.want)
			}
		})
	}

	if got := store.LoadHighScore("never-played"); got != 0 {
		t.Errorf("absent key = %d, expected 0", got)
	}
}

func TestSaveHighScoreOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		save, want int
	}{
		{500, 500},
		{300, 500},
		{500, 500},
		{501, 501},
		{-5, 501},
	}
	for _, s := range steps {
		if err := store.SaveHighScore("invaders", s.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s.save, err)
		}
		if got := store.LoadHighScore("invaders"); got != s.want {
			t.Errorf("after saving %d: best = %d, expected %d", s.save, got, s.want)
		}
	}
}

func TestSaveHighScoreReplacesMalformed(t *testing.T) {
	store := openTestStore(t)
	store.SetValue(HighScoreKey("voidtripper"), "garbage")

	if err := store.SaveHighScore("voidtripper", 10); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got := store.LoadHighScore("voidtripper"); got != 10 {
		t.Errorf("best = %d, expected 10", got)
	}
}

func TestSaveHighScoreConcurrentWriters(t *testing.T) {
	store := openTestStore(t)

	const writers, saves = 8, 50
	var wg sync.WaitGroup
	errs := make(chan error, writers*saves)
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range saves {
				// Interleave rising and falling values across writers.
				score := (i+1)*writers + w
				if w%2 == 1 {
					score = (saves-i)*writers + w
				}
				if err := store.SaveHighScore("voidtripper", score); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent SaveHighScore failed: %v", err)
	}
	want := saves*writers + writers - 1
	if got := store.LoadHighScore("voidtripper"); got != want {
		t.Errorf("best = %d, expected %d", got, want)
	}
}

func TestHighScoreWritersShareStore(t *testing.T) {
	store := openTestStore(t)

	// One writer per session, all on the same game.
	var ws []*HighScoreWriter
	for range 4 {
		ws = append(ws, NewHighScoreWriter(store, "invaders", nil))
	}
	for i, w := range ws {
		for score := 10; score <= 200; score += 10 {
			w.Observe(score + i)
		}
	}
	for _, w := range ws {
		w.Close()
	}

	if got := store.LoadHighScore("invaders"); got != 203 {
		t.Errorf("best = %d, expected 203", got)
	}
}

func TestHighScoreWriterFlushesOnClose(t *testing.T) {
	store := openTestStore(t)
	w := NewHighScoreWriter(store, "voidtripper", nil)

	for score := 10; score <= 1000; score += 10 {
		w.Observe(score)
	}
	w.Close()

	if got := store.LoadHighScore("voidtripper"); got != 1000 {
		t.Errorf("best = %d, expected the last observed 1000", got)
	}

	// Observing after close is ignored and Close is idempotent.
	w.Observe(5000)
	w.Close()
	if got := store.LoadHighScore("voidtripper"); got != 1000 {
		t.Errorf("best = %d after late observe, expected 1000", got)
	}
}

func TestHighScoreWriterNilStore(t *testing.T) {
	w := NewHighScoreWriter(nil, "voidtripper", nil)
	w.Observe(10)
	w.Close()
}

func TestHighScoreWriterLogsFailures(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Prefix: "test"})
	w := NewHighScoreWriter(store, "invaders", logger)
	w.Observe(30)
	w.Close()

	if !strings.Contains(buf.String(), "cannot persist high score") {
		t.Errorf("expected a logged failure, got %q", buf.String())
	}
}
