package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// HighScoreKey returns the key under which a game's best score is stored.
func HighScoreKey(gameID string) string {
	return gameID + "-highscore"
}

// GetValue returns the value stored under key.
// ok is false when the key is absent.
func (s *Store) GetValue(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return value, true, nil
}

// SetValue stores value under key, replacing any previous value.
func (s *Store) SetValue(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// LoadHighScore returns the stored best for a game. A missing, malformed or
// negative value reads as 0, as does any read error.
func (s *Store) LoadHighScore(gameID string) int {
	raw, ok, err := s.GetValue(HighScoreKey(gameID))
	if err != nil || !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SaveHighScore stores score as the game's best if it beats the stored one.
// The stored value never decreases, whatever the number of concurrent
// writers. A malformed stored value counts as 0.
func (s *Store) SaveHighScore(gameID string, score int) error {
	if score <= 0 {
		return nil
	}
	key := HighScoreKey(gameID)
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		 WHERE CAST(kv.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		key, strconv.Itoa(score),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}
