package core

// EventKind identifies something noteworthy that happened during a tick.
// Platforms react to events (sound, persistence) so that games never do I/O.
type EventKind int

const (
	EventShot EventKind = iota
	EventExplosion
	EventPlayerHit
	EventPowerUp
	EventLevelUp
	EventGameOver
	EventHighScore
	EventWin
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventExplosion:
		return "explosion"
	case EventPlayerHit:
		return "player_hit"
	case EventPowerUp:
		return "powerup"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventHighScore:
		return "high_score"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is a single tick event. Value carries kind-specific data
// (the new best for EventHighScore, the level for EventLevelUp).
type Event struct {
	Kind  EventKind
	Value int
}

// HasEvent reports whether events contains at least one event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
