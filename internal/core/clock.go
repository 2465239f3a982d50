package core

import "time"

// SimClock converts host wall-clock readings into a session clock.
// The session clock only moves when Advance is called, so a game can stop it
// during pauses, and each advance is clamped so a stalled host does not
// fast-forward the world.
type SimClock struct {
	now      time.Duration
	last     time.Time
	maxDelta time.Duration
}

// NewSimClock creates a clock at zero. maxDelta <= 0 disables clamping.
func NewSimClock(maxDelta time.Duration) SimClock {
	return SimClock{maxDelta: maxDelta}
}

// Now returns the elapsed session time.
func (c *SimClock) Now() time.Duration {
	return c.now
}

// Sync records a wall-clock reading without advancing session time.
// Used when resuming from a pause.
func (c *SimClock) Sync(wall time.Time) {
	c.last = wall
}

// Advance moves session time forward by the wall-clock delta since the last
// reading and returns the applied delta. The first reading only syncs.
func (c *SimClock) Advance(wall time.Time) time.Duration {
	if wall.IsZero() {
		return 0
	}
	if c.last.IsZero() {
		c.last = wall
		return 0
	}
	delta := wall.Sub(c.last)
	c.last = wall
	if delta < 0 {
		delta = 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	c.now += delta
	return delta
}

// Reset returns the clock to zero and forgets the last wall reading.
func (c *SimClock) Reset() {
	c.now = 0
	c.last = time.Time{}
}

// Set forces session time. Used by snapshot restore and tests.
func (c *SimClock) Set(now time.Duration) {
	c.now = now
}
