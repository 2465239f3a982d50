package voidtripper

import "time"

// Point is a logical-pixel position.
type Point struct {
	X, Y float64
}

const playerTrailLength = 20

// Player is the rocket at the bottom of the world.
type Player struct {
	X, Y            float64
	SizeMult        float64
	InvincibleUntil time.Duration
	Trail           []Point
}

// remember pushes the current position onto the echo trail.
func (p *Player) remember() {
	p.Trail = pushTrail(p.Trail, Point{p.X, p.Y}, playerTrailLength)
}

// Projectile is a player shot. Piece projectiles render as pawns.
type Projectile struct {
	X, Y  float64
	VY    float64
	Trail []Point
	Piece bool
}

// Variant distinguishes special asteroids.
type Variant int

const (
	VariantPlain Variant = iota
	VariantPiece
	VariantDialogue
)

// Asteroid is a falling obstacle.
type Asteroid struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Rotation float64
	RotSpeed float64
	Vertices []float64 // Radius factors around the outline
	Hue      float64
	Phase    float64
	Variant  Variant
	Glyph    string // Chess piece for VariantPiece
	Text     string // Speech for VariantDialogue
}

// PowerUp is a falling pickup.
type PowerUp struct {
	X, Y     float64
	VY       float64
	Kind     PowerUpKind
	Rotation float64
	Hue      float64
}

// Particle is one explosion fragment. Life runs from 1 down to 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Hue    float64
	Size   float64
}

// Explosion groups the particles spawned by one blast.
type Explosion struct {
	X, Y      float64
	Particles []Particle
}

// OverlayStyle selects how an overlay message is drawn.
type OverlayStyle int

const (
	StyleMeta OverlayStyle = iota
	StylePiece
	StyleGlitch
	StyleNegative
)

const (
	overlayLife     = 180
	quizOverlayLife = 120
)

// Overlay is a fading text message in world coordinates.
type Overlay struct {
	Text    string
	X, Y    float64
	Life    int
	MaxLife int
	Style   OverlayStyle
}

// Glitch is a displaced rectangle of the rendered frame.
type Glitch struct {
	X, Y, W, H       float64
	OffsetX, OffsetY float64
	Life             float64
}

// Star is a background star.
type Star struct {
	X, Y  float64
	Speed float64
	Hue   float64
}

// pushTrail appends p and keeps at most n positions.
func pushTrail(trail []Point, p Point, n int) []Point {
	trail = append(trail, p)
	if len(trail) > n {
		trail = trail[len(trail)-n:]
	}
	return trail
}
