package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Lerp interpolates between easy and hard by the current level.
func (d *DifficultyManager) Lerp(easy, hard float64, score, ticks int) float64 {
	return easy + (hard-easy)*d.Level(score, ticks)
}

// TierLadder maps cumulative score to an integer intensity tier.
// The tier is 1 + score/PointsPerTier, capped at MaxTier, and never decreases
// as score grows.
type TierLadder struct {
	cfg TierConfig
}

// NewTierLadder creates a ladder, substituting safe values for zero fields.
func NewTierLadder(cfg TierConfig) TierLadder {
	if cfg.PointsPerTier <= 0 {
		cfg.PointsPerTier = 200
	}
	if cfg.MaxTier <= 0 {
		cfg.MaxTier = 10
	}
	return TierLadder{cfg: cfg}
}

// Tier returns the tier for a score.
func (l TierLadder) Tier(score int) int {
	if score < 0 {
		score = 0
	}
	return min(l.cfg.MaxTier, 1+score/l.cfg.PointsPerTier)
}

// Max returns the highest tier.
func (l TierLadder) Max() int {
	return l.cfg.MaxTier
}

// Escalation is a capped step curve over elapsed frames.
type Escalation struct {
	cfg EscalationConf
}

// NewEscalation creates an escalation curve.
func NewEscalation(cfg EscalationConf) Escalation {
	return Escalation{cfg: cfg}
}

// At returns the multiplier after the given number of frames.
func (e Escalation) At(frame int) float64 {
	if !e.cfg.Enabled || e.cfg.Every <= 0 {
		return e.cfg.Initial
	}
	steps := float64(frame / e.cfg.Every)
	v := e.cfg.Initial + steps*e.cfg.Step
	if e.cfg.Max > 0 && v > e.cfg.Max {
		v = e.cfg.Max
	}
	return v
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
