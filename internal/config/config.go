// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// VoidConfig contains all configuration for the Void Tripper shooter.
// Distances are logical pixels, speeds are pixels per tick at time-warp 1.
type VoidConfig struct {
	World      VoidWorld      `yaml:"world"`
	Player     VoidPlayer     `yaml:"player"`
	Weapons    VoidWeapons    `yaml:"weapons"`
	Asteroids  VoidAsteroids  `yaml:"asteroids"`
	PowerUps   VoidPowerUps   `yaml:"powerups"`
	Tiers      TierConfig     `yaml:"tiers"`
	Escalation EscalationConf `yaml:"escalation"`
	TimeWarp   VoidTimeWarp   `yaml:"time_warp"`
	Effects    VoidEffects    `yaml:"effects"`
	Events     VoidEvents     `yaml:"events"`
}

// VoidWorld defines the logical playfield.
type VoidWorld struct {
	CellWidth     int           `yaml:"cell_width"`      // Logical pixels per terminal column
	CellHeight    int           `yaml:"cell_height"`     // Logical pixels per terminal row
	StarCount     int           `yaml:"star_count"`      // Background stars
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"` // Clamp for one tick of session time
}

// VoidPlayer defines player parameters.
type VoidPlayer struct {
	Speed              float64       `yaml:"speed"`               // Pixels per tick
	BoundsMargin       float64       `yaml:"bounds_margin"`       // Closest distance to the side walls
	BottomOffset       float64       `yaml:"bottom_offset"`       // Distance from the bottom edge
	Lives              int           `yaml:"lives"`               // Lives per session
	HitRadius          float64       `yaml:"hit_radius"`          // Added to asteroid size for player hits
	SpawnInvincibility time.Duration `yaml:"spawn_invincibility"` // Grace period at session start
	HitInvincibility   time.Duration `yaml:"hit_invincibility"`   // Grace period after being hit
}

// VoidWeapons defines projectile parameters.
type VoidWeapons struct {
	ShotInterval     time.Duration `yaml:"shot_interval"`     // Minimum gap between shots at warp 1
	ProjectileSpeed  float64       `yaml:"projectile_speed"`  // Upward speed
	MuzzleOffset     float64       `yaml:"muzzle_offset"`     // Spawn distance above the player
	MultiShotOffsets []float64     `yaml:"multishot_offsets"` // Lateral offsets while spread shot is active
	TrailLength      int           `yaml:"trail_length"`      // Remembered positions per projectile
	ScoreMultiplier  int           `yaml:"score_multiplier"`  // Applied to every kill
}

// VoidAsteroids defines obstacle spawning.
type VoidAsteroids struct {
	MinSize         float64 `yaml:"min_size"`
	SizeRange       float64 `yaml:"size_range"`
	MinSpeed        float64 `yaml:"min_speed"`
	SpeedRange      float64 `yaml:"speed_range"`
	SpawnAfterFrame int     `yaml:"spawn_after_frame"` // Quiet period at session start
	SpawnBase       int     `yaml:"spawn_base"`        // Cadence in frames at difficulty 0
	SpawnStep       float64 `yaml:"spawn_step"`        // Frames removed per difficulty point
	SpawnFloor      int     `yaml:"spawn_floor"`       // Fastest cadence
	PieceChance     float64 `yaml:"piece_chance"`      // Chess piece variant while the dimension shift is on
	DialogueChance  float64 `yaml:"dialogue_chance"`   // Talking asteroid variant
	DialogueMinTier int     `yaml:"dialogue_min_tier"`
}

// VoidPowerUps defines power-up spawning and effects.
type VoidPowerUps struct {
	SpawnEvery   int           `yaml:"spawn_every"`   // Frames between spawn attempts
	SpawnChance  float64       `yaml:"spawn_chance"`  // Probability per attempt
	FallSpeed    float64       `yaml:"fall_speed"`    // Pixels per tick
	PickupRadius float64       `yaml:"pickup_radius"` // Scaled by the size multiplier
	Duration     time.Duration `yaml:"duration"`      // Length of timed effects
	QuizReward   int           `yaml:"quiz_reward"`   // Points for a "correct" quiz answer
	QuizTimeout  time.Duration `yaml:"quiz_timeout"`  // 0 waits forever
}

// VoidTimeWarp defines slow-motion smoothing.
type VoidTimeWarp struct {
	Smoothing  float64 `yaml:"smoothing"`   // Fraction of the gap closed per tick
	SlowTarget float64 `yaml:"slow_target"` // Target while time slow is active
	Wobble     float64 `yaml:"wobble"`      // Sinusoidal drift amplitude at max tier
}

// VoidEffects defines cosmetic decay.
type VoidEffects struct {
	ShakeDecay      float64 `yaml:"shake_decay"`
	AberrationDecay float64 `yaml:"aberration_decay"`
	Epsilon         float64 `yaml:"epsilon"` // Values below are snapped to zero
}

// VoidEvents defines random and scripted events.
type VoidEvents struct {
	MetaCooldown      time.Duration `yaml:"meta_cooldown"`
	MetaChance        float64       `yaml:"meta_chance"`
	GlitchChance      float64       `yaml:"glitch_chance"`    // Per tier
	InversionChance   float64       `yaml:"inversion_chance"` // Per tier
	InversionMinTier  int           `yaml:"inversion_min_tier"`
	DecoyChance       float64       `yaml:"decoy_chance"`
	DecoyMinTier      int           `yaml:"decoy_min_tier"`
	DecoyDuration     time.Duration `yaml:"decoy_duration"`
	FakeCrashMinTier  int           `yaml:"fake_crash_min_tier"`
	FakeCrashChance   float64       `yaml:"fake_crash_chance"`
	FakeCrashDuration time.Duration `yaml:"fake_crash_duration"`
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Field      InvadersField    `yaml:"field"`
	Player     InvadersPlayer   `yaml:"player"`
	Swarm      InvadersSwarm    `yaml:"swarm"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersField defines the logical playfield and its mapping to cells.
type InvadersField struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// InvadersPlayer defines the cannon.
type InvadersPlayer struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Speed        int           `yaml:"speed"`
	BulletSpeed  int           `yaml:"bullet_speed"`
	ShotCooldown time.Duration `yaml:"shot_cooldown"`
}

// InvadersSwarm defines the invader grid and its march.
type InvadersSwarm struct {
	Rows         int           `yaml:"rows"`
	Cols         int           `yaml:"cols"`
	Size         int           `yaml:"size"`
	SpacingX     int           `yaml:"spacing_x"`
	SpacingY     int           `yaml:"spacing_y"`
	OffsetX      int           `yaml:"offset_x"`
	OffsetY      int           `yaml:"offset_y"`
	Step         int           `yaml:"step"`
	Drop         int           `yaml:"drop"`
	MoveInterval time.Duration `yaml:"move_interval"` // At difficulty 0
	MinInterval  time.Duration `yaml:"min_interval"`  // At difficulty 1
	FireInterval time.Duration `yaml:"fire_interval"`
	BulletSpeed  int           `yaml:"bullet_speed"`
	Points       int           `yaml:"points"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// TierConfig defines the score-driven intensity ladder.
type TierConfig struct {
	PointsPerTier int `yaml:"points_per_tier"`
	MaxTier       int `yaml:"max_tier"`
}

// EscalationConf defines the frame-driven difficulty multiplier.
type EscalationConf struct {
	Enabled bool    `yaml:"enabled"`
	Initial float64 `yaml:"initial"`
	Step    float64 `yaml:"step"`
	Every   int     `yaml:"every"` // Frames between steps
	Max     float64 `yaml:"max"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
