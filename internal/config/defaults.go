package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/voidtripper.yaml
var defaultVoidYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultVoidConfig returns the default Void Tripper configuration.
func DefaultVoidConfig() VoidConfig {
	return VoidConfig{
		World: VoidWorld{
			CellWidth:     8,
			CellHeight:    16,
			StarCount:     150,
			MaxFrameDelta: 250 * time.Millisecond,
		},
		Player: VoidPlayer{
			Speed:              10,
			BoundsMargin:       25,
			BottomOffset:       120,
			Lives:              3,
			HitRadius:          20,
			SpawnInvincibility: 2 * time.Second,
			HitInvincibility:   3 * time.Second,
		},
		Weapons: VoidWeapons{
			ShotInterval:     150 * time.Millisecond,
			ProjectileSpeed:  15,
			MuzzleOffset:     35,
			MultiShotOffsets: []float64{-20, 0, 20},
			TrailLength:      10,
			ScoreMultiplier:  1,
		},
		Asteroids: VoidAsteroids{
			MinSize:         25,
			SizeRange:       40,
			MinSpeed:        1.5,
			SpeedRange:      2.5,
			SpawnAfterFrame: 60,
			SpawnBase:       100,
			SpawnStep:       12,
			SpawnFloor:      30,
			PieceChance:     0.3,
			DialogueChance:  0.15,
			DialogueMinTier: 3,
		},
		PowerUps: VoidPowerUps{
			SpawnEvery:   300,
			SpawnChance:  0.5,
			FallSpeed:    2,
			PickupRadius: 40,
			Duration:     8 * time.Second,
			QuizReward:   500,
		},
		Tiers: TierConfig{
			PointsPerTier: 200,
			MaxTier:       10,
		},
		Escalation: EscalationConf{
			Enabled: true,
			Initial: 1,
			Step:    0.4,
			Every:   500,
			Max:     6,
		},
		TimeWarp: VoidTimeWarp{
			Smoothing:  0.1,
			SlowTarget: 0.3,
			Wobble:     0.2,
		},
		Effects: VoidEffects{
			ShakeDecay:      0.9,
			AberrationDecay: 0.95,
			Epsilon:         0.5,
		},
		Events: VoidEvents{
			MetaCooldown:      15 * time.Second,
			MetaChance:        0.01,
			GlitchChance:      0.005,
			InversionChance:   0.001,
			InversionMinTier:  3,
			DecoyChance:       0.001,
			DecoyMinTier:      4,
			DecoyDuration:     500 * time.Millisecond,
			FakeCrashMinTier:  7,
			FakeCrashChance:   0.3,
			FakeCrashDuration: 1500 * time.Millisecond,
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: InvadersField{
			Width:      280,
			Height:     320,
			CellWidth:  8,
			CellHeight: 16,
		},
		Player: InvadersPlayer{
			Width:        24,
			Height:       16,
			Speed:        5,
			BulletSpeed:  8,
			ShotCooldown: 300 * time.Millisecond,
		},
		Swarm: InvadersSwarm{
			Rows:         4,
			Cols:         6,
			Size:         20,
			SpacingX:     40,
			SpacingY:     30,
			OffsetX:      30,
			OffsetY:      20,
			Step:         10,
			Drop:         15,
			MoveInterval: 500 * time.Millisecond,
			MinInterval:  250 * time.Millisecond,
			FireInterval: 1500 * time.Millisecond,
			BulletSpeed:  4,
			Points:       10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 240,
			},
		},
	}
}
