package game

import (
	"errors"
	"fmt"
	"time"
)

const (
	PlayerBaseRadius  = 30.0
	SpikeOuterFactor  = 1.29 // thorns protrude past the body radius
	PointerDeadzone   = 8.0  // px, cursor vectors shorter than this count as no input
	VelocityEpsilon   = 0.05
	CollisionPadding  = 1.0
	KnockbackPerDepth = 0.25
	KnockbackMax      = 6.0

	BaseRotationSpeed = 0.02
	RotationPerSpeed  = 0.01

	EatingSeconds = 0.3
	AngrySeconds  = 1.0

	PremiumOrbRadius = 18.0
	PremiumOrbXP     = 500

	ScoreShareOnDeath = 0.75

	UsernameMaxLen = 20
)

// Config holds the tunables of one arena. Zero values are not meaningful; start
// from DefaultConfig.
type Config struct {
	MapWidth  float64 `toml:"map_width"`
	MapHeight float64 `toml:"map_height"`
	TickHz    int     `toml:"tick_hz"`

	// SnapshotEvery is the number of ticks between gameState broadcasts.
	SnapshotEvery int `toml:"snapshot_every"`

	FoodCount       int     `toml:"food_count"`
	PremiumOrbCount int     `toml:"premium_orb_count"`
	SpawnPadding    float64 `toml:"spawn_padding"`

	BaseSpeed            float64 `toml:"base_speed"`
	Acceleration         float64 `toml:"acceleration"`
	Deceleration         float64 `toml:"deceleration"`
	DirectionChangeDecel float64 `toml:"direction_change_decel"`

	BoostCooldownMs   int     `toml:"boost_cooldown_ms"`
	BoostMultiplier   float64 `toml:"boost_multiplier"`
	MaxBoostFactor    float64 `toml:"max_boost_factor"`
	BoostMinSpeedRate float64 `toml:"boost_min_speed_ratio"`

	DamageCooldownMs int     `toml:"damage_cooldown_ms"`
	FullRegenSeconds float64 `toml:"full_regen_seconds"`
	DyingSeconds     float64 `toml:"dying_seconds"`
}

func DefaultConfig() Config {
	return Config{
		MapWidth:      4000,
		MapHeight:     4000,
		TickHz:        60,
		SnapshotEvery: 1,

		FoodCount:       600,
		PremiumOrbCount: 20,
		SpawnPadding:    100,

		BaseSpeed:            6,
		Acceleration:         0.5,
		Deceleration:         0.3,
		DirectionChangeDecel: 2.0,

		BoostCooldownMs:   5000,
		BoostMultiplier:   2.5,
		MaxBoostFactor:    2.0,
		BoostMinSpeedRate: 0.3,

		DamageCooldownMs: 500,
		FullRegenSeconds: 120,
		DyingSeconds:     1.5,
	}
}

var ErrInvalidConfig = errors.New("invalid game config")

func (c Config) Validate() error {
	switch {
	case c.MapWidth <= 0 || c.MapHeight <= 0:
		return fmt.Errorf("%w: map dimensions must be positive", ErrInvalidConfig)
	case c.TickHz <= 0 || c.SnapshotEvery <= 0:
		return fmt.Errorf("%w: tick_hz and snapshot_every must be positive", ErrInvalidConfig)
	case c.FoodCount < 0 || c.PremiumOrbCount < 0:
		return fmt.Errorf("%w: orb pool sizes must not be negative", ErrInvalidConfig)
	case c.SpawnPadding < 0 || c.SpawnPadding*2 >= c.MapWidth || c.SpawnPadding*2 >= c.MapHeight:
		return fmt.Errorf("%w: spawn_padding %.1f does not fit the map", ErrInvalidConfig, c.SpawnPadding)
	case c.BaseSpeed <= 0 || c.Acceleration <= 0 || c.Deceleration <= 0 || c.DirectionChangeDecel <= 0:
		return fmt.Errorf("%w: movement rates must be positive", ErrInvalidConfig)
	case c.BoostMultiplier <= 0 || c.MaxBoostFactor <= 0 || c.BoostMinSpeedRate < 0 || c.BoostCooldownMs < 0:
		return fmt.Errorf("%w: bad speed boost settings", ErrInvalidConfig)
	case c.DamageCooldownMs < 0 || c.FullRegenSeconds <= 0 || c.DyingSeconds <= 0:
		return fmt.Errorf("%w: bad combat timings", ErrInvalidConfig)
	}
	return nil
}

func (c Config) BoostCooldown() time.Duration {
	return time.Duration(c.BoostCooldownMs) * time.Millisecond
}

func (c Config) DamageCooldown() time.Duration {
	return time.Duration(c.DamageCooldownMs) * time.Millisecond
}

// perTick converts a duration in seconds into a per-tick progress increment.
func (c Config) perTick(seconds float64) float64 {
	return 1 / (float64(c.TickHz) * seconds)
}
