// Package config holds every tunable game parameter and loads them from YAML.
package config

import (
	"errors"
	"fmt"
)

// Config is the complete game configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Ship     ShipConfig     `yaml:"ship"`
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Particle ParticleConfig `yaml:"particle"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Display  DisplayConfig  `yaml:"display"`
	SSH      SSHConfig      `yaml:"ssh"`
	Storage  StorageConfig  `yaml:"storage"`
}

// GameConfig controls waves and frame cadence.
type GameConfig struct {
	InitialAsteroids int     `yaml:"initial_asteroids"` // Size of the first wave
	SafeZone         float64 `yaml:"safe_zone"`         // Spawn clearance around the ship on each axis
	SpawnAttempts    int     `yaml:"spawn_attempts"`    // Rejection sampling budget per coordinate
	FPS              int     `yaml:"fps"`
}

// ShipConfig controls the player ship. Rates are per frame.
type ShipConfig struct {
	Radius        float64 `yaml:"radius"`
	RotationSpeed float64 `yaml:"rotation_speed"` // Degrees per frame
	Thrust        float64 `yaml:"thrust"`         // Acceleration per frame while thrusting
	Inertia       float64 `yaml:"inertia"`        // Velocity multiplier per frame (1.0 = no damping)
	MaxSpeed      float64 `yaml:"max_speed"`
	FireCooldown  int     `yaml:"fire_cooldown"` // Frames between shots
}

// AsteroidConfig controls asteroid size tiers and drift.
type AsteroidConfig struct {
	RadiusLarge   float64 `yaml:"radius_large"`
	RadiusMedium  float64 `yaml:"radius_medium"`
	RadiusSmall   float64 `yaml:"radius_small"`
	Speed         float64 `yaml:"speed"`          // Max drift per axis per frame
	RotationSpeed float64 `yaml:"rotation_speed"` // Max spin in degrees per frame
}

// BulletConfig controls projectiles.
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Lifetime int     `yaml:"lifetime"` // Frames
}

// ParticleConfig controls visual effects.
type ParticleConfig struct {
	Enabled        bool    `yaml:"enabled"`
	ExplosionCount int     `yaml:"explosion_count"` // Particles per large asteroid
	Speed          float64 `yaml:"speed"`
	Lifetime       int     `yaml:"lifetime"` // Frames
}

// ScoringConfig holds points per asteroid size tier.
type ScoringConfig struct {
	Large  int `yaml:"large"`
	Medium int `yaml:"medium"`
	Small  int `yaml:"small"`
}

// DisplayConfig controls how world units map to terminal cells.
type DisplayConfig struct {
	UnitsPerColumn float64 `yaml:"units_per_column"` // World units per terminal column (rows get 2 sub-pixels)
	MaxColumns     int     `yaml:"max_columns"`
	MaxRows        int     `yaml:"max_rows"`
}

// SSHConfig holds SSH server settings.
type SSHConfig struct {
	Host        string `yaml:"host"`
	Port        string `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// StorageConfig holds the high score database location.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// MaxSafeZone is the largest accepted spawn clearance.
const MaxSafeZone = 400

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Game.InitialAsteroids < 1:
		return fmt.Errorf("%w: game.initial_asteroids must be positive", ErrInvalidConfig)
	case c.Game.SafeZone < 0 || c.Game.SafeZone > MaxSafeZone:
		return fmt.Errorf("%w: game.safe_zone must be within [0, %d]", ErrInvalidConfig, MaxSafeZone)
	case c.Game.FPS < 1:
		return fmt.Errorf("%w: game.fps must be positive", ErrInvalidConfig)
	case c.Ship.Radius <= 0 || c.Bullet.Radius <= 0:
		return fmt.Errorf("%w: ship and bullet radius must be positive", ErrInvalidConfig)
	case c.Bullet.Lifetime < 1 || c.Bullet.Speed <= 0:
		return fmt.Errorf("%w: bullet lifetime and speed must be positive", ErrInvalidConfig)
	case !(c.Asteroid.RadiusLarge > c.Asteroid.RadiusMedium && c.Asteroid.RadiusMedium > c.Asteroid.RadiusSmall && c.Asteroid.RadiusSmall > 0):
		return fmt.Errorf("%w: asteroid radii must satisfy large > medium > small > 0", ErrInvalidConfig)
	case !(c.Scoring.Large > c.Scoring.Medium && c.Scoring.Medium > c.Scoring.Small && c.Scoring.Small > 0):
		return fmt.Errorf("%w: scoring must satisfy large > medium > small > 0", ErrInvalidConfig)
	case c.Display.UnitsPerColumn <= 0:
		return fmt.Errorf("%w: display.units_per_column must be positive", ErrInvalidConfig)
	}
	return nil
}
