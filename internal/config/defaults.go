package config

import _ "embed"

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			InitialAsteroids: 3,
			SafeZone:         60,
			SpawnAttempts:    100,
			FPS:              60,
		},
		Ship: ShipConfig{
			Radius:        20,
			RotationSpeed: 6,
			Thrust:        0.15,
			Inertia:       0.99,
			MaxSpeed:      10,
			FireCooldown:  18,
		},
		Asteroid: AsteroidConfig{
			RadiusLarge:   80,
			RadiusMedium:  40,
			RadiusSmall:   20,
			Speed:         1.5,
			RotationSpeed: 1,
		},
		Bullet: BulletConfig{
			Speed:    10,
			Radius:   2,
			Lifetime: 60,
		},
		Particle: ParticleConfig{
			Enabled:        true,
			ExplosionCount: 12,
			Speed:          3,
			Lifetime:       30,
		},
		Scoring: ScoringConfig{
			Large:  100,
			Medium: 50,
			Small:  20,
		},
		Display: DisplayConfig{
			UnitsPerColumn: 8,
			MaxColumns:     200,
			MaxRows:        60,
		},
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
		},
		Storage: StorageConfig{
			Path: "~/.asteroids/scores.db",
		},
	}
}
