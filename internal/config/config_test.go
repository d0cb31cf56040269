package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded config should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() differ:\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  initial_asteroids: 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Game.InitialAsteroids != 5 {
		t.Errorf("InitialAsteroids = %d, want 5", cfg.Game.InitialAsteroids)
	}
	if cfg.Ship.Radius != Default().Ship.Radius {
		t.Errorf("Ship.Radius = %v, want default %v", cfg.Ship.Radius, Default().Ship.Radius)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no asteroids", func(c *Config) { c.Game.InitialAsteroids = 0 }},
		{"huge safe zone", func(c *Config) { c.Game.SafeZone = MaxSafeZone + 1 }},
		{"zero fps", func(c *Config) { c.Game.FPS = 0 }},
		{"unordered radii", func(c *Config) { c.Asteroid.RadiusSmall = c.Asteroid.RadiusLarge }},
		{"unordered scoring", func(c *Config) { c.Scoring.Small = c.Scoring.Large + 1 }},
		{"bullet lifetime", func(c *Config) { c.Bullet.Lifetime = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("bullet:\n  lifetime: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bullet.Lifetime != 10 {
		t.Errorf("Bullet.Lifetime = %d, want 10", cfg.Bullet.Lifetime)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing explicit path should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ASTEROIDS_SSH_PORT", "2323")
	t.Setenv("ASTEROIDS_DB", "/tmp/scores.db")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.SSH.Port != "2323" {
		t.Errorf("SSH.Port = %q, want 2323", cfg.SSH.Port)
	}
	if cfg.Storage.Path != "/tmp/scores.db" {
		t.Errorf("Storage.Path = %q, want /tmp/scores.db", cfg.Storage.Path)
	}
	if cfg.SSH.Host != Default().SSH.Host {
		t.Errorf("SSH.Host changed without env var: %q", cfg.SSH.Host)
	}
}

func TestLoadDotEnvIgnoresMissing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadDotEnv on missing file: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandHome(/abs/path) = %q, %v", got, err)
	}
}
