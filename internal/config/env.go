package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already present. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ApplyEnv overrides host settings from ASTEROIDS_* environment variables.
func (c *Config) ApplyEnv() {
	c.SSH.Host = GetEnv("ASTEROIDS_SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("ASTEROIDS_SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("ASTEROIDS_SSH_HOST_KEY", c.SSH.HostKeyPath)
	c.Storage.Path = GetEnv("ASTEROIDS_DB", c.Storage.Path)
}
