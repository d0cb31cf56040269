// asteroids plays the arcade game in the local terminal.
//
// Usage:
//
//	asteroids              - Play a game
//	asteroids scores       - Show the high score table
//
// Flags:
//
//	--config <path>     - YAML config file (default: search ~/.asteroids, ./configs)
//	--seed <value>      - RNG seed for reproducible games
//	--fps <rate>        - Override the frame rate
//	--asteroids <n>     - Override the initial wave size
//	--db <path>         - Scores database (default from config)
//	--log <path>        - Write logs to a file
//	--profile <dir>     - Write a CPU profile to dir
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomz197/asteroids-arcade/internal/config"
)

var (
	flagConfig    string
	flagSeed      int64
	flagFPS       int
	flagAsteroids int
	flagDBPath    string
	flagLogPath   string
	flagProfile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `Fly a ship through waves of asteroids, rendered with half-block
characters in the terminal.

Controls: A/D or arrows rotate, W or up thrusts, SPACE fires,
ENTER restarts after game over, Q quits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.Flags().IntVar(&flagAsteroids, "asteroids", 0, "Initial asteroid count (0 = from config)")
	rootCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a CPU profile into this directory")

	rootCmd.AddCommand(scoresCmd)
}

// loadConfig reads the config file, environment and flag overrides.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv()

	if flagFPS > 0 {
		cfg.Game.FPS = flagFPS
	}
	if flagAsteroids > 0 {
		cfg.Game.InitialAsteroids = flagAsteroids
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
