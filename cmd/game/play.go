package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/loop"
	"github.com/tomz197/asteroids-arcade/internal/storage"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(flagProfile), profile.NoShutdownHook).Stop()
	}

	// Scores are optional; play without them if the database is unavailable.
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("high scores disabled", "err", err)
	} else {
		defer store.Close()
	}

	player := config.GetEnv("USER", "player")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Config: &cfg,
		Logger: logger,
		Seed:   flagSeed,
	}
	if store != nil {
		opts.BestScore = func() int {
			best, err := store.HighScore()
			if err != nil {
				logger.Warn("cannot read high score", "err", err)
			}
			return best
		}
		opts.OnGameOver = func(score, wave int) {
			if _, err := store.SaveScore(player, score, wave); err != nil {
				logger.Error("cannot save score", "err", err)
			}
		}
	}

	if err := loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, opts); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// openLogger logs to path, or discards logs when path is empty: stdout and
// stderr belong to the game screen.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "asteroids",
	})
	return logger, func() { f.Close() }, nil
}
