package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomz197/asteroids-arcade/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best recorded games.

Examples:
  asteroids scores
  asteroids scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Asteroids")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-16s %8s %6s  %s\n", "RANK", "PLAYER", "SCORE", "WAVE", "DATE")
	fmt.Fprintf(out, "%-6s %-16s %8s %6s  %s\n", "----", "------", "-----", "----", "----")
	for i, s := range scores {
		date := "-"
		if !s.CreatedAt.IsZero() {
			date = s.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "%-6d %-16s %8d %6d  %s\n", i+1, s.Player, s.Score, s.Wave, date)
	}
	return nil
}
