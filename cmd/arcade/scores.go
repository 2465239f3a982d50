package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-arcade/internal/registry"
	"github.com/vovakirdan/void-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores and play statistics for the specified game.

Examples:
  arcade scores voidtripper
  arcade scores invaders --limit 25
  arcade scores invaders --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("error clearing scores: %w", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, max(flagScoresLimit, 1))
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n",
			i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"), formatRunID(entry.RunID))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil || stats == nil {
		return nil
	}
	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d   Average: %.1f", stats.GamesCount, stats.HighScore, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("   Last played: %s", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}

// formatRunID shows the leading group of a run UUID.
func formatRunID(id string) string {
	if id == "" {
		return "-"
	}
	head, _, _ := strings.Cut(id, "-")
	return head
}
