package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/code-arcade/internal/registry"
	"github.com/vovakirdan/code-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best results for a game",
	Long: `Display the top 10 results for the specified game.

Examples:
  codearcade scores quiz
  codearcade scores puzzle
  codearcade scores quiz --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and attempts for the game")
}

// mustOpenGame validates the game ID and opens the database, exiting on error.
func mustOpenGame(gameID string) *storage.Store {
	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'codearcade list' to see available games)", gameID)
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	return store
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	store := mustOpenGame(gameID)
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared results for %s.\n", registry.Title(gameID))
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("Best Results - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'codearcade play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		result := fmt.Sprintf("%d/%d", entry.Score, entry.MaxScore)
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, result, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
