package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/code-arcade/internal/registry"
)

var flagSession string

var statsCmd = &cobra.Command{
	Use:   "stats <game>",
	Short: "Show per-question accuracy",
	Long: `Display how often each question (or puzzle item) was answered
correctly, hardest first. With --session, list the attempts of one play
session instead.

Examples:
  codearcade stats quiz
  codearcade stats quiz --session 4b0c6c1e-...`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagSession, "session", "", "Show the attempts of one session")
}

func runStats(_ *cobra.Command, args []string) {
	gameID := args[0]
	store := mustOpenGame(gameID)
	defer store.Close()

	if flagSession != "" {
		attempts, err := store.SessionAttempts(flagSession)
		if err != nil {
			store.Close()
			fail("retrieving attempts: %v", err)
		}
		if len(attempts) == 0 {
			fmt.Printf("No attempts recorded for session %s.\n", flagSession)
			return
		}
		fmt.Printf("Session %s\n\n", flagSession)
		fmt.Printf("  %-8s  %-20s  %-6s  %s\n", "Game", "Item", "Choice", "Result")
		for _, a := range attempts {
			result := "wrong"
			if a.Correct {
				result = "correct"
			}
			fmt.Printf("  %-8s  %-20s  %-6d  %s\n", a.GameID, a.ItemID, a.Choice, result)
		}
		return
	}

	items, err := store.QuestionStats(gameID)
	if err != nil {
		store.Close()
		fail("retrieving stats: %v", err)
	}

	fmt.Printf("Question Stats - %s\n", registry.Title(gameID))
	fmt.Println()

	if len(items) == 0 {
		fmt.Println("No attempts recorded yet.")
		return
	}

	idWidth := len("Item")
	for _, it := range items {
		idWidth = max(idWidth, len(it.ItemID))
	}

	fmt.Printf("  %-*s  %8s  %7s  %s\n", idWidth, "Item", "Attempts", "Correct", "Accuracy")
	for _, it := range items {
		fmt.Printf("  %-*s  %8d  %7d  %7.0f%%\n", idWidth, it.ItemID, it.Attempts, it.Correct, it.Accuracy()*100)
	}
}
