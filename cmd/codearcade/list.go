package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/code-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", idWidth, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", idWidth, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", idWidth, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'codearcade play <id>' to play a game.")
}
