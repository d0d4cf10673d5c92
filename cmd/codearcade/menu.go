package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/code-arcade/internal/platform/tui"
	"github.com/vovakirdan/code-arcade/internal/registry"
)

var flagSingleProgram bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  codearcade menu
  codearcade menu --fps 30
  codearcade menu --bank ./banks
  codearcade menu --single`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSingleProgram, "single", false, "Run menu, games and scoreboard in one program (as over SSH)")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(nil, "codearcade")
	defer closeLog()
	configureGames(logger, "")

	store := openStore(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	if flagSingleProgram {
		if err := tui.RunSession(store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.GameID == "" {
			return
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("creating game", "game", menuResult.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
