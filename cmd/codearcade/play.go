package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/code-arcade/internal/core"
	"github.com/vovakirdan/code-arcade/internal/games/puzzle"
	"github.com/vovakirdan/code-arcade/internal/games/quiz"
	"github.com/vovakirdan/code-arcade/internal/platform/tui"
	"github.com/vovakirdan/code-arcade/internal/registry"
	"github.com/vovakirdan/code-arcade/internal/storage"
)

var (
	flagConfig string
	flagBank   string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Quiz controls:
  Up/Down     - Move focus
  1-4         - Check an answer
  Space       - Toggle focused answer / press focused button
  Enter       - Submit, or skip to the next question
  N           - Next question (after grading)

Puzzle controls:
  Mouse       - Drag the snippet onto the gap in the code
  Space/Enter - Pick up or drop the snippet
  Arrows      - Move the held snippet
  Esc         - Put the snippet back

Common:
  P           - Pause
  R           - Restart (after finishing)
  ?           - Help
  Q/Ctrl+C    - Quit

Examples:
  codearcade play quiz
  codearcade play quiz --bank ./banks
  codearcade play quiz --config ./my-quiz.yaml
  codearcade play puzzle`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagBank, "bank", "", "Question bank file or directory for the quiz")
	}
}

// configureGames hands the command-line settings to the game packages.
// --config goes to gameID only; an empty gameID gives it to every game.
func configureGames(logger *log.Logger, gameID string) {
	quiz.SetLogger(logger.WithPrefix("quiz"))
	quiz.SetBankPath(flagBank)
	if gameID == "" || gameID == "quiz" {
		quiz.SetConfigPath(flagConfig)
	}

	puzzle.SetLogger(logger.WithPrefix("puzzle"))
	if gameID == "" || gameID == "puzzle" {
		puzzle.SetConfigPath(flagConfig)
	}
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'codearcade list' to see available games)", gameID)
	}

	logger, closeLog := newLogger(nil, "codearcade")
	defer closeLog()
	configureGames(logger, gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, logger, runtimeConfig())
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
