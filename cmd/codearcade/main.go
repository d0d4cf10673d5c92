// codearcade is a terminal platform for small programming exercises: a
// multiple-choice code quiz and a drag-and-drop snippet puzzle.
//
// Usage:
//
//	codearcade list              - List available games
//	codearcade play <game>       - Play a game
//	codearcade menu              - Start menu to pick games interactively
//	codearcade serve             - Start SSH server for remote play
//	codearcade scores <game>     - Show best results for a game
//	codearcade stats <game>      - Show per-question accuracy
//	codearcade check <path>      - Validate question bank files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for question order
//	--db <path>           - Set database path (default: ~/.codearcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/code-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/code-arcade/internal/games/puzzle"
	_ "github.com/vovakirdan/code-arcade/internal/games/quiz"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codearcade",
	Short: "Code Arcade - programming exercises in your terminal",
	Long: `Code Arcade runs small interactive programming exercises in the
terminal: a multiple-choice code quiz and a snippet drag-and-drop puzzle.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View best results
  stats    - View per-question accuracy
  check    - Validate question banks

Examples:
  codearcade list
  codearcade play quiz
  codearcade play quiz --bank ./banks/go.yaml
  codearcade menu
  codearcade serve --ssh :2222
  codearcade stats quiz`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.Dir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the process logger. A nil writer logs to
// ~/.codearcade/arcade.log; the returned closer must be called on exit.
func newLogger(w io.Writer, prefix string) (*log.Logger, func()) {
	closer := func() {}
	if w == nil {
		w = io.Discard
		path := config.UserPath("arcade.log")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				w = f
				closer = func() { _ = f.Close() }
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, closer
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
