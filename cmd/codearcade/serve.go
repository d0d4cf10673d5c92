package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/code-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a game picker menu.
Scores and answer history are stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.codearcade/host_key

Examples:
  codearcade serve                           # Listen on :23234
  codearcade serve --ssh :2222               # Listen on port 2222
  codearcade serve --host-key ./my_host_key  # Use specific host key
  codearcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagBank, "bank", "", "Question bank file or directory for the quiz")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 32, "Maximum concurrent sessions (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, _ := newLogger(os.Stderr, "codearcade-ssh")
	configureGames(logger, "")

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		MaxSessions: flagMaxSessions,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	logger.Info("starting SSH server", "addr", cfg.Address)
	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
