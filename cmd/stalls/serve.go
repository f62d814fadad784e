package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stalls/internal/config"
	"github.com/vovakirdan/tui-stalls/internal/games/stalls"
	"github.com/vovakirdan/tui-stalls/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagSSHJournal  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Scores are stored per-server
with the SSH user name (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.stalls/host_key

Examples:
  stalls serve                           # Listen on :23234 with auto-generated key
  stalls serve --ssh :2222               # Listen on port 2222
  stalls serve --host-key ./my_host_key  # Use specific host key
  stalls serve --journal /var/lib/stalls # Journal every session

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSSHJournal, "journal", "", "Directory for the compressed session journal")
}

func runServe(_ *cobra.Command, _ []string) {
	// Fail on a bad config now rather than in every session
	if _, err := config.LoadStalls(flagConfig); err != nil {
		exitErr("%v", err)
	}
	stalls.SetConfigPath(flagConfig)

	level, err := parseLogLevel(flagLogLevel)
	if err != nil {
		exitErr("%v", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.JournalDir = flagSSHJournal
	cfg.GameID = stalls.ID
	cfg.TickRate = flagFPS
	cfg.Columns = resourceColumns()
	cfg.LogLevel = level

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		exitErr("creating server: %v", err)
	}

	fmt.Printf("Starting stalls SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitErr("server: %v", err)
	}
}
