package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stalls/internal/config"
	"github.com/vovakirdan/tui-stalls/internal/core"
	"github.com/vovakirdan/tui-stalls/internal/games/stalls"
	"github.com/vovakirdan/tui-stalls/internal/journal"
	"github.com/vovakirdan/tui-stalls/internal/platform/tui"
	"github.com/vovakirdan/tui-stalls/internal/storage"
)

var flagJournal string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Market Stalls.

Controls:
  C / click collect button  - Take the collect offer
  T / click trade button    - Take the trade offer
  Tab                       - High scores
  R                         - Restart (after game over)
  Ctrl+S                    - Save a text screenshot
  Q/Ctrl+C                  - Quit

Offers can only be taken while standing at a stall.

Examples:
  stalls play
  stalls play --seed 42
  stalls play --config ./my-stalls.yaml
  stalls play --journal ~/.stalls/journal --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagJournal, "journal", "", "Directory for the compressed session journal")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		exitErr("%v", err)
	}
}

// playGame runs one local session. Everything it opens is closed before it
// returns, including on errors.
func playGame() error {
	cfg, err := config.LoadStalls(flagConfig)
	if err != nil {
		return err
	}
	journalDir, err := config.ExpandHome(flagJournal)
	if err != nil {
		return err
	}

	logger, logFile, err := openLogFile(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := stalls.NewWithConfig(cfg)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
	}

	var j *journal.Journal
	if journalDir != "" {
		j = journal.Open(journalDir, fmt.Sprintf("local-%d", time.Now().UnixNano()), game.ID())
		defer func() {
			if err := j.Close(); err != nil {
				logger.Warn("journal close failed", "err", err)
			}
		}()
	}

	logger.Info("session starting", "width", width, "height", height, "fps", flagFPS)
	if err := tui.Run(game, store, runtime, tui.Options{
		Logger:  logger,
		Journal: j,
		Columns: resourceColumns(),
	}); err != nil {
		logger.Error("session failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")
	return nil
}
