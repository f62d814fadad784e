// stalls is a terminal market game: ten rounds of collecting and trading
// resources while walking from stall to stall.
//
// Usage:
//
//	stalls play              - Play a game
//	stalls serve             - Start SSH server for remote play
//	stalls scores            - Show high scores
//	stalls paths             - Print the walks between stalls
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search ~/.stalls/configs, ./configs)
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible offers
//	--db <path>        - Set database path (default: ~/.stalls/scores.db)
//	--log <path>       - Log file for play sessions (default: ~/.stalls/stalls.log)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stalls/internal/games/stalls/core"

	// Register the game
	_ "github.com/vovakirdan/tui-stalls/internal/games/stalls"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stalls",
	Short: "Market Stalls - trade your way around the market",
	Long: `Market Stalls is a terminal trading game. Over ten rounds, take the
offer of the stall you stand at: collect one resource or trade some of
yours for more of another. Your score is the sum of the squares of your
final counts.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores
  paths    - Print the walks between stalls

Examples:
  stalls play
  stalls play --seed 42
  stalls serve --ssh :2222
  stalls scores`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stalls/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.stalls/stalls.log", "Log file for play sessions")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(pathsCmd)
}

// exitErr prints an error the way every command reports failures and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// resourceColumns lists resource names in display order.
func resourceColumns() []string {
	names := make([]string, 0, core.ResourceCount)
	for _, r := range core.AllResources() {
		names = append(names, r.String())
	}
	return names
}
