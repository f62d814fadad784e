package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stalls/internal/games/stalls"
	"github.com/vovakirdan/tui-stalls/internal/platform/tui"
	"github.com/vovakirdan/tui-stalls/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresRecent bool
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games with their final inventories.

Examples:
  stalls scores
  stalls scores --recent --limit 5
  stalls scores --tui
  stalls scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest games instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitErr("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(stalls.ID); err != nil {
			exitErr("%v", err)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, stalls.ID, resourceColumns(), width, height); err != nil {
			exitErr("%v", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Games"
		scores, err = store.RecentRuns(stalls.ID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(stalls.ID, flagScoresLimit)
	}
	if err != nil {
		exitErr("retrieving scores: %v", err)
	}

	fmt.Printf("%s - %s\n\n", heading, stalls.New().Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stalls play' to set the first high score!")
		return
	}

	columns := resourceColumns()
	fmt.Printf("  %-4s  %-5s  %s  %-10s  %s\n", "Rank", "Score", inventoryHeader(columns), "Player", "Date")
	fmt.Printf("  %-4s  %-5s  %s  %-10s  %s\n", "----", "-----", strings.Repeat("-", len(columns)*7-2), "------", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-5d  %s  %-10s  %s\n",
			i+1, entry.Score, inventoryCells(entry.Inventory, columns), player,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(stalls.ID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

func inventoryHeader(columns []string) string {
	cells := make([]string, len(columns))
	for i, name := range columns {
		cells[i] = fmt.Sprintf("%5s", name)
	}
	return strings.Join(cells, "  ")
}

func inventoryCells(inv map[string]int, columns []string) string {
	cells := make([]string, len(columns))
	for i, name := range columns {
		if n, ok := inv[name]; ok {
			cells[i] = fmt.Sprintf("%5d", n)
		} else {
			cells[i] = fmt.Sprintf("%5s", "-")
		}
	}
	return strings.Join(cells, "  ")
}
