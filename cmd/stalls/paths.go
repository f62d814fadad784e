package main

import (
	"fmt"

	"github.com/spf13/cobra"

	platformcore "github.com/vovakirdan/tui-stalls/internal/core"
	"github.com/vovakirdan/tui-stalls/internal/games/stalls/core"
)

var flagPathsVerbose bool

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the walks between stalls",
	Long: `List every tabulated transition with its sample count and end points.
With --verbose, every sample (direction, frame, position) is printed.

Examples:
  stalls paths
  stalls paths --verbose`,
	Args: cobra.NoArgs,
	Run:  runPaths,
}

func init() {
	pathsCmd.Flags().BoolVarP(&flagPathsVerbose, "verbose", "v", false, "Print every sample")
}

func runPaths(_ *cobra.Command, _ []string) {
	paths := core.NewPaths()

	fmt.Printf("  %-5s  %-7s  %7s  %-10s  %s\n", "Move", "Stalls", "Samples", "Start", "End")
	fmt.Printf("  %-5s  %-7s  %7s  %-10s  %s\n", "----", "------", "-------", "-----", "---")
	for _, k := range paths.Indices() {
		path, err := paths.Transition(k)
		if err != nil {
			exitErr("%v", err)
		}
		first, last := path.First(), path.Last()
		fmt.Printf("  %-5d  %d -> %-2d  %7d  %-10s  %s\n",
			k, k-1, k, path.Len(), formatPoint(first.At), formatPoint(last.At))

		if flagPathsVerbose {
			i := 0
			for s := range path.All() {
				fmt.Printf("      %3d  %-5s  %-8s  %s\n", i, s.Dir, s.Frame, formatPoint(s.At))
				i++
			}
		}
	}
	fmt.Printf("\n%d transitions; stall %d -> 0 has no walk.\n", core.TransitionCount, core.StallCount-1)
}

func formatPoint(p platformcore.Point) string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
