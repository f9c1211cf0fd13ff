package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagRunsInteractive bool
	flagRunsLimit       int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show run history",
	Long: `Display the best recorded runs: highest tier first, faster first
within a tier.

Examples:
  platformer runs
  platformer runs --interactive`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsInteractive, "interactive", false, "Browse run history in a scrollable table")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsInteractive {
		rt := core.DefaultConfig()
		width, height := rt.ScreenW, rt.ScreenH
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, scErr := tui.RunScoreboard(store, width, height); scErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing run history: %v\n", scErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %-9s  %s\n", "Rank", "Outcome", "Tier", "Time", "Date")
	fmt.Printf("  %-4s  %-9s  %-5s  %-9s  %s\n", "----", "-------", "----", "----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-9s  %-5d  %-9s  %s\n", i+1, entry.Outcome, entry.Tier, fmt.Sprintf("%.1fs", entry.Duration), dateStr)
	}

	best, found, err := store.BestRun()
	if err == nil && found {
		fmt.Println()
		fmt.Printf("Best: tier %d in %.1fs (%s)\n", best.Tier, best.Duration, best.Outcome)
	}
}
