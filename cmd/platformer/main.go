// platformer is a side-scrolling TUI platformer played in the terminal.
//
// Usage:
//
//	platformer play           - Play locally
//	platformer serve          - Start SSH server for remote play
//	platformer runs           - Show run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.platformer/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Escape the lobby, climb the tiers, claim the chalice",
	Long: `TUI Platformer is a terminal side-scroller. Leave the lobby before
the countdown runs out, then jump your way across six tiers of
obstacles to reach the chalice.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  runs     - View run history

Examples:
  platformer play
  platformer play --seed 42
  platformer serve --ssh :2222
  platformer runs`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
