// boxworld is a terminal puzzle-arcade where you push crates around a
// grid, trap roaming monsters with sticky boxes and stay out of their way.
//
// Usage:
//
//	boxworld list              - List available variants
//	boxworld play <variant>    - Play a variant
//	boxworld menu              - Start menu to pick variants interactively
//	boxworld sessions <variant> - Show session history for a variant
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.boxworld/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-boxworld/internal/games/boxworld"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "boxworld",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxworld",
	Short: "Box World - Push crates and trap monsters in your terminal",
	Long: `Box World is a terminal grid game. Push crates around the board,
pin roaming monsters with sticky boxes and keep moving - a monster that
reaches your cell ends the run.

Available commands:
  list      - Show all available variants
  play      - Play a specific variant directly
  menu      - Interactive variant picker menu
  sessions  - View session history

Examples:
  boxworld list
  boxworld play boxworld
  boxworld play boxworld_onslaught --difficulty hard
  boxworld menu
  boxworld sessions boxworld`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boxworld/sessions.db", "Path to session database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(sessionsCmd)
}
