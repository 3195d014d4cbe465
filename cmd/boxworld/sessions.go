package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boxworld/internal/registry"
	"github.com/vovakirdan/tui-boxworld/internal/storage"
)

var flagClearSessions bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions <variant>",
	Short: "Show session history for a variant",
	Long: `Display the most recent runs for the specified variant.

Examples:
  boxworld sessions boxworld
  boxworld sessions boxworld_onslaught
  boxworld sessions boxworld --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&flagClearSessions, "clear", false, "Delete all recorded sessions for the variant")
}

func runSessions(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'boxworld list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearSessions {
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared session history for %s.\n", title)
		return
	}

	// Get recent sessions
	sessions, err := store.RecentSessions(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	// Display sessions
	fmt.Printf("Session History - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'boxworld play %s' to start the history!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-8s  %-9s  %-14s  %s\n", "Ticks", "Outcome", "Monsters", "Seed", "Date")
	fmt.Printf("  %-8s  %-8s  %-9s  %-14s  %s\n", "-----", "-------", "--------", "----", "----")

	// Print sessions
	for _, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8d  %-8s  %-9d  %-14d  %s\n",
			entry.Ticks, entry.Outcome, entry.MonstersLeft, entry.Seed, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	stats, err := store.GetSessionStats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Printf("Runs: %d   Longest: %d ticks   Average: %.1f ticks\n",
			stats.Runs, stats.LongestRun, stats.AvgTicks)
	}
}
