package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushlife/internal/platform/tui"
	"github.com/vovakirdan/pushlife/internal/registry"
	"github.com/vovakirdan/pushlife/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions, optionally for one variant.

Examples:
  pushlife history
  pushlife history pushlife --limit 5
  pushlife history pushlife_legacy --clear
  pushlife history --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the variant's sessions")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history full screen")
}

func runHistory(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown variant %q (run 'pushlife list')", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	if flagHistoryTUI {
		cfg := runtimeConfig()
		return tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
	}

	if flagHistoryClear {
		if gameID == "" {
			return fmt.Errorf("--clear needs a variant")
		}
		if err := store.ClearSessions(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared history of %s.\n", gameID)
		return nil
	}

	sessions, err := store.RecentSessions(gameID, flagHistoryLimit)
	if err != nil {
		return err
	}

	title := "all variants"
	if gameID != "" {
		title = gameID
	}
	fmt.Printf("Recent sessions - %s\n\n", title)

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pushlife play' to start your history!")
		return nil
	}

	fmt.Printf("  %-16s  %-16s  %-12s  %-10s  %5s  %6s  %4s  %8s\n",
		"Date", "Variant", "Level", "Player", "Steps", "Pushes", "Gens", "Duration")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-16s  %-12s  %-10s  %5d  %6d  %4d  %8s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04"), s.GameID, s.LevelID, s.Player,
			s.Steps, s.Pushes, s.Generations, s.Duration.Round(time.Second))
	}

	if gameID != "" {
		stats, err := store.Stats(gameID)
		if err == nil && stats.Sessions > 0 {
			fmt.Println()
			fmt.Printf("Sessions: %d  Best pushes: %d  Total steps: %d  Avg generations: %.1f\n",
				stats.Sessions, stats.BestPushes, stats.TotalSteps, stats.AvgGenerated)
		}
	}
	return nil
}
