package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushlife/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and level interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. When the level
directory holds levels, a level picker follows the variant menu.
Press B during a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Session history
  Esc/B        - Back
  Q            - Quit

Examples:
  pushlife menu
  pushlife menu --fps 60
  pushlife menu --db ./history.db`,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, runtimeConfig(), tui.SessionOptions{
		Player:     localPlayer(),
		HoldWindow: settings.HoldWindow(),
		LevelDir:   settings.Level.Dir,
	})
}
