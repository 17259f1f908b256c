package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushlife/internal/config"
	"github.com/vovakirdan/pushlife/internal/games/pushlife"
	"github.com/vovakirdan/pushlife/internal/platform/tui"
	"github.com/vovakirdan/pushlife/internal/registry"
	"github.com/vovakirdan/pushlife/internal/storage"
)

var (
	flagLevel   string
	flagPaused  bool
	flagRunning bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a level",
	Long: `Start playing a level. The variant defaults to "pushlife".

Controls:
  WASD/Arrows  - Move and push blocks
  L/Space      - Switch between puzzle and life
  P/Esc        - Pause
  R            - Reload the level
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

The level is a .map or .yaml file path, or the ID of a level in the
configured level directory. Without --level the settings decide, and
the built-in tutorial is the fallback.

Examples:
  pushlife play
  pushlife play pushlife_legacy
  pushlife play --level ./levels/rooms.map
  pushlife play --level walls --running
  pushlife play --config ./my-pushlife.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level file or level ID")
	playCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused")
	playCmd.Flags().BoolVar(&flagRunning, "running", false, "Start unpaused")
	playCmd.MarkFlagsMutuallyExclusive("paused", "running")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := pushlife.IDStandard
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'pushlife list')", gameID)
	}

	cfg := settings
	if flagLevel != "" {
		cfg.Level = levelConfigFor(flagLevel, cfg.Level.Dir)
	}
	switch {
	case flagPaused:
		cfg.Start.Paused = true
	case flagRunning:
		cfg.Start.Paused = false
	}
	pushlife.SetConfig(cfg)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, runtimeConfig(), tui.GameOptions{
		Player:     localPlayer(),
		HoldWindow: cfg.HoldWindow(),
	})
}

// levelConfigFor treats arg as a path when it names a level file and as a
// level ID otherwise.
func levelConfigFor(arg, dir string) config.LevelConfig {
	switch filepath.Ext(arg) {
	case ".map", ".yaml", ".yml":
		return config.LevelConfig{Path: arg, Dir: dir}
	}
	if _, err := os.Stat(arg); err == nil {
		return config.LevelConfig{Path: arg, Dir: dir}
	}
	return config.LevelConfig{ID: arg, Dir: dir}
}

// openStore opens the history database. A failure is logged and the game
// runs without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open history database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
