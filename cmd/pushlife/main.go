// pushlife is a terminal block-pushing puzzle whose layouts come alive as a
// Game of Life.
//
// Usage:
//
//	pushlife list                 - List rule variants
//	pushlife play [variant]       - Play a level directly
//	pushlife menu                 - Pick variant and level interactively
//	pushlife levels               - List available levels
//	pushlife history [variant]    - Show recorded sessions
//	pushlife serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--config <path>      - Load settings from a YAML file
//	--db <path>          - Set database path (default: ~/.pushlife/history.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pushlife/internal/config"
	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/games/pushlife"
	"github.com/vovakirdan/pushlife/internal/world"
)

// annotationTUI marks commands that take over the terminal.
const annotationTUI = "tui"

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// Loaded in PersistentPreRunE.
	settings config.PushLifeConfig
	logOut   io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logOut != nil {
		logOut.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pushlife",
	Short: "PushLife - push blocks, then watch them live",
	Long: `PushLife is a terminal puzzle in two modes. In puzzle mode you push
blocks around a level; press L to turn the layout into a Game of Life
seed and watch it evolve, and L again to get the level back.

Available commands:
  list     - Show rule variants
  play     - Play a level directly
  menu     - Interactive variant and level picker
  levels   - List levels in the level directory
  history  - Show recorded sessions
  serve    - Start SSH server for remote play

Examples:
  pushlife play
  pushlife play pushlife_legacy --level ./levels/rooms.map
  pushlife menu
  pushlife serve --ssh :2222
  pushlife history pushlife`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pushlife/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup configures logging and loads settings before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := setupLogging(cmd.Annotations[annotationTUI] == "true"); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	settings = cfg
	pushlife.SetConfig(cfg)
	log.Debug("settings loaded", "config", flagConfig, "level", cfg.Level)
	return nil
}

// setupLogging installs the default logger. Full-screen commands discard
// logs unless --log-file is given, since stderr shares the terminal.
func setupLogging(fullscreen bool) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if fullscreen {
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logOut = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "pushlife",
	})
	log.SetDefault(logger)
	world.SetLogger(logger)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// localPlayer names the local user in session history.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
