package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushlife/internal/games/pushlife"
	"github.com/vovakirdan/pushlife/internal/level"
)

var flagLevelDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Lists the built-in levels and every .map/.yaml level in the level
directory. Files that fail to parse are skipped with a warning.

Examples:
  pushlife levels
  pushlife levels --dir ./levels
  pushlife levels show walls`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <id|path>",
	Short: "Print a level preview",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

func init() {
	levelsCmd.PersistentFlags().StringVar(&flagLevelDir, "dir", "", "Level directory (default from settings)")
	levelsCmd.AddCommand(levelsShowCmd)
}

func levelDir() string {
	if flagLevelDir != "" {
		return flagLevelDir
	}
	return settings.Level.Dir
}

func runLevels(_ *cobra.Command, _ []string) error {
	fmt.Println("Built-in:")
	for _, name := range level.Builtin() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()

	dir := levelDir()
	levels, err := level.NewLoader(dir).LoadAll()
	if err != nil {
		fmt.Printf("No level directory (%v)\n", err)
		return nil
	}

	fmt.Printf("In %s:\n", dir)
	if len(levels) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	fmt.Printf("  %-16s  %-24s  %5s  %s\n", "ID", "Name", "Tiles", "Spawn")
	for _, lvl := range levels {
		fmt.Printf("  %-16s  %-24s  %5d  %s\n", lvl.ID, lvl.Name, lvl.TileCount(), lvl.Spawn)
	}
	fmt.Println()
	fmt.Println("Run 'pushlife play --level <id>' to play one.")
	return nil
}

func runLevelsShow(_ *cobra.Command, args []string) error {
	lvl, err := showLevel(args[0], levelDir())
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s): %d movable, %d immovable, spawn %s\n\n",
		lvl.Name, lvl.ID, len(lvl.Movable), len(lvl.Immovable), lvl.Spawn)
	fmt.Print(preview(lvl))
	return nil
}

// showLevel loads the level named by arg. An unknown ID lists the IDs the
// directory does have.
func showLevel(arg, dir string) (level.Level, error) {
	lc := levelConfigFor(arg, dir)
	if arg == "tutorial" {
		lc.ID = ""
	}
	lvl, err := pushlife.SourceFor(lc).Load()
	if err == nil || lc.ID == "" {
		return lvl, err
	}
	if ids, lerr := level.NewLoader(dir).ListIDs(); lerr == nil && len(ids) > 0 {
		return lvl, fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
	}
	return lvl, err
}

// preview draws a level with +Y up, two characters per cell.
func preview(lvl level.Level) string {
	glyphs := map[level.Cell]string{}
	for _, c := range lvl.Immovable {
		glyphs[c] = "##"
	}
	for _, c := range lvl.Movable {
		glyphs[c] = "[]"
	}
	glyphs[lvl.Spawn] = "@@"

	minX, minY, maxX, maxY := lvl.Spawn.X, lvl.Spawn.Y, lvl.Spawn.X, lvl.Spawn.Y
	for c := range glyphs {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	var b strings.Builder
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			if g, ok := glyphs[level.Cell{X: x, Y: y}]; ok {
				b.WriteString(g)
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
