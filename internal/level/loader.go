package level

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Supported file extensions.
const (
	ExtMap  = ".map"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Loader reads levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// LoadFile parses a single level file. The format follows the extension.
// The level ID defaults to the file name without extension.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, &LoadError{Source: path, Err: err}
	}
	return parse(path, data)
}

func parse(path string, data []byte) (Level, error) {
	var (
		lvl Level
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtMap:
		lvl, err = ParseMap(bytes.NewReader(data))
	case ExtYAML, ExtYML:
		lvl, err = ParseYAML(data)
	default:
		err = fmt.Errorf("unsupported extension %q", ext)
	}
	if err != nil {
		return Level{}, &LoadError{Source: path, Err: err}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if lvl.ID == "" {
		lvl.ID = base
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadAll parses every level file under Root, sorted by ID. Files that fail
// to parse are logged and skipped.
func (l *Loader) LoadAll() ([]Level, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, &LoadError{Source: l.Root, Err: err}
	}

	var levels []Level
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		path := filepath.Join(l.Root, entry.Name())
		lvl, err := LoadFile(path)
		if err != nil {
			log.Warn("skipping level", "path", path, "err", err)
			continue
		}
		levels = append(levels, lvl)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadByID returns the level with the given ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, &LoadError{Source: id, Err: fmt.Errorf("no level with id %q in %s", id, l.Root)}
}

// ListIDs returns the IDs of all loadable levels.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ExtMap, ExtYAML, ExtYML:
		return true
	}
	return false
}
