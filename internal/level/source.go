package level

import (
	"embed"
	"path"
)

//go:embed maps/*.map
var builtin embed.FS

// TutorialName is the built-in level loaded when nothing else is configured.
const TutorialName = "tutorial.map"

// FileSource loads a level from disk on every call.
type FileSource struct {
	Path string
}

// Load implements the world's level source.
func (s FileSource) Load() (Level, error) {
	return LoadFile(s.Path)
}

// LoaderSource loads a level by ID from a directory.
type LoaderSource struct {
	Loader *Loader
	ID     string
}

// Load implements the world's level source.
func (s LoaderSource) Load() (Level, error) {
	return s.Loader.LoadByID(s.ID)
}

// EmbeddedSource loads a level compiled into the binary.
type EmbeddedSource struct {
	Name string
}

// Tutorial returns the built-in tutorial level source.
func Tutorial() EmbeddedSource {
	return EmbeddedSource{Name: TutorialName}
}

// Load implements the world's level source.
func (s EmbeddedSource) Load() (Level, error) {
	p := path.Join("maps", s.Name)
	data, err := builtin.ReadFile(p)
	if err != nil {
		return Level{}, &LoadError{Source: "builtin:" + s.Name, Err: err}
	}
	return parse(p, data)
}

// Builtin returns the names of the embedded levels.
func Builtin() []string {
	entries, err := builtin.ReadDir("maps")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
