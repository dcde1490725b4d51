package assets

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/plus3/raycaster/grid"
)

// ErrNoLevel is returned when a named level is not in a pack.
var ErrNoLevel = errors.New("level not found")

const builtinPrefix = "builtin:"

// ParsePack reads a txtar archive holding one YAML level per file. The
// archive comment is free text.
func ParsePack(data []byte) ([]*grid.Level, error) {
	archive := txtar.Parse(data)
	levels := make([]*grid.Level, 0, len(archive.Files))
	for _, f := range archive.Files {
		level, err := grid.ParseLevel(f.Data)
		if err != nil {
			return nil, fmt.Errorf("pack file %s: %w", f.Name, err)
		}
		if level.Name == "" {
			level.Name = strings.TrimSuffix(f.Name, ".yaml")
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// LoadPack reads a level pack from disk.
func LoadPack(path string) ([]*grid.Level, error) {
	archive, err := txtar.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level pack: %w", err)
	}
	return ParsePack(txtar.Format(archive))
}

// Builtin returns the default level followed by the embedded pack.
func Builtin() ([]*grid.Level, error) {
	def, err := DefaultLevel()
	if err != nil {
		return nil, err
	}
	data, err := levels.ReadFile("levels/pack.txtar")
	if err != nil {
		return nil, err
	}
	pack, err := ParsePack(data)
	if err != nil {
		return nil, err
	}
	return append([]*grid.Level{def}, pack...), nil
}

// Pick returns the level called name, or the first level when name is empty.
func Pick(levels []*grid.Level, name string) (*grid.Level, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("empty pack: %w", ErrNoLevel)
	}
	if name == "" {
		return levels[0], nil
	}
	for _, l := range levels {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNoLevel)
}
