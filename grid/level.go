package grid

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Spawn is the player's starting pose. Angle is in degrees in the level file.
type Spawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

// Radians returns the spawn heading in radians.
func (s Spawn) Radians() float64 {
	return s.Angle * math.Pi / 180
}

type Level struct {
	Name  string   `yaml:"name"`
	Spawn Spawn    `yaml:"spawn"`
	Rows  []string `yaml:"rows"`
}

func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

func ParseLevel(data []byte) (*Level, error) {
	var level Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}
	if _, err := level.Map(); err != nil {
		return nil, err
	}
	return &level, nil
}

// Map parses the level rows and checks that the spawn point is walkable.
func (l *Level) Map() (*Map, error) {
	m, err := Parse(l.Rows)
	if err != nil {
		return nil, err
	}

	if l.Spawn.X < 0 || l.Spawn.Y < 0 || l.Spawn.X >= float64(m.Width) || l.Spawn.Y >= float64(m.Height) {
		return nil, fmt.Errorf("%w: (%.2f, %.2f)", ErrSpawnOutOfBounds, l.Spawn.X, l.Spawn.Y)
	}
	if m.Solid(int(l.Spawn.X), int(l.Spawn.Y)) {
		return nil, fmt.Errorf("%w: (%.2f, %.2f)", ErrSpawnBlocked, l.Spawn.X, l.Spawn.Y)
	}
	return m, nil
}

func (l *Level) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

var defaultRows = []string{
	"1111111111111111",
	"1..............1",
	"1..2222....33..1",
	"1..2.......33..1",
	"1..2...........1",
	"1......4.4.....1",
	"1..............1",
	"1...5......6...1",
	"1...5......6...1",
	"1...55....66...1",
	"1..............1",
	"1.7..........8.1",
	"1.7..........8.1",
	"1.77........88.1",
	"1..............1",
	"1111111111111111",
}

// Default returns the built-in 16x16 level.
func Default() *Level {
	rows := make([]string, len(defaultRows))
	copy(rows, defaultRows)
	return &Level{
		Name:  "default",
		Spawn: Spawn{X: 8.5, Y: 8.5, Angle: 0},
		Rows:  rows,
	}
}
