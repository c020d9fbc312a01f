// Package config loads game settings from an optional YAML file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vinser/snek/internal/point"
	"github.com/vinser/snek/internal/snake"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTick    = 150 * time.Millisecond
	MinTick        = 20 * time.Millisecond
	DefaultLogFile = "snek.log"
)

// Config holds everything needed to start a game.
type Config struct {
	StartX    int           `yaml:"start-x"`   // head column, in cells
	StartY    int           `yaml:"start-y"`   // head row, in cells
	Direction string        `yaml:"direction"` // up, down, left or right
	CellSize  int           `yaml:"cell-size"` // grid units per cell
	TailSize  int           `yaml:"tail-size"` // body segments at start
	Tick      time.Duration `yaml:"tick"`      // time between chain updates
	LogFile   string        `yaml:"log-file"`
	Debug     bool          `yaml:"debug"`
	Mute      bool          `yaml:"mute"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Direction: "left",
		CellSize:  point.DefaultCellSize,
		TailSize:  snake.DefaultTailSize,
		Tick:      DefaultTick,
		LogFile:   DefaultLogFile,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// The result is not validated, so overrides can still be applied to it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	return cfg, nil
}

// Validate checks the settings the chain and the ticker depend on.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell-size must be positive, got %d", c.CellSize)
	}
	if c.TailSize < 0 {
		return errors.Errorf("tail-size must not be negative, got %d", c.TailSize)
	}
	if c.Tick < MinTick {
		return errors.Errorf("tick must be at least %s, got %s", MinTick, c.Tick)
	}
	if _, err := c.StartDirection(); err != nil {
		return err
	}
	return nil
}

// StartDirection returns the canonical direction named by Direction.
func (c *Config) StartDirection() (point.Point, error) {
	d, ok := point.Parse(strings.ToLower(c.Direction))
	if !ok || !point.IsCanonical(d) {
		return point.None, errors.Errorf("unknown direction %q, use up, down, left or right", c.Direction)
	}
	return d, nil
}

// StartPosition returns the head position in grid units.
func (c *Config) StartPosition() point.Point {
	return point.New(c.StartX*c.CellSize, c.StartY*c.CellSize)
}

// NewChain builds the snake described by the settings.
func (c *Config) NewChain() (*snake.Chain, error) {
	dir, err := c.StartDirection()
	if err != nil {
		return nil, err
	}
	pos := c.StartPosition()
	chain, err := snake.New(snake.Config{Position: &pos, Direction: dir},
		snake.WithCellSize(c.CellSize),
		snake.WithTailSize(c.TailSize),
	)
	return chain, errors.Wrap(err, "config: build snake")
}
