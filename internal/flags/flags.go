package flags

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vinser/snek/internal/config"
)

// Flags stores the parsed command-line options
type Flags struct {
	Config    string
	CellSize  int
	TailSize  int
	Direction string
	Tick      time.Duration
	LogFile   string
	Debug     bool
	Mute      bool

	set *FlagSetWithVisit
}

// Parse parses command-line flags. Usage and errors are written to out.
func Parse(args []string, out io.Writer) (*Flags, error) {
	fl := &Flags{}
	def := config.Default()

	fs := NewFlagSetWithVisit("snek", flag.ContinueOnError)
	fs.SetOutput(out)

	// Define flags with both short and long forms
	fs.StringVar(&fl.Config, "config", "c", "", "Path to a YAML config file")
	fs.IntVar(&fl.CellSize, "cell-size", "s", def.CellSize, "Grid units covered by one step")
	fs.IntVar(&fl.TailSize, "tail", "t", def.TailSize, "Body segments behind the head at start")
	fs.StringVar(&fl.Direction, "direction", "d", def.Direction, "Start direction: up, down, left or right")
	fs.DurationVar(&fl.Tick, "tick", "", def.Tick, "Time between moves, e.g. 150ms")
	fs.StringVar(&fl.LogFile, "log", "l", def.LogFile, "Log file, empty to disable logging")
	fs.BoolVar(&fl.Debug, "debug", "", false, "Log every tick")
	fs.BoolVar(&fl.Mute, "mute", "m", false, "Mute all sounds")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Normalize direction value
	fl.Direction = strings.ToLower(fl.Direction)
	if fs.IsCustom("direction") {
		switch fl.Direction {
		case "up", "down", "left", "right":
		default:
			fmt.Fprintf(out, "Invalid direction: %s. Use 'up', 'down', 'left' or 'right'.\n", fl.Direction)
			fs.Usage()
			return nil, fmt.Errorf("invalid direction %q", fl.Direction)
		}
	}

	fl.set = fs
	return fl, nil
}

// MustParse parses os.Args and exits on bad input.
func MustParse() *Flags {
	fl, err := Parse(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	return fl
}

// IsSet reports whether the named flag was given on the command line.
func (fl *Flags) IsSet(name string) bool {
	return fl.set != nil && fl.set.IsCustom(name)
}

// Apply copies the flags given on the command line over cfg.
func (fl *Flags) Apply(cfg *config.Config) {
	if fl.IsSet("cell-size") {
		cfg.CellSize = fl.CellSize
	}
	if fl.IsSet("tail") {
		cfg.TailSize = fl.TailSize
	}
	if fl.IsSet("direction") {
		cfg.Direction = fl.Direction
	}
	if fl.IsSet("tick") {
		cfg.Tick = fl.Tick
	}
	if fl.IsSet("log") {
		cfg.LogFile = fl.LogFile
	}
	if fl.IsSet("debug") {
		cfg.Debug = fl.Debug
	}
	if fl.IsSet("mute") {
		cfg.Mute = fl.Mute
	}
}

// Load reads the config file named by -config, applies the other flags over it
// and validates the result.
func (fl *Flags) Load() (*config.Config, error) {
	cfg, err := config.Load(fl.Config)
	if err != nil {
		return nil, err
	}
	fl.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		if fl.Config != "" {
			return nil, errors.Wrapf(err, "config: %s", fl.Config)
		}
		return nil, err
	}
	return cfg, nil
}
