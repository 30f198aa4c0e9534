// Package config loads game settings from TOML with flag overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
)

// ErrInvalid marks a configuration that parsed but cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Duration decodes TOML strings such as "150ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds every tunable of a session
type Config struct {
	CellSize      string   `toml:"cell_size"`
	StepInterval  Duration `toml:"step_interval"`
	FrameInterval Duration `toml:"frame_interval"`
	CanvasWidth   int      `toml:"canvas_width"`
	CanvasHeight  int      `toml:"canvas_height"`
	Dark          bool     `toml:"dark"`
	Sound         bool     `toml:"sound"`

	// Seed 0 seeds placement from the wall clock
	Seed uint64 `toml:"seed"`

	Keymap input.KeymapConfig `toml:"keymap"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		CellSize:      grid.Medium.String(),
		StepInterval:  Duration{parameter.StepInterval},
		FrameInterval: Duration{parameter.FrameInterval},
		CanvasWidth:   parameter.CanvasWidth,
		CanvasHeight:  parameter.CanvasHeight,
		Sound:         true,
	}
}

// Load reads path over the defaults, empty path returns the defaults
// Unknown keys are rejected so typos do not pass silently
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Decode(data); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result
func (c *Config) Decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown keys %v", ErrInvalid, undecoded)
	}
	return c.Validate()
}

// Validate checks ranges and that every cell size fits the origin cell
func (c Config) Validate() error {
	size, err := grid.ParseCellSize(c.CellSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.StepInterval.Duration <= 0 {
		return fmt.Errorf("%w: step_interval must be positive, got %s", ErrInvalid, c.StepInterval.Duration)
	}
	if c.FrameInterval.Duration <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive, got %s", ErrInvalid, c.FrameInterval.Duration)
	}
	if c.FrameInterval.Duration > c.StepInterval.Duration {
		return fmt.Errorf("%w: frame_interval %s exceeds step_interval %s", ErrInvalid, c.FrameInterval.Duration, c.StepInterval.Duration)
	}

	// The largest size yields the smallest grid, it must still contain the origin
	largest := grid.Sizes[len(grid.Sizes)-1]
	for _, s := range []grid.CellSize{size, largest} {
		g, err := grid.New(c.CanvasWidth, c.CanvasHeight, s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if g.Columns <= parameter.OriginX || g.Rows <= parameter.OriginY {
			return fmt.Errorf("%w: canvas %dx%d at %s cells is %dx%d, needs more than %dx%d",
				ErrInvalid, c.CanvasWidth, c.CanvasHeight, s, g.Columns, g.Rows, parameter.OriginX, parameter.OriginY)
		}
	}

	if _, err := c.Keymap.KeyTable(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// GridSize returns the parsed cell size, Validate must have passed
func (c Config) GridSize() grid.CellSize {
	size, err := grid.ParseCellSize(c.CellSize)
	if err != nil {
		return grid.Medium
	}
	return size
}

// KeyTable returns the default bindings merged with the configured overrides
func (c Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if c.Keymap.Empty() {
		return base, nil
	}
	override, err := c.Keymap.KeyTable()
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}

// Overrides carries command line values, nil fields keep the loaded value
type Overrides struct {
	CellSize *string
	Dark     *bool
	Sound    *bool
	Seed     *uint64
}

// Apply layers o over c and revalidates
func (c *Config) Apply(o Overrides) error {
	if o.CellSize != nil {
		c.CellSize = *o.CellSize
	}
	if o.Dark != nil {
		c.Dark = *o.Dark
	}
	if o.Sound != nil {
		c.Sound = *o.Sound
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	return c.Validate()
}
