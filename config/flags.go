package config

import (
	"flag"
	"fmt"
)

// Flags holds the command line switches shared by both frontends
type Flags struct {
	Path  string
	Debug bool
	Stats bool

	size string
	dark bool
	mute bool
	seed uint64
	fs   *flag.FlagSet
}

// RegisterFlags defines the switches on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "TOML config file")
	fs.BoolVar(&f.Debug, "debug", false, "Write logs to logs/vi-snake.log")
	fs.BoolVar(&f.Stats, "stats", false, "Print session metrics on exit")
	fs.StringVar(&f.size, "size", "", "Cell size: small, medium, large")
	fs.BoolVar(&f.dark, "dark", false, "Start with the night theme")
	fs.BoolVar(&f.mute, "mute", false, "Start with sound muted")
	fs.Uint64Var(&f.seed, "seed", 0, "Target placement seed, 0 seeds from the clock")
	return f
}

// Overrides returns only the switches given on the command line
// so unset flags never mask values from the config file
func (f *Flags) Overrides() Overrides {
	var o Overrides
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "size":
			o.CellSize = &f.size
		case "dark":
			o.Dark = &f.dark
		case "mute":
			sound := !f.mute
			o.Sound = &sound
		case "seed":
			o.Seed = &f.seed
		}
	})
	return o
}

// Resolve loads the config file and layers the command line over it
func (f *Flags) Resolve() (Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Apply(f.Overrides()); err != nil {
		return cfg, fmt.Errorf("command line: %w", err)
	}
	return cfg, nil
}
