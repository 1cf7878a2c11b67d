package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout names.
const (
	LayoutGrid   = "grid"
	LayoutShards = "shards"
	LayoutMixed  = "mixed"
)

// Default values for configuration
const (
	DefaultWidth  = 1024.0
	DefaultHeight = 768.0
	DefaultCells  = 100
	DefaultRelax  = 3
	DefaultHPMin  = 1
	DefaultHPMax  = 4
	DefaultFPS    = 60
)

// Config holds the application configuration. Seed 0 means "pick one
// from the clock at startup".
type Config struct {
	Layout  string  `yaml:"layout"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Cells   int     `yaml:"cells"`
	Relax   int     `yaml:"relax"`
	HPMin   int     `yaml:"hp-min"`
	HPMax   int     `yaml:"hp-max"`
	Seed    int64   `yaml:"seed"`
	FPS     int     `yaml:"fps"`
	NoSound bool    `yaml:"no-sound"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout: LayoutShards,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Cells:  DefaultCells,
		Relax:  DefaultRelax,
		HPMin:  DefaultHPMin,
		HPMax:  DefaultHPMax,
		FPS:    DefaultFPS,
	}
}

// Load reads a YAML config file over the defaults; keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ParseArgs parses command line arguments and returns a Config.
// Precedence: explicit flags > config file > defaults.
func ParseArgs(args []string) (*Config, error) {
	def := Default()
	fs := flag.NewFlagSet("shardbreak", flag.ContinueOnError)

	layout := fs.String("layout", def.Layout, "obstacle layout: grid, shards or mixed")
	width := fs.Float64("width", def.Width, "playfield width in world units")
	height := fs.Float64("height", def.Height, "playfield height in world units")
	cells := fs.Int("cells", def.Cells, "seed points for the shard tessellation")
	relaxN := fs.Int("relax", def.Relax, "relaxation passes over the shard seeds")
	hpMin := fs.Int("hp-min", def.HPMin, "minimum obstacle hit points")
	hpMax := fs.Int("hp-max", def.HPMax, "maximum obstacle hit points")
	seed := fs.Int64("seed", def.Seed, "layout seed (0 = from the clock)")
	fps := fs.Int("fps", def.FPS, "simulation ticks per second")
	noSound := fs.Bool("no-sound", def.NoSound, "disable sound effects")
	file := fs.String("config", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *file != "" {
		loaded, err := Load(*file)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags given explicitly win over file values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			cfg.Layout = *layout
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "cells":
			cfg.Cells = *cells
		case "relax":
			cfg.Relax = *relaxN
		case "hp-min":
			cfg.HPMin = *hpMin
		case "hp-max":
			cfg.HPMax = *hpMax
		case "seed":
			cfg.Seed = *seed
		case "fps":
			cfg.FPS = *fps
		case "no-sound":
			cfg.NoSound = *noSound
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the game cannot run
// with.
func (c *Config) Validate() error {
	switch c.Layout {
	case LayoutGrid, LayoutShards, LayoutMixed:
	default:
		return fmt.Errorf("unknown layout %q (want grid, shards or mixed)", c.Layout)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("playfield must have positive dimensions, got %gx%g", c.Width, c.Height)
	}
	if c.Cells < 3 {
		return fmt.Errorf("cells must be at least 3, got %d", c.Cells)
	}
	if c.Relax < 0 {
		return fmt.Errorf("relax must not be negative, got %d", c.Relax)
	}
	if c.HPMin < 1 {
		return fmt.Errorf("hp-min must be at least 1, got %d", c.HPMin)
	}
	if c.HPMax < c.HPMin {
		return errors.New("hp-max must not be below hp-min")
	}
	if c.FPS < 10 || c.FPS > 240 {
		return fmt.Errorf("fps must be between 10 and 240, got %d", c.FPS)
	}
	return nil
}
