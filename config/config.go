package config

import (
	"flag"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/fruit-fighter/parameter"
)

// Duration wraps time.Duration for TOML strings such as "16ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the runtime configuration shared by both binaries
// Precedence: defaults, then the TOML file, then explicitly set flags
type Config struct {
	FrameInterval Duration `toml:"frame_interval"`
	SpawnInterval Duration `toml:"spawn_interval"`
	GracePeriod   Duration `toml:"grace_period"`
	Seed          uint64   `toml:"seed"`

	// Virtual pixels per terminal cell
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`

	// Initial viewport in pixels, used by the bridge until a client resizes
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	BridgeAddr string `toml:"bridge_addr"`
	Debug      bool   `toml:"debug"`
	ASCII      bool   `toml:"ascii"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FrameInterval: Duration{parameter.FrameUpdateInterval},
		SpawnInterval: Duration{parameter.SpawnInterval},
		GracePeriod:   Duration{parameter.GracePeriod},
		Seed:          uint64(time.Now().UnixNano()),
		CellWidth:     parameter.CellWidth,
		CellHeight:    parameter.CellHeight,
		Width:         1280,
		Height:        720,
		BridgeAddr:    ":8787",
	}
}

// LoadFile overlays values from a TOML file
// Unknown keys are rejected to catch typos
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrapf(err, "failed to load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return nil
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	switch {
	case c.FrameInterval.Duration <= 0:
		return errors.Errorf("frame_interval must be positive, got %v", c.FrameInterval)
	case c.SpawnInterval.Duration <= 0:
		return errors.Errorf("spawn_interval must be positive, got %v", c.SpawnInterval)
	case c.GracePeriod.Duration <= 0:
		return errors.Errorf("grace_period must be positive, got %v", c.GracePeriod)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return errors.Errorf("cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("viewport must be positive, got %vx%v", c.Width, c.Height)
	}
	return nil
}

// Parse builds a Config from command-line arguments
// -config names an optional TOML file; other flags override it only when set
func Parse(name string, args []string) (*Config, error) {
	def := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "Path to TOML config file")
	frame := fs.Duration("frame", def.FrameInterval.Duration, "Frame tick interval")
	spawn := fs.Duration("spawn", def.SpawnInterval.Duration, "Spawn tick interval")
	grace := fs.Duration("grace", def.GracePeriod.Duration, "Grace period after (re)start")
	seed := fs.Uint64("seed", def.Seed, "Random seed")
	width := fs.Float64("width", def.Width, "Initial viewport width in pixels")
	height := fs.Float64("height", def.Height, "Initial viewport height in pixels")
	addr := fs.String("addr", def.BridgeAddr, "Bridge listen address")
	debug := fs.Bool("debug", false, "Enable debug logging and overlays")
	ascii := fs.Bool("ascii", false, "Draw ASCII glyphs instead of emoji")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := def
	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frame":
			cfg.FrameInterval.Duration = *frame
		case "spawn":
			cfg.SpawnInterval.Duration = *spawn
		case "grace":
			cfg.GracePeriod.Duration = *grace
		case "seed":
			cfg.Seed = *seed
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "addr":
			cfg.BridgeAddr = *addr
		case "debug":
			cfg.Debug = *debug
		case "ascii":
			cfg.ASCII = *ascii
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
