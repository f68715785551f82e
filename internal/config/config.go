package config

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
	"go.uber.org/multierr"

	"github.com/OCharnyshevich/islandgen/internal/world/gen"
)

// MaxRandomSeed is the upper bound of seeds picked when none is given.
const MaxRandomSeed = 10000

// Field holds the sampling parameters of one noise field.
type Field struct {
	Scale   float64 `json:"scale"`
	Octaves int     `json:"octaves"`
}

// Params converts f to generator parameters.
func (f Field) Params() gen.FieldParams {
	return gen.FieldParams{Scale: f.Scale, Octaves: f.Octaves}
}

// Config holds the world generation configuration.
type Config struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Seed      int64   `json:"seed"` // 0 = pick at random
	Threads   int     `json:"threads"`
	Label     bool    `json:"label"`
	Noise     string  `json:"noise"` // "opensimplex" or "simplex"
	Elevation Field   `json:"elevation"`
	Moisture  Field   `json:"moisture"`
	Falloff   float64 `json:"falloff"`
}

// DefaultConfig returns a Config with the reference settings.
func DefaultConfig() *Config {
	return &Config{
		Width:     480,
		Height:    480,
		Threads:   4,
		Label:     true,
		Noise:     gen.NoiseOpenSimplex,
		Elevation: Field{Scale: 100, Octaves: 8},
		Moisture:  Field{Scale: 50, Octaves: 4},
		Falloff:   200,
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["threads"] {
		cfg.Threads = fromFile.Threads
	}
	if !explicitFlags["no-label"] {
		cfg.Label = fromFile.Label
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	cfg.Width = fromFile.Width
	cfg.Height = fromFile.Height
	cfg.Elevation = fromFile.Elevation
	cfg.Moisture = fromFile.Moisture
	cfg.Falloff = fromFile.Falloff
}

// Load reads a JSON config file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Fetch retrieves a config file from src into dir and returns the local
// path. src may be a local path or any URL go-getter understands
// (https, git, s3, gcs, ...). Relative paths resolve against the working
// directory.
func Fetch(ctx context.Context, src, dir string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	dst := filepath.Join(dir, "config.json")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  wd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch config %s: %w", src, err)
	}
	return dst, nil
}

// Validate reports every problem with cfg. Tiling constraints are checked
// separately by gen.Tiles.
func (c *Config) Validate() error {
	var err error
	if c.Width < 1 || c.Height < 1 {
		err = multierr.Append(err, fmt.Errorf("resolution %dx%d must be positive", c.Width, c.Height))
	}
	if c.Threads < 1 {
		err = multierr.Append(err, fmt.Errorf("threads must be at least 1, got %d", c.Threads))
	}
	switch c.Noise {
	case gen.NoiseOpenSimplex, gen.NoiseSimplex:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown noise primitive %q", c.Noise))
	}
	err = multierr.Append(err, c.Elevation.validate("elevation"))
	err = multierr.Append(err, c.Moisture.validate("moisture"))
	if c.Falloff < 0 {
		err = multierr.Append(err, fmt.Errorf("falloff must not be negative, got %v", c.Falloff))
	}
	return err
}

func (f Field) validate(name string) error {
	var err error
	if f.Scale <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s scale must be positive, got %v", name, f.Scale))
	}
	if f.Octaves < 0 {
		err = multierr.Append(err, fmt.Errorf("%s octaves must not be negative, got %d", name, f.Octaves))
	}
	return err
}

// ResolveSeed picks a seed in [1, MaxRandomSeed] from r when none is set.
// A seed of 0 counts as unset unless explicit is true.
func (c *Config) ResolveSeed(r *rand.Rand, explicit bool) {
	if c.Seed == 0 && !explicit {
		c.Seed = int64(r.IntN(MaxRandomSeed)) + 1
	}
}
