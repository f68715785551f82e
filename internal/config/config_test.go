package config

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 480, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 4, cfg.Threads)
	assert.True(t, cfg.Label)
	assert.Equal(t, Field{Scale: 100, Octaves: 8}, cfg.Elevation)
	assert.Equal(t, Field{Scale: 50, Octaves: 4}, cfg.Moisture)
	assert.Equal(t, 200.0, cfg.Falloff)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threads = 0
	cfg.Noise = "value"
	cfg.Elevation.Scale = 0
	cfg.Moisture.Octaves = -1
	cfg.Falloff = -5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 5)
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Threads = 16

	fromFile := DefaultConfig()
	fromFile.Seed = 7
	fromFile.Threads = 2
	fromFile.Label = false
	fromFile.Falloff = 120
	fromFile.Moisture.Octaves = 6

	Merge(cfg, fromFile, map[string]bool{"seed": true})

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Threads)
	assert.False(t, cfg.Label)
	assert.Equal(t, 120.0, cfg.Falloff)
	assert.Equal(t, 6, cfg.Moisture.Octaves)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": 9, "moisture": {"scale": 25, "octaves": 2}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, Field{Scale: 25, Octaves: 2}, cfg.Moisture)
	assert.Equal(t, Field{Scale: 100, Octaves: 8}, cfg.Elevation)
	assert.Equal(t, 4, cfg.Threads)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed":`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestFetchLocalFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preset.json"), []byte(`{"threads": 16}`), 0o644))
	t.Chdir(dir)

	for _, src := range []string{
		filepath.Join(dir, "preset.json"),
		"preset.json",
		"./preset.json",
	} {
		t.Run(src, func(t *testing.T) {
			path, err := Fetch(context.Background(), src, t.TempDir())
			require.NoError(t, err)
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 16, cfg.Threads)
		})
	}
}

func TestResolveSeed(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		cfg := DefaultConfig()
		cfg.ResolveSeed(r, false)
		assert.GreaterOrEqual(t, cfg.Seed, int64(1))
		assert.LessOrEqual(t, cfg.Seed, int64(MaxRandomSeed))
	}

	tests := []struct {
		seed     int64
		explicit bool
	}{
		{42, false},
		{42, true},
		{0, true},
		{-3, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Seed = tt.seed
		cfg.ResolveSeed(r, tt.explicit)
		assert.Equal(t, tt.seed, cfg.Seed, "seed=%d explicit=%v", tt.seed, tt.explicit)
	}
}
