package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/multierr"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"github.com/OCharnyshevich/islandgen/internal/config"
	"github.com/OCharnyshevich/islandgen/internal/storage"
	"github.com/OCharnyshevich/islandgen/internal/world"
	"github.com/OCharnyshevich/islandgen/internal/world/gen"
)

// flagAliases maps short flag names to the names config.Merge knows.
var flagAliases = map[string]string{
	"s": "seed",
	"t": "threads",
}

func main() {
	cfg := config.DefaultConfig()

	var (
		noLabel    bool
		configSrc  string
		dumpConfig string
		verbose    bool
	)
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed (default random in [1, 10000])")
	flag.Int64Var(&cfg.Seed, "s", cfg.Seed, "shorthand for -seed")
	flag.IntVar(&cfg.Threads, "threads", cfg.Threads, "number of workers; must tile the resolution evenly")
	flag.IntVar(&cfg.Threads, "t", cfg.Threads, "shorthand for -threads")
	flag.BoolVar(&noLabel, "no-label", false, "do not draw the seed label")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise primitive: opensimplex or simplex")
	flag.StringVar(&configSrc, "config", "", "JSON config file path or go-getter URL")
	flag.StringVar(&dumpConfig, "dump-config", "", "write the effective config as JSON to this path")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <filename>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)
	cfg.Label = !noLabel

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	explicit := explicitFlags()
	if configSrc != "" {
		if err := loadConfig(ctx, cfg, configSrc, explicit); err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		log.Info("loaded config", "source", configSrc)
	}
	cfg.ResolveSeed(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), explicit["seed"])

	if err := cfg.Validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("invalid configuration", "error", e)
		}
		os.Exit(1)
	}
	// Reject bad worker counts before any noise is sampled.
	if _, err := gen.Tiles(cfg.Width, cfg.Height, cfg.Threads); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, filename, dumpConfig, log); err != nil {
		var genErr *world.GenerationError
		if errors.As(err, &genErr) {
			log.Error("generation failed", "tile", genErr.Tile.String(), "error", genErr.Err)
		} else {
			log.Error("islandgen", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, filename, dumpConfig string, log *slog.Logger) error {
	g, err := world.New(cfg, log)
	if err != nil {
		return err
	}
	res, err := g.Generate(ctx)
	if err != nil {
		return err
	}

	if err := storeFor(filename, log).SaveImage(filepath.Base(filename), res.Canvas); err != nil {
		return err
	}
	if dumpConfig != "" {
		if err := storeFor(dumpConfig, log).SaveConfig(filepath.Base(dumpConfig), cfg); err != nil {
			return err
		}
	}
	return nil
}

// storeFor returns a Storage rooted at the directory containing path.
func storeFor(path string, log *slog.Logger) *storage.Storage {
	return storage.New(osfs.New(filepath.Dir(path)), log)
}

func loadConfig(ctx context.Context, cfg *config.Config, src string, explicit map[string]bool) error {
	dir, err := os.MkdirTemp("", "islandgen-config-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path, err := config.Fetch(ctx, src, dir)
	if err != nil {
		return err
	}
	fromFile, err := config.Load(path)
	if err != nil {
		return err
	}
	config.Merge(cfg, fromFile, explicit)
	return nil
}

// explicitFlags returns the canonical names of flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		name := f.Name
		if alias, ok := flagAliases[name]; ok {
			name = alias
		}
		set[name] = true
	})
	return set
}
