package world

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/OCharnyshevich/islandgen/internal/config"
	"github.com/OCharnyshevich/islandgen/internal/label"
	"github.com/OCharnyshevich/islandgen/internal/world/gen"
)

// Result is a finished world map.
type Result struct {
	Canvas    *image.RGBA
	Histogram Histogram
	Tiles     []gen.Tile
	Elapsed   time.Duration
}

// Generator renders island maps from a seed. Its noise fields are created
// once and only read afterwards.
type Generator struct {
	log       *slog.Logger
	seed      int64
	threads   int
	drawLabel bool
	params    Params
	elevation gen.Field
	moisture  gen.Field
}

// New creates a Generator for cfg. cfg.Seed must already be resolved.
func New(cfg *config.Config, log *slog.Logger) (*Generator, error) {
	elevation, err := gen.NewField(cfg.Noise, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("elevation field: %w", err)
	}
	moisture, err := gen.NewField(cfg.Noise, gen.DeriveSeed(cfg.Seed, gen.MoistureLabel))
	if err != nil {
		return nil, fmt.Errorf("moisture field: %w", err)
	}

	return &Generator{
		log:       log,
		seed:      cfg.Seed,
		threads:   cfg.Threads,
		drawLabel: cfg.Label,
		params: Params{
			Width:     cfg.Width,
			Height:    cfg.Height,
			Elevation: cfg.Elevation.Params(),
			Moisture:  cfg.Moisture.Params(),
			Falloff:   cfg.Falloff,
		},
		elevation: elevation,
		moisture:  moisture,
	}, nil
}

// Generate renders the map with one goroutine per tile. It returns a
// *gen.ConfigurationError before sampling anything when the worker count
// cannot tile the canvas, and a *GenerationError when any tile fails; in
// both cases no canvas is produced.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	tiles, err := gen.Tiles(g.params.Width, g.params.Height, g.threads)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]*TileResult, len(tiles))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, tile := range tiles {
		eg.Go(func() error {
			res, err := renderTile(egCtx, tile, g.elevation, g.moisture, g.params)
			if err != nil {
				return err
			}
			g.log.Debug("tile rendered", "tile", i, "rect", tile.String())
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := &Result{
		Canvas: image.NewRGBA(image.Rect(0, 0, g.params.Width, g.params.Height)),
		Tiles:  tiles,
	}
	for _, res := range results {
		draw.Draw(out.Canvas, res.Tile.Rect(), res.Image, image.Point{}, draw.Src)
		out.Histogram.Add(res.Histogram)
	}

	if g.drawLabel {
		label.Draw(out.Canvas, label.SeedText(g.seed))
	}
	out.Elapsed = time.Since(start)

	g.log.Info("world generated",
		"seed", g.seed,
		"size", fmt.Sprintf("%dx%d", g.params.Width, g.params.Height),
		"tiles", len(tiles),
		"elapsed", out.Elapsed,
	)
	g.log.Info("biome coverage", coverageAttrs(out.Histogram)...)
	return out, nil
}

func coverageAttrs(h Histogram) []any {
	total := h.Total()
	if total == 0 {
		return nil
	}
	attrs := make([]any, 0, gen.NumBiomes)
	for i, n := range h {
		if n == 0 {
			continue
		}
		attrs = append(attrs, slog.Float64(gen.Biome(i).String(), float64(n)*100/float64(total)))
	}
	return attrs
}
