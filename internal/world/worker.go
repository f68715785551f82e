package world

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/OCharnyshevich/islandgen/internal/world/gen"
)

// Params are the per-pixel generation settings shared by all workers.
type Params struct {
	Width, Height int
	Elevation     gen.FieldParams
	Moisture      gen.FieldParams
	Falloff       float64
}

// Histogram counts pixels per biome.
type Histogram [gen.NumBiomes]int

// Add accumulates o into h.
func (h *Histogram) Add(o Histogram) {
	for i, n := range o {
		h[i] += n
	}
}

// Total returns the number of counted pixels.
func (h *Histogram) Total() int {
	var n int
	for _, c := range h {
		n += c
	}
	return n
}

// TileResult is the rendered output of one tile. Image bounds start at the
// origin; pixel (x, y) of Image is canvas pixel (Tile.StartX+x, Tile.StartY+y).
type TileResult struct {
	Tile      gen.Tile
	Image     *image.RGBA
	Histogram Histogram
}

// GenerationError reports a fault while rendering a tile.
type GenerationError struct {
	Tile gen.Tile
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate tile %s: %v", e.Tile, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Pixel computes the shaped elevation and moisture at canvas pixel (gx, gy).
// The values depend only on the global coordinates, never on the tile.
func Pixel(elevation, moisture gen.Field, gx, gy int, p Params) (e, m int, err error) {
	ev := gen.SampleAt(elevation, gx, gy, p.Elevation)
	mv := gen.SampleAt(moisture, gx, gy, p.Moisture)
	if !finite(ev) || !finite(mv) {
		return 0, 0, fmt.Errorf("non-finite noise sample at (%d,%d): elevation=%v moisture=%v", gx, gy, ev, mv)
	}

	e = gen.Shape(gen.Quantize(ev), gx, gy, p.Width, p.Height, p.Falloff)
	return gen.ClampByte(e), gen.Quantize(mv), nil
}

// renderTile samples, shapes and classifies every pixel of tile. It stops
// early when ctx is cancelled by a failing sibling.
func renderTile(ctx context.Context, tile gen.Tile, elevation, moisture gen.Field, p Params) (res *TileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &GenerationError{Tile: tile, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	img := image.NewRGBA(image.Rect(0, 0, tile.Width(), tile.Height()))
	res = &TileResult{Tile: tile, Image: img}

	for y := 0; y < tile.Height(); y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		gy := tile.StartY + y
		for x := 0; x < tile.Width(); x++ {
			gx := tile.StartX + x

			e, m, err := Pixel(elevation, moisture, gx, gy, p)
			if err != nil {
				return nil, &GenerationError{Tile: tile, Err: err}
			}
			b := gen.Classify(e, m)
			if b == gen.Gap {
				return nil, &GenerationError{
					Tile: tile,
					Err:  fmt.Errorf("unclassifiable sample at (%d,%d): elevation=%d moisture=%d", gx, gy, e, m),
				}
			}

			img.SetRGBA(x, y, b.Color())
			res.Histogram[b]++
		}
	}
	return res, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
