package gen

import (
	"fmt"
	"image"
	"math"
)

// Tile is a half-open rectangle [StartX, EndX) x [StartY, EndY) of the canvas.
type Tile struct {
	StartX, StartY int
	EndX, EndY     int
}

// Width returns the number of columns in t.
func (t Tile) Width() int { return t.EndX - t.StartX }

// Height returns the number of rows in t.
func (t Tile) Height() int { return t.EndY - t.StartY }

// Rect returns t as a canvas rectangle.
func (t Tile) Rect() image.Rectangle {
	return image.Rect(t.StartX, t.StartY, t.EndX, t.EndY)
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", t.StartX, t.StartY, t.EndX, t.EndY)
}

// ConfigurationError reports a worker count that cannot tile the canvas.
type ConfigurationError struct {
	Workers int
	Width   int
	Height  int
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot split %dx%d canvas among %d workers: %s",
		e.Width, e.Height, e.Workers, e.Reason)
}

// Grid returns the column and row counts used for workers: the smallest
// divisor n of workers with n >= ceil(sqrt(workers)) becomes the column count.
// Non-positive worker counts have no grid.
func Grid(workers int) (cols, rows int) {
	if workers < 1 {
		return 0, 0
	}
	n := int(math.Ceil(math.Sqrt(float64(workers))))
	for workers%n != 0 {
		n++
	}
	return n, workers / n
}

// Tiles splits a width x height canvas into exactly workers equal tiles laid
// out row-major. The resolution must be divisible by the grid in both
// dimensions.
func Tiles(width, height, workers int) ([]Tile, error) {
	cfgErr := func(format string, args ...any) error {
		return &ConfigurationError{
			Workers: workers,
			Width:   width,
			Height:  height,
			Reason:  fmt.Sprintf(format, args...),
		}
	}

	if workers < 1 {
		return nil, cfgErr("worker count must be at least 1")
	}
	if width < 1 || height < 1 {
		return nil, cfgErr("canvas must be at least 1x1")
	}

	cols, rows := Grid(workers)
	if width%cols != 0 {
		return nil, cfgErr("width is not divisible by %d grid columns", cols)
	}
	if height%rows != 0 {
		return nil, cfgErr("height is not divisible by %d grid rows", rows)
	}

	tw, th := width/cols, height/rows
	tiles := make([]Tile, 0, workers)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tiles = append(tiles, Tile{
				StartX: c * tw,
				StartY: r * th,
				EndX:   (c + 1) * tw,
				EndY:   (r + 1) * th,
			})
		}
	}
	return tiles, nil
}
