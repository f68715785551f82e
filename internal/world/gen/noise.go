package gen

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"
)

// Noise primitive names accepted by NewField.
const (
	NoiseOpenSimplex = "opensimplex"
	NoiseSimplex     = "simplex"
)

// Field is a seeded coherent noise function. Implementations must be safe for
// concurrent reads and return values in roughly [-1, 1].
type Field interface {
	Eval2(x, y float64) float64
}

// NewField creates the named noise primitive seeded with seed.
func NewField(kind string, seed int64) (Field, error) {
	switch kind {
	case NoiseOpenSimplex, "":
		return opensimplex.New(seed), nil
	case NoiseSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise primitive %q", kind)
	}
}

// Simplex noise based on the original algorithm by Ken Perlin.

// grad2 are gradient vectors for 2D simplex noise.
var grad2 = [12][2]float64{
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
	{1, 0},
	{-1, 0},
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
	{0, 1},
	{0, -1},
}

// Simplex produces deterministic 2D simplex noise from a seed.
type Simplex struct {
	perm [512]int
}

// NewSimplex creates a simplex field with a seeded permutation table.
func NewSimplex(seed int64) *Simplex {
	sx := &Simplex{}

	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates shuffle driven by an LCG.
	s := seed
	for i := 255; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int((s>>33)&0x7FFFFFFF) % (i + 1)
		if j < 0 {
			j = -j
		}
		p[i], p[j] = p[j], p[i]
	}

	for i := 0; i < 512; i++ {
		sx.perm[i] = p[i&255]
	}
	return sx
}

// Eval2 returns 2D simplex noise in [-1, 1].
func (sx *Simplex) Eval2(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := sx.perm[ii+sx.perm[jj]] % 12
	gi1 := sx.perm[ii+i1+sx.perm[jj+j1]] % 12
	gi2 := sx.perm[ii+1+sx.perm[jj+1]] % 12

	return 70.0 * (corner(gi0, x0, y0) + corner(gi1, x1, y1) + corner(gi2, x2, y2))
}

func corner(gi int, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	g := grad2[gi]
	return t * t * (g[0]*x + g[1]*y)
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
