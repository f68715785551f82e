package gen

import "math"

// FieldParams controls how one noise field is sampled.
type FieldParams struct {
	// Scale divides global pixel coordinates before sampling.
	Scale float64
	// Octaves is the number of detail octaves added on top of the base sample.
	Octaves int
}

// Sample combines the base sample at (x, y) with octaves additional samples,
// each at double the frequency and half the amplitude of the previous one.
// The sum is normalized by the total amplitude, keeping the result in about
// [-1, 1] for any octave count.
func Sample(f Field, x, y float64, octaves int) float64 {
	total := f.Eval2(x, y)
	amplitude, frequency, amplitudeSum := 1.0, 1.0, 1.0

	for range octaves {
		frequency *= 2
		amplitude *= 0.5
		amplitudeSum += amplitude
		total += f.Eval2(x*frequency, y*frequency) * amplitude
	}
	return total / amplitudeSum
}

// SampleAt samples f at global pixel (gx, gy) using p.
func SampleAt(f Field, gx, gy int, p FieldParams) float64 {
	return Sample(f, float64(gx)/p.Scale, float64(gy)/p.Scale, p.Octaves)
}

// Quantize maps a sample from [-1, 1] onto the byte range [0, 255].
func Quantize(v float64) int {
	return ClampByte(int(math.Floor(v*127 + 127)))
}

// ClampByte clamps v to [0, 255].
func ClampByte(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}
