package gen

import (
	"math"
	"testing"
)

// constField returns the same value everywhere.
type constField float64

func (c constField) Eval2(x, y float64) float64 { return float64(c) }

// recordField records every coordinate it is sampled at.
type recordField struct {
	xs, ys []float64
}

func (r *recordField) Eval2(x, y float64) float64 {
	r.xs = append(r.xs, x)
	r.ys = append(r.ys, y)
	return 0
}

func TestSampleZeroOctavesIsRawNoise(t *testing.T) {
	f := NewSimplex(99)
	for i := 0; i < 200; i++ {
		x := float64(i)*0.31 - 20
		y := float64(i)*0.17 + 3
		if got, want := Sample(f, x, y, 0), f.Eval2(x, y); got != want {
			t.Fatalf("Sample(%f, %f, 0) = %f, want %f", x, y, got, want)
		}
	}
}

func TestSampleFrequencies(t *testing.T) {
	r := &recordField{}
	Sample(r, 1.5, -2, 3)

	wantX := []float64{1.5, 3, 6, 12}
	wantY := []float64{-2, -4, -8, -16}
	if len(r.xs) != len(wantX) {
		t.Fatalf("sampled %d times, want %d", len(r.xs), len(wantX))
	}
	for i := range wantX {
		if r.xs[i] != wantX[i] || r.ys[i] != wantY[i] {
			t.Errorf("octave %d sampled at (%f, %f), want (%f, %f)", i, r.xs[i], r.ys[i], wantX[i], wantY[i])
		}
	}
}

func TestSampleNormalized(t *testing.T) {
	for _, octaves := range []int{0, 1, 4, 8, 16} {
		for _, v := range []float64{-1, -0.5, 0.25, 1} {
			got := Sample(constField(v), 3, 4, octaves)
			if math.Abs(got-v) > 1e-12 {
				t.Errorf("Sample(const %f, octaves=%d) = %f, want %f", v, octaves, got, v)
			}
		}
	}
}

func TestSampleRange(t *testing.T) {
	f := NewSimplex(123)
	for i := 0; i < 1000; i++ {
		x := float64(i)*0.1 - 50
		y := float64(i)*0.2 - 50
		v := Sample(f, x, y, 8)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Sample = %f, out of [-1,1]", v)
		}
	}
}

func TestSampleSmoothness(t *testing.T) {
	f := NewSimplex(456)

	prev := Sample(f, 0, 0, 3)
	step := 0.01
	for i := 1; i < 1000; i++ {
		x := float64(i) * step
		curr := Sample(f, x, 0, 3)
		if diff := math.Abs(curr - prev); diff > 0.1 {
			t.Fatalf("noise changed too rapidly at x=%f: diff=%f", x, diff)
		}
		prev = curr
	}
}

func TestSampleAtScalesGlobalCoordinates(t *testing.T) {
	r := &recordField{}
	SampleAt(r, 250, 50, FieldParams{Scale: 100, Octaves: 0})
	if r.xs[0] != 2.5 || r.ys[0] != 0.5 {
		t.Errorf("SampleAt sampled (%f, %f), want (2.5, 0.5)", r.xs[0], r.ys[0])
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-1, 0},
		{-2, 0},
		{0, 127},
		{0.5, 190},
		{1, 254},
		{1.01, 255},
		{3, 255},
		{-0.001, 126},
	}
	for _, tt := range tests {
		if got := Quantize(tt.in); got != tt.want {
			t.Errorf("Quantize(%f) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
