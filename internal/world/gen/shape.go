package gen

import "math"

// Shape lowers raw elevation in proportion to the distance of (x, y) from the
// canvas center, reaching strength at the corners. The result is not clamped.
func Shape(raw, x, y, width, height int, strength float64) int {
	cx := float64(width) / 2
	cy := float64(height) / 2
	dist := math.Hypot(float64(x)-cx, float64(y)-cy)
	maxDist := math.Hypot(cx, cy)
	return raw - int(math.Floor(dist/maxDist*strength))
}
