package label

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedText(t *testing.T) {
	assert.Equal(t, "Seed: 42", SeedText(42))
}

func TestDrawStaysInsideBounds(t *testing.T) {
	bg := color.RGBA{0, 119, 190, 255}
	img := image.NewRGBA(image.Rect(0, 0, 200, 40))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	text := SeedText(1234)
	Draw(img, text)
	box := Bounds(text)

	var white, black int
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			c := img.RGBAAt(x, y)
			if c == bg {
				continue
			}
			assert.True(t, image.Pt(x, y).In(box), "pixel (%d,%d) outside %v changed", x, y, box)
			switch c {
			case textColor:
				white++
			case shadowColor:
				black++
			}
		}
	}
	assert.NotZero(t, white, "no text pixels drawn")
	assert.NotZero(t, black, "no shadow pixels drawn")
}

func TestBoundsGrowsWithText(t *testing.T) {
	short := Bounds(SeedText(1))
	long := Bounds(SeedText(10000))
	assert.Equal(t, Origin.X, short.Min.X)
	assert.Equal(t, 4*7, long.Dx()-short.Dx())
}
