// Package label draws the seed caption onto a finished map.
package label

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Origin is the baseline position of the first glyph.
var Origin = image.Pt(6, 16)

var (
	textColor   = color.RGBA{255, 255, 255, 255}
	shadowColor = color.RGBA{0, 0, 0, 255}
)

// SeedText formats the caption for seed.
func SeedText(seed int64) string {
	return fmt.Sprintf("Seed: %d", seed)
}

// Draw writes text at Origin with a one pixel drop shadow.
func Draw(dst draw.Image, text string) {
	face := basicfont.Face7x13
	drawString(dst, face, text, Origin.Add(image.Pt(1, 1)), shadowColor)
	drawString(dst, face, text, Origin, textColor)
}

// Bounds returns the area Draw may touch for text.
func Bounds(text string) image.Rectangle {
	face := basicfont.Face7x13
	b, _ := font.BoundString(face, text)
	r := image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor(),
		b.Max.X.Ceil(), b.Max.Y.Ceil(),
	).Add(Origin)
	// Include the shadow offset.
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

func drawString(dst draw.Image, face font.Face, text string, at image.Point, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}
