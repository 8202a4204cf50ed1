// Package compare composes the side-by-side before/after visualization.
package compare

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelColor is the green used for the overlay text.
var labelColor = color.NRGBA{R: 0, G: 255, B: 0, A: 255}

// SideBySide places original and enhanced next to each other on a canvas of
// width 2W and draws a label over each half. Both images must share
// dimensions.
func SideBySide(original, enhanced image.Image, leftLabel, rightLabel string) (*image.NRGBA, error) {
	ob := original.Bounds()
	eb := enhanced.Bounds()
	w, h := ob.Dx(), ob.Dy()
	if w != eb.Dx() || h != eb.Dy() {
		return nil, fmt.Errorf("dimension mismatch: %dx%d vs %dx%d", w, h, eb.Dx(), eb.Dy())
	}

	canvas := imaging.New(2*w, h, color.NRGBA{})
	canvas = imaging.Paste(canvas, original, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, enhanced, image.Pt(w, 0))

	drawLabel(canvas, leftLabel, 10, 30)
	drawLabel(canvas, rightLabel, w+10, 30)
	return canvas, nil
}

// drawLabel renders text at the given baseline position.
func drawLabel(dst *image.NRGBA, text string, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
