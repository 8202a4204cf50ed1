package pipeline

import (
	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

// neutralizeCast shifts the chroma planes toward neutral (128) in proportion
// to how far their global means sit from it, weighted by each pixel's own
// luminance so shadows are not over-corrected:
//
//	a' = a - (avgA-128)·(l/255)·strength
//
// A raster whose chroma means are already 128 passes through unchanged.
// The luminance plane is untouched.
func neutralizeCast(l, a, b *raster.Plane, strength float64, workers int) (*raster.Plane, *raster.Plane) {
	shiftA := (a.Mean() - 128) * strength
	shiftB := (b.Mean() - 128) * strength
	if shiftA == 0 && shiftB == 0 {
		return a, b
	}

	outA := raster.NewPlane(a.W, a.H)
	outB := raster.NewPlane(b.W, b.H)
	raster.ParallelRows(a.H, workers, func(y0, y1 int) {
		for i := y0 * a.W; i < y1*a.W; i++ {
			weight := float64(l.Pix[i]) / 255
			outA.Pix[i] = clampU8(float64(a.Pix[i]) - shiftA*weight)
			outB.Pix[i] = clampU8(float64(b.Pix[i]) - shiftB*weight)
		}
	})
	return outA, outB
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
