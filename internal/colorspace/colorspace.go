// Package colorspace converts device-color rasters (8-bit B,G,R) to and from
// an 8-bit CIE-LAB encoding: L* scaled from [0,100] to [0,255], a* and b*
// offset by +128 so 128 is neutral. Both directions use the same closed-form
// sRGB ↔ linear ↔ XYZ ↔ LAB chain; round trips stay within ±2 per channel.
package colorspace

import (
	"math"

	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

// D65 reference white, 2° observer.
const (
	refX = 0.95047
	refY = 1.00000
	refZ = 1.08883
)

// ToLab converts three device-color planes to L, a, b planes.
func ToLab(b, g, r *raster.Plane, workers int) (l, aa, bb *raster.Plane) {
	l = raster.NewPlane(b.W, b.H)
	aa = raster.NewPlane(b.W, b.H)
	bb = raster.NewPlane(b.W, b.H)
	raster.ParallelRows(b.H, workers, func(y0, y1 int) {
		for i := y0 * b.W; i < y1*b.W; i++ {
			l.Pix[i], aa.Pix[i], bb.Pix[i] = bgrToLab(b.Pix[i], g.Pix[i], r.Pix[i])
		}
	})
	return l, aa, bb
}

// ToBGR converts L, a, b planes back to device-color planes.
func ToBGR(l, aa, bb *raster.Plane, workers int) (b, g, r *raster.Plane) {
	b = raster.NewPlane(l.W, l.H)
	g = raster.NewPlane(l.W, l.H)
	r = raster.NewPlane(l.W, l.H)
	raster.ParallelRows(l.H, workers, func(y0, y1 int) {
		for i := y0 * l.W; i < y1*l.W; i++ {
			b.Pix[i], g.Pix[i], r.Pix[i] = labToBGR(l.Pix[i], aa.Pix[i], bb.Pix[i])
		}
	})
	return b, g, r
}

func bgrToLab(b8, g8, r8 uint8) (l8, a8, bb8 uint8) {
	r := srgbToLinear(float64(r8) / 255)
	g := srgbToLinear(float64(g8) / 255)
	b := srgbToLinear(float64(b8) / 255)

	// Linear sRGB → XYZ, D65.
	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)

	l := 116*fy - 16        // [0,100]
	a := 500 * (fx - fy)    // ±128 covers the sRGB gamut
	bv := 200 * (fy - fz)

	l8 = clampU8(math.Round(l * 255 / 100))
	a8 = clampU8(math.Round(a + 128))
	bb8 = clampU8(math.Round(bv + 128))
	return l8, a8, bb8
}

func labToBGR(l8, a8, bb8 uint8) (b8, g8, r8 uint8) {
	l := float64(l8) * 100 / 255
	a := float64(a8) - 128
	bv := float64(bb8) - 128

	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - bv/200

	x := labFInv(fx) * refX
	y := labFInv(fy) * refY
	z := labFInv(fz) * refZ

	// XYZ → linear sRGB, D65.
	r := 3.2404542*x - 1.5371385*y - 0.4985314*z
	g := -0.9692660*x + 1.8760108*y + 0.0415560*z
	b := 0.0556434*x - 0.2040259*y + 1.0572252*z

	r8 = clampU8(math.Round(linearToSrgb(r) * 255))
	g8 = clampU8(math.Round(linearToSrgb(g) * 255))
	b8 = clampU8(math.Round(linearToSrgb(b) * 255))
	return b8, g8, r8
}

// srgbToLinear applies the piecewise sRGB transfer function.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSrgb(c float64) float64 {
	if c <= 0 {
		return 0
	}
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
