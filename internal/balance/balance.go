// Package balance restores channel balance in a device-color raster before
// the perceptual-space stages run. Two strategies are available: physics-based
// red-channel compensation (default, good under blue-green water) and a
// capped gray-world white balance.
package balance

import (
	"fmt"

	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

// Corrector adjusts the three device-color planes of one image.
// Implementations return planes of the same dimensions; inputs they do not
// touch may be returned as-is.
type Corrector interface {
	Name() string
	Correct(b, g, r *raster.Plane) (*raster.Plane, *raster.Plane, *raster.Plane)
}

// Parse resolves a corrector by flag value.
func Parse(name string, gainCap float64) (Corrector, error) {
	switch name {
	case "red", "red-compensation":
		return RedCompensation{}, nil
	case "gray-world":
		return GrayWorld{GainCap: gainCap}, nil
	default:
		return nil, fmt.Errorf("unknown balance strategy %q (want red-compensation or gray-world)", name)
	}
}

// RedCompensation synthesizes a corrected red plane from red and green:
//
//	new = r + (g-r)·(1-r)·g    (all in [0,1])
//
// Red is boosted only where green exceeds red, (1-r) limits already-bright
// pixels, and the trailing g suppresses the boost over open water with no
// green signal. Where g <= r the term is non-positive, so red may drop
// slightly; that asymmetry is intentional and must not be clamped away.
type RedCompensation struct{}

func (RedCompensation) Name() string { return "red-compensation" }

func (RedCompensation) Correct(b, g, r *raster.Plane) (*raster.Plane, *raster.Plane, *raster.Plane) {
	out := raster.NewPlane(r.W, r.H)
	for i := range r.Pix {
		rf := float64(r.Pix[i]) / 255
		gf := float64(g.Pix[i]) / 255
		c := rf + (gf-rf)*(1-rf)*gf
		out.Pix[i] = clampU8(c * 255)
	}
	return b, g, out
}

// GrayWorld scales each channel toward the mean of all three, assuming the
// scene averages to neutral gray. Gains are capped so a nearly-absent channel
// (deep-water red) is not amplified into noise. A channel with zero mean is
// left unscaled rather than dividing by zero.
type GrayWorld struct {
	GainCap float64 // maximum per-channel gain, 4.0 by default
}

func (GrayWorld) Name() string { return "gray-world" }

func (w GrayWorld) Correct(b, g, r *raster.Plane) (*raster.Plane, *raster.Plane, *raster.Plane) {
	avgB := b.Mean()
	avgG := g.Mean()
	avgR := r.Mean()
	avgGray := (avgB + avgG + avgR) / 3

	return scale(b, w.gain(avgGray, avgB)),
		scale(g, w.gain(avgGray, avgG)),
		scale(r, w.gain(avgGray, avgR))
}

func (w GrayWorld) gain(avgGray, avgChan float64) float64 {
	if avgChan == 0 {
		return 1
	}
	gain := avgGray / avgChan
	if gain > w.GainCap {
		gain = w.GainCap
	}
	return gain
}

func scale(p *raster.Plane, gain float64) *raster.Plane {
	if gain == 1 {
		return p
	}
	out := raster.NewPlane(p.W, p.H)
	for i, v := range p.Pix {
		out.Pix[i] = clampU8(float64(v) * gain)
	}
	return out
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
