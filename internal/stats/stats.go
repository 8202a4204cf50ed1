// Package stats computes scalar summary statistics over a grayscale
// derivative of a raster, for before/after reporting.
package stats

import (
	"fmt"
	"math"

	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

// Summary describes the luminance distribution of one image.
type Summary struct {
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      uint8   `json:"min"`
	Max      uint8   `json:"max"`
	Contrast float64 `json:"contrast"` // std / mean, 0 when mean is 0
}

// Grayscale converts a device-color raster to a single luma plane using the
// BT.601 weights (matching the usual BGR→gray conversion).
func Grayscale(r *raster.Raster) *raster.Plane {
	out := raster.NewPlane(r.W, r.H)
	for i, j := 0, 0; i < len(r.Pix); i, j = i+3, j+1 {
		b := float64(r.Pix[i])
		g := float64(r.Pix[i+1])
		rr := float64(r.Pix[i+2])
		out.Pix[j] = uint8(math.Round(0.114*b + 0.587*g + 0.299*rr))
	}
	return out
}

// Compute summarizes the grayscale derivative of a raster.
func Compute(r *raster.Raster) Summary {
	return ComputePlane(Grayscale(r))
}

// ComputePlane summarizes a single plane.
func ComputePlane(p *raster.Plane) Summary {
	n := len(p.Pix)
	if n == 0 {
		return Summary{}
	}
	var sum, sumSq float64
	min, max := p.Pix[0], p.Pix[0]
	for _, v := range p.Pix {
		f := float64(v)
		sum += f
		sumSq += f * f
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0 // float cancellation on near-constant planes
	}
	s := Summary{Mean: mean, Std: math.Sqrt(variance), Min: min, Max: max}
	if mean > 0 {
		s.Contrast = s.Std / mean
	}
	return s
}

// String formats the summary the way the report prints it.
func (s Summary) String() string {
	return fmt.Sprintf("mean=%.2f std=%.2f min=%d max=%d contrast=%.3f",
		s.Mean, s.Std, s.Min, s.Max, s.Contrast)
}
