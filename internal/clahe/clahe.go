// Package clahe implements tile-based histogram equalization with clip
// limiting for a single 8-bit plane.
//
// The plane is partitioned into a grid of tiles (edge tiles may be one pixel
// wider or taller when dimensions do not divide evenly). Each tile gets a
// 256-bin histogram, clipped so no bin exceeds clipLimit times the uniform
// bin height; the clipped excess is redistributed uniformly in a single pass
// (bins may end marginally above the limit — the excess of the redistribution
// itself is not re-clipped). The per-tile cumulative distribution becomes an
// intensity mapping, and every pixel blends the mappings of its four nearest
// tile centers bilinearly, which removes visible tile seams. Pixels outside
// the outermost centers fall back to the single nearest tile's mapping.
package clahe

import (
	"math"

	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

const bins = 256

// Apply equalizes src over a gridW×gridH tile grid and returns a new plane.
// clipLimit is normalized against a uniform histogram; 1.0 clips everything
// to the uniform height, larger values permit stronger contrast gain.
func Apply(src *raster.Plane, gridW, gridH int, clipLimit float64, workers int) *raster.Plane {
	w, h := src.W, src.H
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}
	if gridW > w {
		gridW = w
	}
	if gridH > h {
		gridH = h
	}

	luts := make([][bins]uint8, gridW*gridH)
	centersX := make([]float64, gridW)
	centersY := make([]float64, gridH)

	// Per-tile histogram → clip → CDF mapping.
	for ty := 0; ty < gridH; ty++ {
		y0, y1 := tileSpan(ty, gridH, h)
		centersY[ty] = (float64(y0) + float64(y1)) / 2
		for tx := 0; tx < gridW; tx++ {
			x0, x1 := tileSpan(tx, gridW, w)
			centersX[tx] = (float64(x0) + float64(x1)) / 2

			var hist [bins]int
			for y := y0; y < y1; y++ {
				row := src.Pix[y*w+x0 : y*w+x1]
				for _, v := range row {
					hist[v]++
				}
			}
			npix := (x1 - x0) * (y1 - y0)
			clipHistogram(&hist, clipLimit, npix)
			buildLUT(&luts[ty*gridW+tx], &hist, npix)
		}
	}

	// Per-column and per-row blend coefficients, shared by all pixels.
	xi0, xi1, xf := blendAxis(w, centersX)
	yi0, yi1, yf := blendAxis(h, centersY)

	out := raster.NewPlane(w, h)
	raster.ParallelRows(h, workers, func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			top := yi0[y] * gridW
			bot := yi1[y] * gridW
			fy := yf[y]
			for x := 0; x < w; x++ {
				v := src.Pix[y*w+x]
				fx := xf[x]

				tl := float64(luts[top+xi0[x]][v])
				tr := float64(luts[top+xi1[x]][v])
				bl := float64(luts[bot+xi0[x]][v])
				br := float64(luts[bot+xi1[x]][v])

				t := tl + (tr-tl)*fx
				b := bl + (br-bl)*fx
				out.Pix[y*w+x] = uint8(math.Round(t + (b-t)*fy))
			}
		}
	})
	return out
}

// tileSpan returns the half-open pixel range of tile t along an axis of
// length n split into grid tiles.
func tileSpan(t, grid, n int) (int, int) {
	return t * n / grid, (t + 1) * n / grid
}

// clipHistogram caps each bin at clipLimit times the uniform height and
// redistributes the total excess uniformly: an equal share to every bin,
// then the leftover spread at a regular stride so no intensity region is
// favored. The histogram total is preserved.
func clipHistogram(hist *[bins]int, clipLimit float64, npix int) {
	limit := int(clipLimit * float64(npix) / bins)
	if limit < 1 {
		limit = 1
	}
	excess := 0
	for i, c := range hist {
		if c > limit {
			excess += c - limit
			hist[i] = limit
		}
	}
	if excess == 0 {
		return
	}
	share := excess / bins
	rem := excess % bins
	for i := range hist {
		hist[i] += share
	}
	if rem > 0 {
		step := bins / rem
		if step < 1 {
			step = 1
		}
		for i := 0; i < bins && rem > 0; i += step {
			hist[i]++
			rem--
		}
	}
}

// buildLUT turns a histogram into the standard equalization mapping,
// scaled to [0,255].
func buildLUT(lut *[bins]uint8, hist *[bins]int, npix int) {
	scale := 255 / float64(npix)
	cum := 0
	for i, c := range hist {
		cum += c
		lut[i] = uint8(math.Round(float64(cum) * scale))
	}
}

// blendAxis precomputes, for every coordinate on one axis, the two tile
// indices whose centers bracket it and the interpolation fraction toward the
// second. Coordinates outside the outermost centers collapse to a single
// tile (fraction 0).
func blendAxis(n int, centers []float64) (i0, i1 []int, frac []float64) {
	i0 = make([]int, n)
	i1 = make([]int, n)
	frac = make([]float64, n)
	last := len(centers) - 1
	for p := 0; p < n; p++ {
		fp := float64(p) + 0.5
		switch {
		case fp <= centers[0]:
			i0[p], i1[p] = 0, 0
		case fp >= centers[last]:
			i0[p], i1[p] = last, last
		default:
			t := 0
			for centers[t+1] < fp {
				t++
			}
			i0[p], i1[p] = t, t+1
			frac[p] = (fp - centers[t]) / (centers[t+1] - centers[t])
		}
	}
	return i0, i1, frac
}
