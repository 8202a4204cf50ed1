package raster

import (
	"runtime"
	"sync"
)

// Plane is a single W×H channel, row-major.
type Plane struct {
	W, H int
	Pix  []uint8
}

// NewPlane allocates a zeroed plane.
func NewPlane(w, h int) *Plane {
	return &Plane{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Clone returns an independent copy.
func (p *Plane) Clone() *Plane {
	out := NewPlane(p.W, p.H)
	copy(out.Pix, p.Pix)
	return out
}

// At returns the value at (x, y). No bounds check beyond the slice's own.
func (p *Plane) At(x, y int) uint8 { return p.Pix[y*p.W+x] }

// Set writes the value at (x, y).
func (p *Plane) Set(x, y int, v uint8) { p.Pix[y*p.W+x] = v }

// Mean returns the average sample value, 0 for an empty plane.
func (p *Plane) Mean() float64 {
	if len(p.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range p.Pix {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(p.Pix))
}

// ParallelRows runs fn over [0,h) split into contiguous row bands, one
// goroutine per band. Bands are disjoint, so fn may write its output rows
// without locking. workers <= 0 means NumCPU.
func ParallelRows(h, workers int, fn func(y0, y1 int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		fn(0, h)
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		y0 := i * h / workers
		y1 := (i + 1) * h / workers
		if y0 == y1 {
			continue
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
