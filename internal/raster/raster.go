// Package raster holds the in-memory image representation the enhancement
// pipeline operates on: a W×H grid of interleaved 8-bit B,G,R samples, plus
// single-channel planes split off from it. Conversion to and from image.Image
// happens at the edges; everything between works on raw channel bytes.
package raster

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidImage reports an input that cannot feed the pipeline: zero
// dimensions or an undecodable source.
var ErrInvalidImage = errors.New("invalid image")

// Raster is a W×H image with three interleaved 8-bit channels in B,G,R order.
type Raster struct {
	W, H int
	// Pix holds W*H*3 bytes, row-major, 3 bytes per pixel (B, G, R).
	Pix []uint8
}

// New allocates a zeroed raster.
func New(w, h int) *Raster {
	return &Raster{W: w, H: h, Pix: make([]uint8, w*h*3)}
}

// FromImage converts a decoded image into a device-color raster.
// The image is normalized to NRGBA first so every source type (JPEG YCbCr,
// paletted PNG, ...) goes through the same fast path.
func FromImage(img image.Image) (*Raster, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidImage)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: zero dimensions %dx%d", ErrInvalidImage, w, h)
	}

	nrgba := imaging.Clone(img) // *image.NRGBA, bounds at origin
	r := New(w, h)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		dst := r.Pix[y*w*3 : (y+1)*w*3]
		si, di := 0, 0
		for x := 0; x < w; x++ {
			dst[di] = src[si+2]   // B
			dst[di+1] = src[si+1] // G
			dst[di+2] = src[si]   // R
			si += 4
			di += 3
		}
	}
	return r, nil
}

// ToImage converts the raster back to an opaque NRGBA image for encoding.
func (r *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.W, r.H))
	for y := 0; y < r.H; y++ {
		src := r.Pix[y*r.W*3 : (y+1)*r.W*3]
		dst := img.Pix[y*img.Stride : y*img.Stride+r.W*4]
		si, di := 0, 0
		for x := 0; x < r.W; x++ {
			dst[di] = src[si+2]   // R
			dst[di+1] = src[si+1] // G
			dst[di+2] = src[si]   // B
			dst[di+3] = 255
			si += 3
			di += 4
		}
	}
	return img
}

// Split copies the three channels into independent planes.
func (r *Raster) Split() (b, g, rp *Plane) {
	b = NewPlane(r.W, r.H)
	g = NewPlane(r.W, r.H)
	rp = NewPlane(r.W, r.H)
	for i, j := 0, 0; i < len(r.Pix); i, j = i+3, j+1 {
		b.Pix[j] = r.Pix[i]
		g.Pix[j] = r.Pix[i+1]
		rp.Pix[j] = r.Pix[i+2]
	}
	return b, g, rp
}

// Merge recombines three planes into an interleaved raster.
// All planes must share dimensions; a mismatch is a caller bug.
func Merge(b, g, r *Plane) *Raster {
	if b.W != g.W || b.W != r.W || b.H != g.H || b.H != r.H {
		panic(fmt.Sprintf("raster: merge dimension mismatch: %dx%d / %dx%d / %dx%d",
			b.W, b.H, g.W, g.H, r.W, r.H))
	}
	out := New(b.W, b.H)
	for i, j := 0, 0; i < len(out.Pix); i, j = i+3, j+1 {
		out.Pix[i] = b.Pix[j]
		out.Pix[i+1] = g.Pix[j]
		out.Pix[i+2] = r.Pix[j]
	}
	return out
}
