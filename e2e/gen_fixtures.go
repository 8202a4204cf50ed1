//go:build ignore

// gen_fixtures creates small synthetic underwater-looking images for the
// E2E smoke test. Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	// Deep-water shot: strong blue cast, almost no red (JPEG, 400x300).
	writeJPEG(filepath.Join(dir, "deep_reef.jpg"), blueCast(400, 300))

	// Shallow gradient: mild cast, left-to-right brightness ramp.
	writePNG(filepath.Join(dir, "shallow_ramp.png"), shallowRamp(320, 240))

	// Flat mid-gray control image: the pipeline should leave it near-unchanged.
	writePNG(filepath.Join(dir, "flat_gray.png"), flatGray(160, 120))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 3 fixtures in %s\n", dir)
}

// blueCast mimics open water: dominant blue, some green structure, faint red.
func blueCast(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := uint8(40 + (x*60)/w + (y*40)/h)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(5 + (x*15)/w),
				G: g,
				B: uint8(170 + (y*60)/h),
				A: 255,
			})
		}
	}
	return img
}

func shallowRamp(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := uint8(60 + (x * 140 / w))
			img.SetNRGBA(x, y, color.NRGBA{
				R: base / 2,
				G: base,
				B: base + 50,
				A: 255,
			})
		}
	}
	return img
}

func flatGray(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	return img
}

func writePNG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
}
