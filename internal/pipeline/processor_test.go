package pipeline

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/AnyUserName/uwimg-cli/internal/profile"
	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(10 + x%20),
				G: uint8(60 + y%30),
				B: uint8(170 + x%40),
				A: 255,
			})
		}
	}
	path := filepath.Join(dir, "input.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 80, 60)

	p := newPipeline(t)
	res, err := p.Process(path)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if res.Input.Width != 80 || res.Input.Height != 60 {
		t.Errorf("input dims: got %dx%d", res.Input.Width, res.Input.Height)
	}
	if res.Input.Format != "png" {
		t.Errorf("format: got %q", res.Input.Format)
	}
	if res.Input.Size <= 0 {
		t.Errorf("size: got %d", res.Input.Size)
	}
	if len(res.Input.Hash) != 16 {
		t.Errorf("hash: got %q", res.Input.Hash)
	}
	if res.Enhanced.W != 80 || res.Enhanced.H != 60 {
		t.Errorf("enhanced dims: got %dx%d", res.Enhanced.W, res.Enhanced.H)
	}
	if res.OriginalStats.Mean <= 0 || res.EnhancedStats.Mean <= 0 {
		t.Errorf("stats not computed: %+v / %+v", res.OriginalStats, res.EnhancedStats)
	}
}

func TestProcess_MaxWidthDownscales(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 200, 100)

	p, err := New(Config{Params: profile.Get("default"), Workers: 1, MaxWidth: 100})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	res, err := p.Process(path)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if res.Input.Width != 100 || res.Input.Height != 50 {
		t.Errorf("downscaled dims: got %dx%d, want 100x50", res.Input.Width, res.Input.Height)
	}
	if res.Enhanced.W != 100 {
		t.Errorf("enhanced width: got %d", res.Enhanced.W)
	}
}

func TestProcess_InvalidInput(t *testing.T) {
	dir := t.TempDir()

	if _, err := newPipeline(t).Process(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("missing file accepted")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := newPipeline(t).Process(garbage)
	if !errors.Is(err, raster.ErrInvalidImage) {
		t.Errorf("garbage file: got %v, want ErrInvalidImage", err)
	}
}
