package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage_NilAndEmpty(t *testing.T) {
	if _, err := FromImage(nil); err == nil {
		t.Error("nil image accepted")
	}
	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := FromImage(empty); err == nil {
		t.Error("zero-dimension image accepted")
	}
}

func TestFromImage_ChannelOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	r, err := FromImage(img)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	// Interleaved B,G,R.
	want := []uint8{30, 20, 10, 50, 100, 200}
	for i, w := range want {
		if r.Pix[i] != w {
			t.Errorf("pix[%d]: got %d, want %d", i, r.Pix[i], w)
		}
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	r := New(5, 4)
	for i := range r.Pix {
		r.Pix[i] = uint8(i * 7)
	}

	b, g, rp := r.Split()
	if b.W != 5 || b.H != 4 {
		t.Fatalf("plane dimensions: got %dx%d", b.W, b.H)
	}

	merged := Merge(b, g, rp)
	if merged.W != r.W || merged.H != r.H {
		t.Fatalf("merged dimensions: got %dx%d", merged.W, merged.H)
	}
	for i := range r.Pix {
		if merged.Pix[i] != r.Pix[i] {
			t.Fatalf("pix[%d]: got %d, want %d", i, merged.Pix[i], r.Pix[i])
		}
	}
}

func TestMerge_DimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mismatched merge did not panic")
		}
	}()
	Merge(NewPlane(4, 4), NewPlane(4, 4), NewPlane(3, 4))
}

func TestToImage_RoundTrip(t *testing.T) {
	r := New(3, 3)
	for i := range r.Pix {
		r.Pix[i] = uint8(i * 11)
	}
	back, err := FromImage(r.ToImage())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for i := range r.Pix {
		if back.Pix[i] != r.Pix[i] {
			t.Fatalf("pix[%d]: got %d, want %d", i, back.Pix[i], r.Pix[i])
		}
	}
}

func TestPlaneMean(t *testing.T) {
	p := NewPlane(2, 2)
	p.Pix = []uint8{0, 100, 100, 200}
	if m := p.Mean(); m != 100 {
		t.Errorf("mean: got %v, want 100", m)
	}
	if m := (&Plane{}).Mean(); m != 0 {
		t.Errorf("empty mean: got %v, want 0", m)
	}
}

func TestParallelRows_CoversAllRows(t *testing.T) {
	for _, workers := range []int{1, 3, 8, 100} {
		h := 37
		hit := make([]bool, h)
		ParallelRows(h, workers, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				hit[y] = true
			}
		})
		for y, ok := range hit {
			if !ok {
				t.Fatalf("workers=%d: row %d not covered", workers, y)
			}
		}
	}
}
