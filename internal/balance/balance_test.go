package balance

import (
	"math/rand"
	"testing"

	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"red", "red-compensation", false},
		{"red-compensation", "red-compensation", false},
		{"gray-world", "gray-world", false},
		{"histogram", "", true},
	}
	for _, tt := range tests {
		c, err := Parse(tt.name, 4.0)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.name, err)
			continue
		}
		if c.Name() != tt.want {
			t.Errorf("Parse(%q): got %q, want %q", tt.name, c.Name(), tt.want)
		}
	}
}

func TestRedCompensation_Monotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w, h := 32, 32
	b := raster.NewPlane(w, h)
	g := raster.NewPlane(w, h)
	r := raster.NewPlane(w, h)
	for i := range r.Pix {
		b.Pix[i] = uint8(rng.Intn(256))
		g.Pix[i] = uint8(rng.Intn(256))
		r.Pix[i] = uint8(rng.Intn(256))
	}

	_, _, out := RedCompensation{}.Correct(b, g, r)

	for i := range r.Pix {
		switch {
		case g.Pix[i] >= r.Pix[i]:
			if out.Pix[i] < r.Pix[i] {
				t.Fatalf("pixel %d: g=%d >= r=%d but compensated %d < r",
					i, g.Pix[i], r.Pix[i], out.Pix[i])
			}
		default:
			if out.Pix[i] > r.Pix[i] {
				t.Fatalf("pixel %d: g=%d < r=%d but compensated %d > r",
					i, g.Pix[i], r.Pix[i], out.Pix[i])
			}
		}
	}
}

func TestRedCompensation_UniformGrayUnchanged(t *testing.T) {
	w, h := 8, 8
	b := fillPlane(w, h, 128)
	g := fillPlane(w, h, 128)
	r := fillPlane(w, h, 128)

	_, _, out := RedCompensation{}.Correct(b, g, r)
	for i, v := range out.Pix {
		if v != 128 {
			t.Fatalf("pixel %d: got %d, want 128 (g==r means zero compensation)", i, v)
		}
	}
}

func TestRedCompensation_BlueCastBoostsRed(t *testing.T) {
	// The classic underwater pixel: (B,G,R) = (200,50,10).
	b := fillPlane(4, 4, 200)
	g := fillPlane(4, 4, 50)
	r := fillPlane(4, 4, 10)

	_, _, out := RedCompensation{}.Correct(b, g, r)
	if out.Pix[0] <= 10 {
		t.Errorf("red not boosted: got %d, want > 10", out.Pix[0])
	}
}

func TestGrayWorld_NeutralizesCast(t *testing.T) {
	b := fillPlane(8, 8, 200)
	g := fillPlane(8, 8, 100)
	r := fillPlane(8, 8, 60)

	nb, ng, nr := GrayWorld{GainCap: 4.0}.Correct(b, g, r)

	// avgGray = 120; each channel scales toward it.
	if nb.Pix[0] != 120 {
		t.Errorf("blue: got %d, want 120", nb.Pix[0])
	}
	if ng.Pix[0] != 120 {
		t.Errorf("green: got %d, want 120", ng.Pix[0])
	}
	if nr.Pix[0] != 120 {
		t.Errorf("red: got %d, want 120", nr.Pix[0])
	}
}

func TestGrayWorld_GainCap(t *testing.T) {
	// Red mean 2 against gray mean ~100 would need a 50x gain; the cap
	// limits it to 4x.
	b := fillPlane(8, 8, 160)
	g := fillPlane(8, 8, 140)
	r := fillPlane(8, 8, 2)

	_, _, nr := GrayWorld{GainCap: 4.0}.Correct(b, g, r)
	if nr.Pix[0] != 8 {
		t.Errorf("capped red: got %d, want 8 (2 * cap 4)", nr.Pix[0])
	}
}

func TestGrayWorld_ZeroMeanChannelUntouched(t *testing.T) {
	b := fillPlane(8, 8, 150)
	g := fillPlane(8, 8, 90)
	r := fillPlane(8, 8, 0)

	_, _, nr := GrayWorld{GainCap: 4.0}.Correct(b, g, r)
	for i, v := range nr.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: zero-mean red scaled to %d", i, v)
		}
	}
}

func fillPlane(w, h int, v uint8) *raster.Plane {
	p := raster.NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = v
	}
	return p
}
