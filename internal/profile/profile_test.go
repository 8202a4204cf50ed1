package profile

import "testing"

func TestGet_Defaults(t *testing.T) {
	p := Get("default")
	if p.TileGridW != 8 || p.TileGridH != 8 {
		t.Errorf("tile grid: got %dx%d, want 8x8", p.TileGridW, p.TileGridH)
	}
	if p.ClipLimit != 0.5 {
		t.Errorf("clip limit: got %v, want 0.5", p.ClipLimit)
	}
	if p.CastStrength != 1.2 {
		t.Errorf("cast strength: got %v, want 1.2", p.CastStrength)
	}
	if p.GainCap != 4.0 {
		t.Errorf("gain cap: got %v, want 4.0", p.GainCap)
	}
	if p.Balance != "red-compensation" {
		t.Errorf("balance: got %q", p.Balance)
	}
}

func TestGet_UnknownFallsBack(t *testing.T) {
	p := Get("no-such-preset")
	if p.Name != "no-such-preset" {
		t.Errorf("name not preserved: got %q", p.Name)
	}
	if p.ClipLimit != 0.5 {
		t.Errorf("fallback clip limit: got %v", p.ClipLimit)
	}
}

func TestPresetsDiffer(t *testing.T) {
	if Get("gentle").ClipLimit >= Get("murky").ClipLimit {
		t.Error("gentle should clip harder than murky")
	}
}
