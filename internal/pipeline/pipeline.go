// Package pipeline wires the enhancement stages together: channel balance in
// device space, conversion to LAB, global chromatic-cast neutralization,
// tile-based contrast enhancement on luminance, and conversion back.
package pipeline

import (
	"fmt"
	"runtime"

	"github.com/AnyUserName/uwimg-cli/internal/balance"
	"github.com/AnyUserName/uwimg-cli/internal/clahe"
	"github.com/AnyUserName/uwimg-cli/internal/colorspace"
	"github.com/AnyUserName/uwimg-cli/internal/profile"
	"github.com/AnyUserName/uwimg-cli/internal/raster"
)

// Config holds all parameters for an enhancement run.
type Config struct {
	Params   profile.Params
	Workers  int
	Verbose  bool
	MaxWidth int // downscale inputs wider than this before enhancing; 0 = keep
}

// Pipeline runs the fixed stage sequence over single rasters. It carries no
// per-image state; Enhance is a pure function of its input and the config.
type Pipeline struct {
	cfg       Config
	corrector balance.Corrector
}

// New creates a configured pipeline, resolving the balance strategy.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	c, err := balance.Parse(cfg.Params.Balance, cfg.Params.GainCap)
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, corrector: c}, nil
}

// Corrector exposes the resolved balance strategy (for reporting).
func (p *Pipeline) Corrector() balance.Corrector { return p.corrector }

// Workers returns the effective worker count.
func (p *Pipeline) Workers() int { return p.cfg.Workers }

// Enhance runs the full stage sequence and returns a new raster of the same
// dimensions. The input is not modified.
func (p *Pipeline) Enhance(src *raster.Raster) (*raster.Raster, error) {
	if src == nil || src.W <= 0 || src.H <= 0 {
		return nil, fmt.Errorf("%w: empty raster", raster.ErrInvalidImage)
	}
	prm := p.cfg.Params
	workers := p.cfg.Workers

	// Stage 1: channel balance in device space.
	b, g, r := src.Split()
	b, g, r = p.corrector.Correct(b, g, r)

	// Stage 2: to perceptual space.
	l, ca, cb := colorspace.ToLab(b, g, r, workers)

	// Stage 3: neutralize the global color cast, luminance-weighted.
	ca, cb = neutralizeCast(l, ca, cb, prm.CastStrength, workers)

	// Stage 4: adaptive contrast on luminance only.
	l = clahe.Apply(l, prm.TileGridW, prm.TileGridH, prm.ClipLimit, workers)

	// Stage 5: back to device space.
	b, g, r = colorspace.ToBGR(l, ca, cb, workers)
	return raster.Merge(b, g, r), nil
}
