package report

import "github.com/AnyUserName/uwimg-cli/internal/stats"

// Report is the JSON record of one enhancement run.
type Report struct {
	Version     int           `json:"version"`
	GeneratedAt string        `json:"generated_at"`
	Profile     string        `json:"profile"`
	Input       InputInfo     `json:"input"`
	Params      ParamInfo     `json:"params"`
	Original    stats.Summary `json:"original_stats"`
	Enhanced    stats.Summary `json:"enhanced_stats"`
	Outputs     []Output      `json:"outputs"`
}

// InputInfo holds metadata about the source image.
type InputInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
	Hash   string `json:"hash"` // xxhash64 of the source file
}

// ParamInfo records the effective pipeline parameters, after preset and
// flag resolution.
type ParamInfo struct {
	TileGridW    int     `json:"tile_grid_w"`
	TileGridH    int     `json:"tile_grid_h"`
	ClipLimit    float64 `json:"clip_limit"`
	CastStrength float64 `json:"cast_strength"`
	GainCap      float64 `json:"gain_cap"`
	Balance      string  `json:"balance"`
	Workers      int     `json:"workers"`
	MaxWidth     int     `json:"max_width,omitempty"`
}

// Output is one file written by the run.
type Output struct {
	Kind   string `json:"kind"` // "enhanced" or "comparison"
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
	Path   string `json:"path"` // relative to the report's directory
}

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1
