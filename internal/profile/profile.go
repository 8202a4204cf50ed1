// Package profile defines named parameter presets for the enhancement
// pipeline. A preset only supplies defaults; flags override individual
// fields.
package profile

// Params holds every tunable of the pipeline.
type Params struct {
	Name         string
	TileGridW    int     // CLAHE tile columns
	TileGridH    int     // CLAHE tile rows
	ClipLimit    float64 // normalized histogram clip factor
	CastStrength float64 // chroma-shift multiplier
	GainCap      float64 // gray-world per-channel gain ceiling
	Balance      string  // "red-compensation" or "gray-world"
}

// Built-in presets.
var presets = map[string]Params{
	"default": {
		Name:         "default",
		TileGridW:    8,
		TileGridH:    8,
		ClipLimit:    0.5,
		CastStrength: 1.2,
		GainCap:      4.0,
		Balance:      "red-compensation",
	},
	// gentle barely touches contrast; for lightly tinted shallow-water shots.
	"gentle": {
		Name:         "gentle",
		TileGridW:    8,
		TileGridH:    8,
		ClipLimit:    0.3,
		CastStrength: 1.0,
		GainCap:      4.0,
		Balance:      "red-compensation",
	},
	// murky pushes contrast harder for deep or turbid water.
	"murky": {
		Name:         "murky",
		TileGridW:    8,
		TileGridH:    8,
		ClipLimit:    2.0,
		CastStrength: 1.4,
		GainCap:      4.0,
		Balance:      "red-compensation",
	},
}

// Get returns a preset by name. Falls back to default if unknown.
func Get(name string) Params {
	if p, ok := presets[name]; ok {
		return p
	}
	p := presets["default"]
	p.Name = name // preserve requested name
	return p
}
