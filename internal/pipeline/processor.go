package pipeline

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/AnyUserName/uwimg-cli/internal/hasher"
	"github.com/AnyUserName/uwimg-cli/internal/raster"
	"github.com/AnyUserName/uwimg-cli/internal/report"
	"github.com/AnyUserName/uwimg-cli/internal/stats"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Result holds everything one processed image yields: both rasters for
// output writing and the metadata the report needs.
type Result struct {
	Input         report.InputInfo
	Original      *raster.Raster
	Enhanced      *raster.Raster
	OriginalStats stats.Summary
	EnhancedStats stats.Summary
}

// Process decodes a single image file, runs the enhancement pipeline and
// computes before/after statistics. Decode failures and degenerate images
// surface as raster.ErrInvalidImage before any pipeline stage runs.
func (p *Pipeline) Process(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	inputHash, err := hasher.ContentHashReader(f, 16)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", path, err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", path, raster.ErrInvalidImage, err)
	}

	// Optional pre-scale for oversized inputs.
	if p.cfg.MaxWidth > 0 && img.Bounds().Dx() > p.cfg.MaxWidth {
		if p.cfg.Verbose {
			fmt.Fprintf(os.Stderr, "[uwimg] downscaling %dpx -> %dpx\n",
				img.Bounds().Dx(), p.cfg.MaxWidth)
		}
		img = imaging.Resize(img, p.cfg.MaxWidth, 0, imaging.Lanczos)
	}

	src, err := raster.FromImage(img)
	if err != nil {
		return nil, err
	}

	enhanced, err := p.Enhance(src)
	if err != nil {
		return nil, err
	}

	return &Result{
		Input: report.InputInfo{
			Path:   path,
			Width:  src.W,
			Height: src.H,
			Format: format,
			Size:   fi.Size(),
			Hash:   inputHash,
		},
		Original:      src,
		Enhanced:      enhanced,
		OriginalStats: stats.Compute(src),
		EnhancedStats: stats.Compute(enhanced),
	}, nil
}
