package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/uwimg-cli/internal/compare"
	"github.com/AnyUserName/uwimg-cli/internal/encoder"
	"github.com/AnyUserName/uwimg-cli/internal/hasher"
	"github.com/AnyUserName/uwimg-cli/internal/pipeline"
	"github.com/AnyUserName/uwimg-cli/internal/profile"
	"github.com/AnyUserName/uwimg-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	enhanceOutDir   string
	enhanceProfile  string
	enhanceFormat   string
	enhanceQuality  int
	enhanceWorkers  int
	enhanceMaxWidth int
	enhanceTiles    int
	enhanceClip     float64
	enhanceStrength float64
	enhanceGainCap  float64
	enhanceBalance  string
	enhanceCompare  bool
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <image>",
	Short: "Enhance a single underwater photo and write outputs + report",
	Long: `Decodes one image (png, jpg, jpeg, webp, gif, bmp, tiff), runs the
enhancement pipeline, and writes the enhanced image, an optional side-by-side
comparison, and a JSON run report.

Output filenames are content-addressed: <base>.enhanced.<hash>.<ext>`,
	Args: cobra.ExactArgs(1),
	RunE: runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceOutDir, "out", "o", "./uwimg_out", "output directory")
	enhanceCmd.Flags().StringVarP(&enhanceProfile, "profile", "p", "default", "parameter preset (default, gentle, murky)")
	enhanceCmd.Flags().StringVarP(&enhanceFormat, "format", "f", "jpeg", "output format (jpeg, png, webp)")
	enhanceCmd.Flags().IntVarP(&enhanceQuality, "quality", "q", 92, "encoding quality 1-100")
	enhanceCmd.Flags().IntVarP(&enhanceWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	enhanceCmd.Flags().IntVar(&enhanceMaxWidth, "max-width", 0, "downscale wider inputs before enhancing (0 = keep)")
	enhanceCmd.Flags().IntVar(&enhanceTiles, "tiles", 0, "CLAHE tile grid NxN (0 = preset)")
	enhanceCmd.Flags().Float64Var(&enhanceClip, "clip", 0, "CLAHE clip limit (0 = preset)")
	enhanceCmd.Flags().Float64Var(&enhanceStrength, "strength", 0, "chroma cast-correction strength (0 = preset)")
	enhanceCmd.Flags().Float64Var(&enhanceGainCap, "gain-cap", 0, "gray-world channel gain cap (0 = preset)")
	enhanceCmd.Flags().StringVar(&enhanceBalance, "balance", "", "balance strategy: red-compensation or gray-world (empty = preset)")
	enhanceCmd.Flags().BoolVar(&enhanceCompare, "compare", true, "write side-by-side comparison image")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(_ *cobra.Command, args []string) error {
	inputPath := args[0]
	start := time.Now()

	prm := resolveParams()

	absOutput, err := filepath.Abs(enhanceOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	logVerbose("input:   %s", inputPath)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (tiles=%dx%d, clip=%.2f, strength=%.2f, balance=%s)",
		prm.Name, prm.TileGridW, prm.TileGridH, prm.ClipLimit, prm.CastStrength, prm.Balance)

	p, err := pipeline.New(pipeline.Config{
		Params:   prm,
		Workers:  enhanceWorkers,
		Verbose:  verbose,
		MaxWidth: enhanceMaxWidth,
	})
	if err != nil {
		return err
	}

	res, err := p.Process(inputPath)
	if err != nil {
		return err
	}

	registry := encoder.NewRegistry()
	logVerbose("%s", registry.String())
	enc := registry.Resolve(enhanceFormat)
	if !strings.EqualFold(enc.Format(), enhanceFormat) &&
		!(strings.EqualFold(enhanceFormat, "jpg") && enc.Format() == "jpeg") {
		fmt.Fprintf(os.Stderr, "[uwimg] warn: format %q unavailable, using %s\n",
			enhanceFormat, enc.Format())
	}

	rep := report.New(prm.Name)
	rep.Input = res.Input
	rep.Params = report.ParamInfo{
		TileGridW:    prm.TileGridW,
		TileGridH:    prm.TileGridH,
		ClipLimit:    prm.ClipLimit,
		CastStrength: prm.CastStrength,
		GainCap:      prm.GainCap,
		Balance:      p.Corrector().Name(),
		Workers:      p.Workers(),
		MaxWidth:     enhanceMaxWidth,
	}
	rep.Original = res.OriginalStats
	rep.Enhanced = res.EnhancedStats

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	// Enhanced image.
	enhancedImg := res.Enhanced.ToImage()
	out, err := writeOutput(absOutput, base, "enhanced", enc, enhancedImg, res.Enhanced.W, res.Enhanced.H)
	if err != nil {
		return err
	}
	rep.Outputs = append(rep.Outputs, out)

	// Side-by-side comparison.
	if enhanceCompare {
		cmp, err := compare.SideBySide(res.Original.ToImage(), enhancedImg,
			"Original", "Enhanced (CLAHE)")
		if err != nil {
			return fmt.Errorf("compose comparison: %w", err)
		}
		out, err := writeOutput(absOutput, base, "compare", enc, cmp, 2*res.Original.W, res.Original.H)
		if err != nil {
			return err
		}
		rep.Outputs = append(rep.Outputs, out)
	}

	reportPath := filepath.Join(absOutput, "uwimg.report.json")
	if err := report.WriteJSON(rep, reportPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	printEnhanceReport(rep, time.Since(start))
	return nil
}

// resolveParams merges the preset with any explicit flag overrides.
func resolveParams() profile.Params {
	prm := profile.Get(enhanceProfile)
	if enhanceTiles > 0 {
		prm.TileGridW = enhanceTiles
		prm.TileGridH = enhanceTiles
	}
	if enhanceClip > 0 {
		prm.ClipLimit = enhanceClip
	}
	if enhanceStrength > 0 {
		prm.CastStrength = enhanceStrength
	}
	if enhanceGainCap > 0 {
		prm.GainCap = enhanceGainCap
	}
	if enhanceBalance != "" {
		prm.Balance = enhanceBalance
	}
	return prm
}

// writeOutput encodes img and writes it under a content-addressed name:
// <base>.<kind>.<hash8>.<ext>
func writeOutput(outDir, base, kind string, enc encoder.Encoder, img image.Image, w, h int) (report.Output, error) {
	data, err := enc.Encode(img, enhanceQuality)
	if err != nil {
		return report.Output{}, fmt.Errorf("encode %s as %s: %w", kind, enc.Format(), err)
	}

	contentHash := hasher.ContentHash(data, 16)
	fileName := fmt.Sprintf("%s.%s.%s.%s", base, kind, contentHash[:8], enc.Extension())
	if err := os.WriteFile(filepath.Join(outDir, fileName), data, 0o644); err != nil {
		return report.Output{}, fmt.Errorf("write %s: %w", fileName, err)
	}

	kindName := kind
	if kind == "compare" {
		kindName = "comparison"
	}
	return report.Output{
		Kind:   kindName,
		Format: enc.Format(),
		Width:  w,
		Height: h,
		Size:   int64(len(data)),
		Hash:   contentHash,
		Path:   fileName,
	}, nil
}

func printEnhanceReport(rep *report.Report, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("  Input:     %s (%dx%d %s, %s)\n",
		rep.Input.Path, rep.Input.Width, rep.Input.Height, rep.Input.Format,
		formatBytes(rep.Input.Size))
	fmt.Println()
	fmt.Printf("  Original:  %s\n", rep.Original)
	fmt.Printf("  Enhanced:  %s\n", rep.Enhanced)
	fmt.Println()
	for _, o := range rep.Outputs {
		fmt.Printf("  ✓ %-10s %s (%s)\n", o.Kind+":", o.Path, formatBytes(o.Size))
	}
	fmt.Printf("  ✓ report:    uwimg.report.json\n")
	fmt.Printf("  Time:      %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
