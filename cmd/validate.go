package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/uwimg-cli/internal/report"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report_path>",
	Short: "Validate a uwimg run report and check referenced files exist",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	reportPath := args[0]

	data, err := os.ReadFile(reportPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("parse report: %w", err)
	}

	baseDir := filepath.Dir(reportPath)
	errors := validateReport(&r, baseDir)

	if len(errors) == 0 {
		fmt.Println("  ✓ Report is valid")
		fmt.Printf("  ✓ %d outputs — all files present\n", len(r.Outputs))
		return nil
	}

	fmt.Printf("  ✗ Report has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateReport(r *report.Report, baseDir string) []string {
	var errs []string

	if r.Version != report.SupportedReportVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}

	if r.Input.Width <= 0 || r.Input.Height <= 0 {
		errs = append(errs, fmt.Sprintf("invalid input dimensions %dx%d", r.Input.Width, r.Input.Height))
	}
	if r.Input.Hash == "" {
		errs = append(errs, "missing input hash")
	}

	if r.Params.TileGridW <= 0 || r.Params.TileGridH <= 0 {
		errs = append(errs, fmt.Sprintf("invalid tile grid %dx%d", r.Params.TileGridW, r.Params.TileGridH))
	}
	if r.Params.ClipLimit <= 0 {
		errs = append(errs, fmt.Sprintf("invalid clip limit %.3f", r.Params.ClipLimit))
	}

	if len(r.Outputs) == 0 {
		errs = append(errs, "no outputs recorded")
	}

	seenPaths := map[string]bool{}
	for i, o := range r.Outputs {
		if o.Kind != "enhanced" && o.Kind != "comparison" {
			errs = append(errs, fmt.Sprintf("output[%d]: unknown kind %q", i, o.Kind))
		}
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Sprintf("output[%d]: invalid dimensions %dx%d", i, o.Width, o.Height))
		}
		if o.Hash == "" {
			errs = append(errs, fmt.Sprintf("output[%d]: missing hash", i))
		}
		if o.Path == "" {
			errs = append(errs, fmt.Sprintf("output[%d]: missing path", i))
			continue
		}

		if seenPaths[o.Path] {
			errs = append(errs, fmt.Sprintf("output[%d]: duplicate path %q", i, o.Path))
		}
		seenPaths[o.Path] = true

		fullPath := filepath.Join(baseDir, o.Path)
		info, err := os.Stat(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("output[%d]: file not found: %s", i, o.Path))
		} else if o.Size > 0 && info.Size() != o.Size {
			errs = append(errs, fmt.Sprintf("output[%d]: size mismatch: report=%d, disk=%d",
				i, o.Size, info.Size()))
		}
	}

	// The enhanced output must preserve the input dimensions; the comparison
	// is twice as wide.
	for i, o := range r.Outputs {
		switch o.Kind {
		case "enhanced":
			if o.Width != r.Input.Width || o.Height != r.Input.Height {
				errs = append(errs, fmt.Sprintf("output[%d]: enhanced dimensions %dx%d != input %dx%d",
					i, o.Width, o.Height, r.Input.Width, r.Input.Height))
			}
		case "comparison":
			if o.Width != 2*r.Input.Width || o.Height != r.Input.Height {
				errs = append(errs, fmt.Sprintf("output[%d]: comparison dimensions %dx%d != %dx%d",
					i, o.Width, o.Height, 2*r.Input.Width, r.Input.Height))
			}
		}
	}

	return errs
}
