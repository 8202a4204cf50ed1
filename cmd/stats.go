package cmd

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"github.com/AnyUserName/uwimg-cli/internal/raster"
	"github.com/AnyUserName/uwimg-cli/internal/stats"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats <image>",
	Short: "Print grayscale statistics (mean, std, min, max, contrast) for an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w: %v", path, raster.ErrInvalidImage, err)
	}

	r, err := raster.FromImage(img)
	if err != nil {
		return err
	}
	s := stats.Compute(r)

	if statsJSON {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	fmt.Printf("  Image:    %s (%dx%d %s)\n", path, r.W, r.H, format)
	fmt.Printf("  Mean:     %.2f\n", s.Mean)
	fmt.Printf("  Std:      %.2f\n", s.Std)
	fmt.Printf("  Min:      %d, Max: %d\n", s.Min, s.Max)
	fmt.Printf("  Contrast: %.3f\n", s.Contrast)
	fmt.Println()
	return nil
}
