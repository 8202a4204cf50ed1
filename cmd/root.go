package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "uwimg",
	Short: "Color and contrast restoration for underwater photographs",
	Long: `uwimg — corrects the blue-green color cast and washed-out contrast that
water absorption leaves in underwater photos.

The pipeline compensates the red channel from the green signal, neutralizes
the remaining cast in LAB space weighted by luminance, and sharpens local
contrast with tile-based histogram equalization (CLAHE) on luminance only.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"uwimg %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[uwimg] "+format+"\n", args...)
	}
}
