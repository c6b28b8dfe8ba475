package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dotfield",
	Short: "Interactive particle sketch",
	Long: `Dotfield draws animated point clouds over a fading backdrop.

Hold the left mouse button to swell or shrink the shapes, and click with
shift, ctrl, alt or super held to scatter everything afresh.`,
	Run: Run,
}

func init() {
	addRunFlags(rootCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
