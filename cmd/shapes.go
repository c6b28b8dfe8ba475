package cmd

import (
	"fmt"

	"github.com/ThatOtherAndrew/Dotfield/internal/spawn"
	"github.com/spf13/cobra"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the shapes that can be spawned",
	Run:   listShapes,
}

func init() {
	rootCmd.AddCommand(shapesCmd)
}

func listShapes(cmd *cobra.Command, args []string) {
	fmt.Println("Available shapes:")
	for _, e := range spawn.Catalog {
		fmt.Printf("  %-8s %s\n", e.Name, e.Description)
	}
}
