package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxkit/voxdoc/internal/presentation/tui"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <README.md>",
	Short: "Render generated documentation in the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading document: %v\n", err)
			os.Exit(1)
		}

		render := tui.NewRenderer()
		out, err := render(string(data))
		if err != nil {
			fmt.Printf("Error rendering document: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
