package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voxdoc",
	Short: "voxdoc documents voice-command recognizers",
	Long: `voxdoc statically analyzes the phrase automata of a voice-command
repository and generates example phrases, graph images, and Markdown
documentation per command and per module.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Root directory of the voice-command repository")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
