package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxkit/voxdoc"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of voxdoc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("voxdoc version %s\n", voxdoc.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
