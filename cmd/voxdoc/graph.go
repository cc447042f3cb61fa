package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxkit/voxdoc"
	"github.com/voxkit/voxdoc/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <automaton.gv>",
	Short: "Export an automaton visualization",
	Long:  `Parses a phrase automaton and outputs a Mermaid diagram (graph TD) representing its states and transitions.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")

		eng, err := voxdoc.New(dir)
		if err != nil {
			fmt.Printf("Error initializing voxdoc: %v\n", err)
			os.Exit(1)
		}

		a, err := eng.Inspect(args[0])
		if err != nil {
			fmt.Printf("Error inspecting automaton: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(a))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
