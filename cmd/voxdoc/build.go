package main

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/voxkit/voxdoc"
	"github.com/voxkit/voxdoc/internal/logging"
	"github.com/voxkit/voxdoc/internal/presentation/tui"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate documentation for every module",
	Long: `Discovers modules and commands under the repository root, enumerates
example phrases for every automaton, rewrites module dispatch automata,
renders graph images via Graphviz, and writes per-command and per-module
README files.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		verbose, _ := cmd.Flags().GetBool("verbose")
		templates, _ := cmd.Flags().GetString("templates")
		parallelism, _ := cmd.Flags().GetInt("parallelism")
		timeout, _ := cmd.Flags().GetDuration("render-timeout")

		tui.PrintBanner()
		logger := logging.New(logging.Level(verbose))

		opts := []voxdoc.Option{
			voxdoc.WithLogger(logger),
			voxdoc.WithParallelism(parallelism),
			voxdoc.WithRenderTimeout(timeout),
			voxdoc.WithMetrics(prometheus.DefaultRegisterer),
		}
		if templates != "" {
			opts = append(opts, voxdoc.WithTemplates(templates))
		}

		eng, err := voxdoc.New(dir, opts...)
		if err != nil {
			fmt.Printf("Error initializing voxdoc: %v\n", err)
			os.Exit(1)
		}

		report, err := eng.Build(cmd.Context())
		if err != nil {
			fmt.Printf("Build failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Documented %d modules, %d commands, %d phrases\n",
			report.Modules, report.Commands, report.Phrases)
		if !report.OK() {
			fmt.Printf("%d units failed:\n", len(report.Failures))
			for _, f := range report.Failures {
				fmt.Printf("  - %s/%s [%s]: %v\n", f.Module, f.Command, f.Lang, f.Err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("templates", "", "Template dictionary file (default: <dir>/templates.yaml)")
	buildCmd.Flags().Int("parallelism", 0, "Concurrent module builds (default 4)")
	buildCmd.Flags().Duration("render-timeout", 30*time.Second, "Timeout per Graphviz invocation")
}
