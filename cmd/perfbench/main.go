// Command perfbench sweeps decision thresholds over score files, compares
// datasets and renders MCC and ROC plots.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-perfstat/chart"
	"github.com/jamesainslie/go-perfstat/dataset"
	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by subcommands once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (a *app) renderer() bench.Renderer {
	return chart.New(a.logger)
}

func (a *app) loadOptions(exact int) []dataset.Option {
	cols := a.cfg.Columns
	if exact >= 0 {
		cols.Exact = exact
	}
	return []dataset.Option{
		dataset.WithColumns(cols.Label, cols.Score),
		dataset.WithExactColumns(cols.Exact),
		dataset.WithLogger(a.logger),
	}
}

// textfile returns the --textfile flag, falling back to the configured path.
func (a *app) textfile(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("textfile"); path != "" {
		return path
	}
	return a.cfg.Export.Textfile
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "perfbench",
		Short: "Threshold sweeps and plots for labelled score files",
		Long: `perfbench evaluates binary classifiers whose scores follow the e-value
convention (lower is a more confident positive).

Run 'perfbench sweep set_1.class' to find the best MCC threshold.
Run 'perfbench compare set_1.class set_2.class' to plot both MCC curves.
Run 'perfbench roc set_1.class set_2.class' for the ROC curve and AUC.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			verbose, _ := cmd.Flags().GetBool("verbose")

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			a.cfg = cfg
			a.logger = cfg.Logger(cmd.ErrOrStderr())
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		sweepCmd(a),
		compareCmd(a),
		mccPlotCmd(a),
		rocCmd(a),
		versionCmd(),
	)

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "perfbench %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
