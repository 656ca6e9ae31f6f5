package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-perfstat/dataset"
	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/internal/export"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <input.class>...",
		Short: "Sweep several score files and plot their MCC curves together",
		Long: `Sweep every input over the same thresholds, write one threshold log per
input, and render one MCC plot per preset.

The default presets are "full" (every threshold) and "filtered" (thresholds
up to 1e-5 with the MCC axis clamped to 0.98-1.001).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Bench()
			if err := applySweepFlags(cmd, &cfg); err != nil {
				return err
			}
			exact, _ := cmd.Flags().GetInt("exact")
			presets, _ := cmd.Flags().GetStringSlice("preset")
			outDir, _ := cmd.Flags().GetString("out-dir")
			if outDir == "" {
				outDir = a.cfg.Plot.Dir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			sets := make([]*dataset.Dataset, 0, len(args))
			for _, path := range args {
				ds, err := dataset.Load(path, a.loadOptions(exact)...)
				if err != nil {
					return err
				}
				sets = append(sets, ds)
			}

			comparisons, err := bench.Compare(sets, cfg.Thresholds())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tf := export.NewTextfile()
			for _, c := range comparisons {
				best, _ := bench.Best(c.Results)
				fmt.Fprintf(out, "%-30s best threshold %-10.3g MCC %.4f\n", c.Name, best.Threshold, best.Report.MCC)

				logPath := filepath.Join(outDir, fmt.Sprintf("performance_%s_thresholds.txt", c.Name))
				if err := writeFile(logPath, func(w io.Writer) error {
					return thresholdlog.WriteText(w, c.Series().Entries)
				}); err != nil {
					return err
				}
				a.logger.Info("wrote threshold log", "path", logPath)
				tf.AddSweep(c.Name, c.Results)
			}

			r := a.renderer()
			for _, name := range presets {
				opts, err := a.cfg.Preset(name)
				if err != nil {
					return err
				}
				plotPath := filepath.Join(outDir, fmt.Sprintf("mcc_%s.%s", name, a.cfg.Plot.Format))
				if err := bench.RenderComparison(r, plotPath, comparisons, opts); err != nil {
					return err
				}
			}

			if textfile := a.textfile(cmd); textfile != "" {
				if err := tf.WriteFile(textfile); err != nil {
					return err
				}
				a.logger.Info("wrote textfile", "path", textfile)
			}
			return nil
		},
	}

	addSweepFlags(cmd)
	cmd.Flags().Int("exact", -1, "require exactly N fields per line (0 disables)")
	cmd.Flags().StringSlice("preset", []string{"full", "filtered"}, "MCC plot presets to render")
	cmd.Flags().String("out-dir", "", "directory for logs and plots (default from config)")
	cmd.Flags().String("textfile", "", "write Prometheus textfile metrics to this path")

	return cmd
}
