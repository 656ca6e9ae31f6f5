package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-perfstat/dataset"
	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/internal/export"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

func sweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep <input.class>",
		Short: "Evaluate a score file across a range of thresholds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Bench()
			if err := applySweepFlags(cmd, &cfg); err != nil {
				return err
			}
			exact, _ := cmd.Flags().GetInt("exact")

			ds, err := dataset.Load(args[0], a.loadOptions(exact)...)
			if err != nil {
				return err
			}

			results := bench.Sweep(ds.Name, ds.Records, cfg.Thresholds())
			printSweep(cmd.OutOrStdout(), ds.Name, results)

			return writeSweepOutputs(cmd, a, ds.Name, results)
		},
	}

	addSweepFlags(cmd)
	cmd.Flags().Int("exact", -1, "require exactly N fields per line (0 disables)")
	cmd.Flags().String("log", "", "write the text threshold log to this path")
	cmd.Flags().String("structured", "", "write the structured threshold log to this path")
	cmd.Flags().String("textfile", "", "write Prometheus textfile metrics to this path")

	return cmd
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("min", 0, "sweep minimum threshold (default from config)")
	cmd.Flags().Float64("max", 0, "sweep maximum threshold (default from config)")
	cmd.Flags().Int("steps", 0, "number of log-spaced thresholds (default from config)")
	cmd.Flags().Float64("step", 0, "linear sweep step (default from config)")
	cmd.Flags().String("scale", "", "threshold spacing: log or linear (default from config)")
}

func applySweepFlags(cmd *cobra.Command, cfg *bench.Config) error {
	flags := cmd.Flags()
	if flags.Changed("min") {
		cfg.SweepMin, _ = flags.GetFloat64("min")
	}
	if flags.Changed("max") {
		cfg.SweepMax, _ = flags.GetFloat64("max")
	}
	if flags.Changed("steps") {
		cfg.SweepSteps, _ = flags.GetInt("steps")
	}
	if flags.Changed("step") {
		cfg.SweepStep, _ = flags.GetFloat64("step")
	}
	if flags.Changed("scale") {
		scale, _ := flags.GetString("scale")
		cfg.Scale = bench.Scale(scale)
	}

	if cfg.Scale != bench.ScaleLog && cfg.Scale != bench.ScaleLinear {
		return fmt.Errorf("invalid sweep scale: %s (must be log or linear)", cfg.Scale)
	}
	if len(cfg.Thresholds()) == 0 {
		return fmt.Errorf("sweep range [%g, %g] yields no thresholds", cfg.SweepMin, cfg.SweepMax)
	}
	return nil
}

func printSweep(w io.Writer, name string, results []bench.SweepResult) {
	fmt.Fprintf(w, "Threshold Sweep Results (%s)\n", name)
	fmt.Fprintln(w, strings.Repeat("-", 62))
	fmt.Fprintf(w, "%-10s %-8s %-8s %-8s %-8s %-8s\n", "Thresh", "MCC", "Q2", "TPR", "PPV", "F1")

	for _, r := range bench.ByThreshold(results) {
		rep := r.Report
		fmt.Fprintf(w, "%-10.3g %-8.4f %-8.4f %-8.4f %-8.4f %-8.4f\n",
			r.Threshold, rep.MCC, rep.Accuracy, rep.Recall, rep.Precision, rep.F1)
	}

	fmt.Fprintln(w, strings.Repeat("-", 62))
	if best, ok := bench.Best(results); ok {
		fmt.Fprintf(w, "Optimal: %.3g (MCC: %.4f)\n", best.Threshold, best.Report.MCC)
	}
}

func writeSweepOutputs(cmd *cobra.Command, a *app, name string, results []bench.SweepResult) error {
	entries := bench.Entries(results)

	if path, _ := cmd.Flags().GetString("log"); path != "" {
		if err := writeFile(path, func(w io.Writer) error {
			return thresholdlog.WriteText(w, entries)
		}); err != nil {
			return err
		}
		a.logger.Info("wrote threshold log", "path", path, "entries", len(entries))
	}

	if path, _ := cmd.Flags().GetString("structured"); path != "" {
		if err := writeFile(path, func(w io.Writer) error {
			return thresholdlog.NewWriter(w).WriteAll(entries)
		}); err != nil {
			return err
		}
		a.logger.Info("wrote structured log", "path", path, "entries", len(entries))
	}

	if path := a.textfile(cmd); path != "" {
		tf := export.NewTextfile()
		tf.AddSweep(name, results)
		if best, ok := bench.Best(results); ok {
			tf.AddReport(best.Report)
		}
		if err := tf.WriteFile(path); err != nil {
			return err
		}
		a.logger.Info("wrote textfile", "path", path)
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}
