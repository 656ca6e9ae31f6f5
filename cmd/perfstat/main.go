// Command perfstat prints the confusion matrix and summary statistics of a
// score file at one threshold.
//
//	perfstat [flags] <input.class> <threshold>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	perfstat "github.com/jamesainslie/go-perfstat"
	"github.com/jamesainslie/go-perfstat/dataset"
	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/internal/config"
	"github.com/jamesainslie/go-perfstat/internal/export"
)

const usage = "Usage: perfstat [flags] <input.class> <threshold>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds parsed command-line flags.
type options struct {
	configPath string
	labelCol   int
	scoreCol   int
	exact      int
	textfile   string
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := flag.NewFlagSet("perfstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to YAML config file")
	fs.IntVar(&opts.labelCol, "label-col", -1, "Label column, 0-based (default from config: 1)")
	fs.IntVar(&opts.scoreCol, "score-col", -1, "Score column, 0-based (default from config: 2)")
	fs.IntVar(&opts.exact, "exact", -1, "Require exactly N fields per line (0 disables)")
	fs.StringVar(&opts.textfile, "textfile", "", "Also write Prometheus textfile metrics to this path")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	// flag reports its own errors and usage
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	err := evaluate(fs.Args(), opts, stdout, stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, perfstat.ErrUsage):
		fmt.Fprintln(stderr, usage)
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// parseArgs returns the input path and threshold. Missing arguments wrap
// perfstat.ErrUsage.
func parseArgs(args []string) (string, float64, error) {
	if len(args) < 2 {
		return "", 0, fmt.Errorf("%w: need <input.class> and <threshold>, got %d arguments", perfstat.ErrUsage, len(args))
	}
	threshold, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid threshold %q: %w", args[1], err)
	}
	return args[0], threshold, nil
}

func evaluate(args []string, opts options, stdout, stderr io.Writer) error {
	path, threshold, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger := cfg.Logger(stderr)

	cols := cfg.Columns
	if opts.labelCol >= 0 {
		cols.Label = opts.labelCol
	}
	if opts.scoreCol >= 0 {
		cols.Score = opts.scoreCol
	}
	if opts.exact >= 0 {
		cols.Exact = opts.exact
	}

	ds, err := dataset.Load(path,
		dataset.WithColumns(cols.Label, cols.Score),
		dataset.WithExactColumns(cols.Exact),
		dataset.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if len(ds.Records) == 0 {
		logger.Warn("no usable records, statistics will be zero", "path", path)
	}

	report := bench.Evaluate(ds.Name, ds.Records, threshold)
	if err := report.Format(stdout); err != nil {
		return err
	}

	out := opts.textfile
	if out == "" {
		out = cfg.Export.Textfile
	}
	if out != "" {
		tf := export.NewTextfile()
		tf.AddReport(report)
		if err := tf.WriteFile(out); err != nil {
			return err
		}
		logger.Info("wrote textfile", "path", out)
	}

	return nil
}
