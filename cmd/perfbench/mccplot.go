package main

import (
	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

func mccPlotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcc-plot <log>...",
		Short: "Plot MCC against threshold from existing threshold logs",
		Long: `Plot one MCC curve per threshold log. Files ending in .pb are read as
structured logs; anything else is scanned for "Threshold:" and "MCC:" values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presetName, _ := cmd.Flags().GetString("preset")
			out, _ := cmd.Flags().GetString("out")

			opts, err := a.cfg.Preset(presetName)
			if err != nil {
				return err
			}
			if title, _ := cmd.Flags().GetString("title"); title != "" {
				opts.Title = title
			}

			series := make([]bench.Series, 0, len(args))
			for _, path := range args {
				entries, err := thresholdlog.Open(path, 0)
				if err != nil {
					return err
				}
				a.logger.Debug("read threshold log", "path", path, "entries", len(entries))
				name := path
				if len(entries) > 0 {
					name = entries[0].Dataset
				}
				series = append(series, bench.Series{Name: name, Entries: entries})
			}

			return a.renderer().MCCCurves(out, series, opts)
		},
	}

	cmd.Flags().String("preset", "filtered", "plot preset (full or filtered)")
	cmd.Flags().String("title", "", "plot title (default from preset)")
	cmd.Flags().StringP("out", "o", "mcc.png", "output image path")

	return cmd
}
