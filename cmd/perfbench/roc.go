package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-perfstat/dataset"
	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/internal/export"
)

func rocCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roc <input.class>...",
		Short: "Plot the ROC curve and report its AUC",
		Long: `Build a ROC curve from one or more score files. By default all inputs are
pooled into a single curve and lines must have exactly four fields; use
--separate for one curve per file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exact, _ := cmd.Flags().GetInt("exact")
			separate, _ := cmd.Flags().GetBool("separate")
			out, _ := cmd.Flags().GetString("out")
			opts := a.loadOptions(exact)

			var sets []*dataset.Dataset
			if separate {
				for _, path := range args {
					ds, err := dataset.Load(path, opts...)
					if err != nil {
						return err
					}
					sets = append(sets, ds)
				}
			} else {
				ds, err := dataset.LoadAll(args, opts...)
				if err != nil {
					return err
				}
				sets = append(sets, ds)
			}

			series, err := bench.RenderROC(a.renderer(), out, sets)
			if err != nil {
				return err
			}
			for _, s := range series {
				fmt.Fprintf(cmd.OutOrStdout(), "%s AUC = %.4f (%d points)\n", s.Name, s.Curve.AUC, len(s.Curve.Points))
			}

			if textfile := a.textfile(cmd); textfile != "" {
				tf := export.NewTextfile()
				tf.AddROC(series)
				if err := tf.WriteFile(textfile); err != nil {
					return err
				}
				a.logger.Info("wrote textfile", "path", textfile)
			}
			return nil
		},
	}

	cmd.Flags().Int("exact", 4, "require exactly N fields per line (0 disables)")
	cmd.Flags().Bool("separate", false, "one curve per input instead of pooling")
	cmd.Flags().StringP("out", "o", "roc_curve.png", "output image path")
	cmd.Flags().String("textfile", "", "write Prometheus textfile metrics to this path")

	return cmd
}
