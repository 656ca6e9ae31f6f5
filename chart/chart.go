// Package chart renders MCC and ROC plots with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

// ErrNoData indicates there was nothing left to plot.
var ErrNoData = errors.New("chart: no plottable points")

var _ bench.Renderer = (*Renderer)(nil)

// Renderer draws charts to image files.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
	logger *slog.Logger
}

// New returns a Renderer with a 10x6 inch canvas.
func New(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		logger: logger,
	}
}

// MCCCurves plots MCC against a log-scaled threshold axis, one line per series.
// Entries above opts.MaxThreshold and non-positive thresholds are dropped.
func (r *Renderer) MCCCurves(path string, series []bench.Series, opts bench.MCCPlotOptions) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Threshold"
	p.Y.Label.Text = "MCC"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	plotted := 0
	for i, s := range series {
		xys := mccPoints(thresholdlog.Filter(s.Entries, opts.MaxThreshold))
		if dropped := len(s.Entries) - len(xys); dropped > 0 {
			r.logger.Debug("dropped entries from MCC plot", "series", s.Name, "dropped", dropped)
		}
		if len(xys) == 0 {
			r.logger.Warn("series has no plottable points", "series", s.Name)
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)

		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
		plotted++
	}
	if plotted == 0 {
		return ErrNoData
	}
	// a degenerate range would be widened linearly, below zero
	if p.X.Min == p.X.Max {
		p.X.Min /= 10
		p.X.Max *= 10
	}

	if opts.YMin != 0 || opts.YMax != 0 {
		p.Y.Min = opts.YMin
		p.Y.Max = opts.YMax
	}

	return r.save(p, path)
}

// ROC plots one curve per series with its AUC in the legend, plus the chance diagonal.
func (r *Renderer) ROC(path string, series []bench.ROCSeries) error {
	p := plot.New()
	p.Title.Text = "ROC Curve"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Legend.Top = false
	p.Legend.Left = false
	p.Add(plotter.NewGrid())

	if len(series) == 0 {
		return ErrNoData
	}

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Curve.Points))
		for j, pt := range s.Curve.Points {
			xys[j].X = pt.FPR
			xys[j].Y = pt.TPR
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s (AUC = %.2f)", s.Name, s.Curve.AUC), line)
	}

	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return err
	}
	diagonal.Color = color.Gray{Y: 128}
	diagonal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(diagonal)

	return r.save(p, path)
}

func (r *Renderer) save(p *plot.Plot, path string) error {
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	r.logger.Info("wrote plot", "path", path)
	return nil
}

func mccPoints(entries []thresholdlog.Entry) plotter.XYs {
	xys := make(plotter.XYs, 0, len(entries))
	for _, e := range entries {
		if e.Threshold <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: e.Threshold, Y: e.MCC})
	}
	return xys
}
