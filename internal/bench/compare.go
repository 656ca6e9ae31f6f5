package bench

import (
	"fmt"

	perfstat "github.com/jamesainslie/go-perfstat"
	"github.com/jamesainslie/go-perfstat/dataset"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

// Series is one named MCC-vs-threshold curve.
type Series struct {
	Name    string
	Entries []thresholdlog.Entry // ascending threshold
}

// MCCPlotOptions controls an MCC-vs-threshold plot.
type MCCPlotOptions struct {
	Title        string
	MaxThreshold float64 // drop entries above this; <= 0 keeps all
	YMin, YMax   float64 // both zero means automatic
}

// ROCSeries is one named ROC curve.
type ROCSeries struct {
	Name  string
	Curve perfstat.ROCCurve
}

// Renderer draws plots to files. The output format follows the path's extension.
type Renderer interface {
	MCCCurves(path string, series []Series, opts MCCPlotOptions) error
	ROC(path string, series []ROCSeries) error
}

// Comparison is the sweep of one dataset.
type Comparison struct {
	Name    string
	Results []SweepResult // MCC descending, as returned by Sweep
}

// Series returns the comparison as an ascending-threshold curve.
func (c Comparison) Series() Series {
	return Series{Name: c.Name, Entries: Entries(c.Results)}
}

// Compare sweeps every dataset over the same thresholds. Repeated dataset
// names are suffixed (set_1, set_1_2, ...) so each comparison is distinct.
func Compare(sets []*dataset.Dataset, thresholds []float64) ([]Comparison, error) {
	names := UniqueNames(sets)
	comparisons := make([]Comparison, 0, len(sets))
	for i, ds := range sets {
		if len(ds.Records) == 0 {
			return nil, fmt.Errorf("%w: %s", perfstat.ErrNoRecords, ds.Name)
		}
		comparisons = append(comparisons, Comparison{
			Name:    names[i],
			Results: Sweep(names[i], ds.Records, thresholds),
		})
	}
	return comparisons, nil
}

// UniqueNames returns the dataset names in order, with the second and later
// occurrences of a name suffixed _2, _3, ...
func UniqueNames(sets []*dataset.Dataset) []string {
	seen := make(map[string]bool, len(sets))
	names := make([]string, len(sets))
	for i, ds := range sets {
		name := ds.Name
		for n := 2; seen[name]; n++ {
			name = fmt.Sprintf("%s_%d", ds.Name, n)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

// RenderComparison plots the MCC curve of every comparison on one chart.
func RenderComparison(r Renderer, path string, comparisons []Comparison, opts MCCPlotOptions) error {
	series := make([]Series, len(comparisons))
	for i, c := range comparisons {
		series[i] = c.Series()
	}
	if err := r.MCCCurves(path, series, opts); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}

// RenderROC computes a ROC curve per dataset and plots them together.
// Series are named as in Compare.
func RenderROC(r Renderer, path string, sets []*dataset.Dataset) ([]ROCSeries, error) {
	names := UniqueNames(sets)
	series := make([]ROCSeries, 0, len(sets))
	for i, ds := range sets {
		if len(ds.Records) == 0 {
			return nil, fmt.Errorf("%w: %s", perfstat.ErrNoRecords, ds.Name)
		}
		series = append(series, ROCSeries{Name: names[i], Curve: perfstat.ROC(ds.Records)})
	}
	if err := r.ROC(path, series); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", path, err)
	}
	return series, nil
}
