package bench

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"

	perfstat "github.com/jamesainslie/go-perfstat"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

// SweepResult holds metrics for one threshold value.
type SweepResult struct {
	Threshold float64
	Report    Report
}

// SweepThresholds generates threshold values from min to max with given step.
func SweepThresholds(min, max, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var thresholds []float64
	// index-based to avoid accumulating rounding error
	for i := 0; ; i++ {
		t := min + float64(i)*step
		if t >= max {
			break
		}
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// LogThresholds returns n thresholds evenly spaced in log space from min to
// max inclusive. Both bounds must be positive.
func LogThresholds(min, max float64, n int) []float64 {
	if min <= 0 || max <= 0 || n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{min}
	}
	return floats.LogSpan(make([]float64, n), min, max)
}

// Sweep evaluates each threshold and returns results sorted by MCC descending.
// Equal MCC values keep threshold order.
func Sweep(name string, records []perfstat.Record, thresholds []float64) []SweepResult {
	results := make([]SweepResult, 0, len(thresholds))
	for _, t := range thresholds {
		results = append(results, SweepResult{
			Threshold: t,
			Report:    Evaluate(name, records, t),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Report.MCC > results[j].Report.MCC
	})

	return results
}

// ByThreshold returns a copy of results ordered by ascending threshold.
func ByThreshold(results []SweepResult) []SweepResult {
	sorted := slices.Clone(results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	return sorted
}

// Best returns the highest-MCC result of a sorted sweep.
func Best(results []SweepResult) (SweepResult, bool) {
	if len(results) == 0 {
		return SweepResult{}, false
	}
	return results[0], true
}

// Entries converts results to threshold log entries in ascending threshold order.
func Entries(results []SweepResult) []thresholdlog.Entry {
	sorted := ByThreshold(results)
	entries := make([]thresholdlog.Entry, len(sorted))
	for i, r := range sorted {
		entries[i] = r.Report.Entry()
	}
	return entries
}
