package bench

import (
	"io"

	perfstat "github.com/jamesainslie/go-perfstat"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

// Report holds the statistics of one dataset at one threshold.
type Report struct {
	Dataset   string
	Threshold float64
	Matrix    perfstat.ConfusionMatrix
	Accuracy  float64
	MCC       float64
	Recall    float64
	Precision float64
	F1        float64
}

// Evaluate classifies records at threshold and derives every statistic.
func Evaluate(name string, records []perfstat.Record, threshold float64) Report {
	return newReport(name, threshold, perfstat.BuildConfusionMatrix(records, threshold))
}

func newReport(name string, threshold float64, cm perfstat.ConfusionMatrix) Report {
	return Report{
		Dataset:   name,
		Threshold: threshold,
		Matrix:    cm,
		Accuracy:  cm.Accuracy(),
		MCC:       cm.MCC(),
		Recall:    cm.Recall(),
		Precision: cm.Precision(),
		F1:        cm.F1(),
	}
}

// Format writes the report in the perfstat text layout.
func (r Report) Format(w io.Writer) error {
	return thresholdlog.WriteReport(w, r.Threshold, r.Matrix)
}

// Entry converts the report to a threshold log entry.
func (r Report) Entry() thresholdlog.Entry {
	return thresholdlog.FromMatrix(r.Dataset, r.Threshold, r.Matrix)
}
