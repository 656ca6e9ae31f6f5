package thresholdlog

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	perfstat "github.com/jamesainslie/go-perfstat"
)

// WriteReport writes the performance block for one matrix:
//
//	Confusion Matrix:
//	TN = 1 FN = 1
//	FP = 1 TP = 1
//	Threshold: 0.05
//	Q2 (Accuracy): 0.5
//	MCC: 0.0
//	TPR (Recall): 0.5
//	PPV (Precision): 0.5
//
// preceded by a blank line. Statistics are rounded to four decimals.
func WriteReport(w io.Writer, threshold float64, cm perfstat.ConfusionMatrix) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("Confusion Matrix:\n")
	fmt.Fprintf(&b, "TN = %d FN = %d\n", cm.TN, cm.FN)
	fmt.Fprintf(&b, "FP = %d TP = %d\n", cm.FP, cm.TP)
	fmt.Fprintf(&b, "Threshold: %s\n", FormatFloat(threshold))
	fmt.Fprintf(&b, "Q2 (Accuracy): %s\n", FormatFloat(Round4(cm.Accuracy())))
	fmt.Fprintf(&b, "MCC: %s\n", FormatFloat(Round4(cm.MCC())))
	fmt.Fprintf(&b, "TPR (Recall): %s\n", FormatFloat(Round4(cm.Recall())))
	fmt.Fprintf(&b, "PPV (Precision): %s\n", FormatFloat(Round4(cm.Precision())))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteText writes one report block per entry. Entries without a matrix
// produce only their Threshold and MCC lines.
func WriteText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if e.HasMatrix {
			if err := WriteReport(w, e.Threshold, e.Matrix); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "\nThreshold: %s\nMCC: %s\n",
			FormatFloat(e.Threshold), FormatFloat(Round4(e.MCC))); err != nil {
			return err
		}
	}
	return nil
}

// Round4 rounds half away from zero to four decimals.
func Round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// FormatFloat renders v in shortest round-trip form, always marking it as a
// float: 0.5, 1e-05, 0.0, 1000000.0. Magnitudes below 1e-4 or from 1e16 up
// use exponent notation; everything else is positional.
func FormatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	format := byte('f')
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		format = 'e'
	}
	s := strconv.FormatFloat(v, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
