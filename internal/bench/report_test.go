package bench

import (
	"bytes"
	"strings"
	"testing"

	perfstat "github.com/jamesainslie/go-perfstat"
)

var roundTrip = []perfstat.Record{
	{Label: 1, Score: 0.001},
	{Label: 1, Score: 0.2},
	{Label: 0, Score: 0.01},
	{Label: 0, Score: 0.5},
}

func TestEvaluate(t *testing.T) {
	r := Evaluate("set", roundTrip, 0.05)

	want := perfstat.ConfusionMatrix{TN: 1, FN: 1, FP: 1, TP: 1}
	if r.Matrix != want {
		t.Errorf("Matrix = %+v, want %+v", r.Matrix, want)
	}
	if r.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", r.Accuracy)
	}
	if r.MCC != 0 {
		t.Errorf("MCC = %v, want 0", r.MCC)
	}
	if r.Recall != 0.5 || r.Precision != 0.5 {
		t.Errorf("Recall = %v, Precision = %v, want 0.5 each", r.Recall, r.Precision)
	}
	if r.Dataset != "set" || r.Threshold != 0.05 {
		t.Errorf("Dataset/Threshold = %q/%v", r.Dataset, r.Threshold)
	}
}

func TestReport_Format(t *testing.T) {
	r := Evaluate("set", roundTrip, 0.05)

	var buf bytes.Buffer
	if err := r.Format(&buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Confusion Matrix:\n",
		"TN = 1 FN = 1\n",
		"FP = 1 TP = 1\n",
		"Threshold: 0.05\n",
		"Q2 (Accuracy): 0.5\n",
		"MCC: 0.0\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReport_Entry(t *testing.T) {
	e := Evaluate("set", roundTrip, 0.05).Entry()
	if !e.HasMatrix || e.Dataset != "set" || e.Threshold != 0.05 {
		t.Errorf("Entry() = %+v", e)
	}
}
