package thresholdlog

import (
	"bytes"
	"testing"

	perfstat "github.com/jamesainslie/go-perfstat"
)

func TestWriteReport(t *testing.T) {
	cm := perfstat.ConfusionMatrix{TN: 1, FN: 1, FP: 1, TP: 1}

	var buf bytes.Buffer
	if err := WriteReport(&buf, 0.05, cm); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	want := `
Confusion Matrix:
TN = 1 FN = 1
FP = 1 TP = 1
Threshold: 0.05
Q2 (Accuracy): 0.5
MCC: 0.0
TPR (Recall): 0.5
PPV (Precision): 0.5
`
	if got := buf.String(); got != want {
		t.Errorf("WriteReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{0, "0.0"},
		{1, "1.0"},
		{1e-5, "1e-05"},
		{0.001, "0.001"},
		{2.5e-30, "2.5e-30"},
		{0.6667, "0.6667"},
		{1e-4, "0.0001"},
		{9.5e-5, "9.5e-05"},
		{1e6, "1000000.0"},
		{1234567, "1234567.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{-2.5e-7, "-2.5e-07"},
		{-0.125, "-0.125"},
	}

	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRound4(t *testing.T) {
	if got := Round4(2.0 / 3.0); got != 0.6667 {
		t.Errorf("Round4(2/3) = %v, want 0.6667", got)
	}
	if got := Round4(0.98765); got != 0.9877 {
		t.Errorf("Round4(0.98765) = %v, want 0.9877", got)
	}
}

func TestWriteText_RoundTripsThroughLegacyParser(t *testing.T) {
	entries := []Entry{
		FromMatrix("set1", 1e-10, perfstat.ConfusionMatrix{TN: 10, FN: 2, TP: 8}),
		FromMatrix("set1", 1e-3, perfstat.ConfusionMatrix{TN: 7, FP: 3, TP: 10}),
		{Threshold: 0.5, MCC: -0.125},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, entries); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	got, err := ParseLegacy(buf.String(), 0)
	if err != nil {
		t.Fatalf("ParseLegacy() error = %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i].Threshold != entries[i].Threshold {
			t.Errorf("entry[%d].Threshold = %v, want %v", i, got[i].Threshold, entries[i].Threshold)
		}
		if got[i].MCC != Round4(entries[i].MCC) {
			t.Errorf("entry[%d].MCC = %v, want %v", i, got[i].MCC, Round4(entries[i].MCC))
		}
	}
}
