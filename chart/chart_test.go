package chart

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	perfstat "github.com/jamesainslie/go-perfstat"
	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

func quietRenderer() *Renderer {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestMCCCurves(t *testing.T) {
	series := []bench.Series{
		{Name: "Set 1", Entries: []thresholdlog.Entry{
			{Threshold: 1e-10, MCC: 0.99},
			{Threshold: 1e-7, MCC: 0.995},
			{Threshold: 1e-5, MCC: 0.999},
			{Threshold: 1e-3, MCC: 0.97},
		}},
		{Name: "Set 2", Entries: []thresholdlog.Entry{
			{Threshold: 0, MCC: 0.5},
			{Threshold: 1e-9, MCC: 0.985},
			{Threshold: 1e-6, MCC: 0.998},
		}},
	}

	tests := []struct {
		name string
		file string
		opts bench.MCCPlotOptions
	}{
		{name: "full png", file: "mcc.png", opts: bench.MCCPlotOptions{Title: "MCC"}},
		{
			name: "filtered svg",
			file: "mcc_filtered.svg",
			opts: bench.MCCPlotOptions{Title: "MCC (threshold <= 1e-5)", MaxThreshold: 1e-5, YMin: 0.98, YMax: 1.001},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := quietRenderer().MCCCurves(path, series, tt.opts); err != nil {
				t.Fatalf("MCCCurves() error = %v", err)
			}
			assertNonEmptyFile(t, path)
		})
	}
}

func TestMCCCurves_NoData(t *testing.T) {
	series := []bench.Series{{Name: "only zero", Entries: []thresholdlog.Entry{{Threshold: 0, MCC: 1}}}}
	path := filepath.Join(t.TempDir(), "mcc.png")

	err := quietRenderer().MCCCurves(path, series, bench.MCCPlotOptions{})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got: %v", err)
	}
}

func TestROC(t *testing.T) {
	records := []perfstat.Record{
		{Label: 1, Score: 1e-20},
		{Label: 0, Score: 1e-8},
		{Label: 1, Score: 1e-4},
		{Label: 0, Score: 2},
	}
	series := []bench.ROCSeries{{Name: "HMM", Curve: perfstat.ROC(records)}}

	path := filepath.Join(t.TempDir(), "roc_curve.png")
	if err := quietRenderer().ROC(path, series); err != nil {
		t.Fatalf("ROC() error = %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestROC_NoSeries(t *testing.T) {
	if err := quietRenderer().ROC(filepath.Join(t.TempDir(), "x.png"), nil); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got: %v", err)
	}
}

func TestMCCCurves_SingleThreshold(t *testing.T) {
	series := []bench.Series{{Name: "one", Entries: []thresholdlog.Entry{{Threshold: 1e-5, MCC: 0.99}}}}
	path := filepath.Join(t.TempDir(), "mcc.png")

	if err := quietRenderer().MCCCurves(path, series, bench.MCCPlotOptions{}); err != nil {
		t.Fatalf("MCCCurves() error = %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestMCCPoints(t *testing.T) {
	got := mccPoints([]thresholdlog.Entry{{Threshold: -1}, {Threshold: 0}, {Threshold: 1e-3, MCC: 0.5}})
	if len(got) != 1 || got[0].X != 1e-3 || got[0].Y != 0.5 {
		t.Errorf("mccPoints() = %v", got)
	}
}
