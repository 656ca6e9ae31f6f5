package bench

import (
	"errors"
	"testing"

	perfstat "github.com/jamesainslie/go-perfstat"
	"github.com/jamesainslie/go-perfstat/dataset"
)

type recordingRenderer struct {
	mccPath   string
	mccSeries []Series
	mccOpts   MCCPlotOptions
	rocPath   string
	rocSeries []ROCSeries
	err       error
}

func (r *recordingRenderer) MCCCurves(path string, series []Series, opts MCCPlotOptions) error {
	r.mccPath, r.mccSeries, r.mccOpts = path, series, opts
	return r.err
}

func (r *recordingRenderer) ROC(path string, series []ROCSeries) error {
	r.rocPath, r.rocSeries = path, series
	return r.err
}

func testSets() []*dataset.Dataset {
	return []*dataset.Dataset{
		{Name: "set_1", Records: []perfstat.Record{{Label: 1, Score: 0.1}, {Label: 0, Score: 0.9}}},
		{Name: "set_2", Records: roundTrip},
	}
}

func TestCompare(t *testing.T) {
	comparisons, err := Compare(testSets(), []float64{1e-3, 0.05, 0.5})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(comparisons) != 2 {
		t.Fatalf("got %d comparisons, want 2", len(comparisons))
	}

	r := &recordingRenderer{}
	opts := MCCPlotOptions{Title: "MCC", MaxThreshold: 1e-5, YMin: 0.98, YMax: 1.001}
	if err := RenderComparison(r, "mcc.png", comparisons, opts); err != nil {
		t.Fatalf("RenderComparison() error = %v", err)
	}

	if r.mccPath != "mcc.png" || r.mccOpts != opts {
		t.Errorf("renderer got path %q opts %+v", r.mccPath, r.mccOpts)
	}
	if len(r.mccSeries) != 2 || r.mccSeries[0].Name != "set_1" {
		t.Fatalf("unexpected series: %+v", r.mccSeries)
	}
	entries := r.mccSeries[0].Entries
	if len(entries) != 3 || entries[0].Threshold != 1e-3 || entries[2].Threshold != 0.5 {
		t.Errorf("series not in threshold order: %+v", entries)
	}
	// set_1 separates perfectly at 0.5
	if entries[2].MCC != 1 {
		t.Errorf("set_1 MCC at 0.5 = %v, want 1", entries[2].MCC)
	}
}

func TestCompare_EmptyDataset(t *testing.T) {
	sets := []*dataset.Dataset{{Name: "empty"}}
	if _, err := Compare(sets, []float64{1}); !errors.Is(err, perfstat.ErrNoRecords) {
		t.Errorf("expected ErrNoRecords, got: %v", err)
	}
}

func TestRenderROC(t *testing.T) {
	r := &recordingRenderer{}
	series, err := RenderROC(r, "roc.png", testSets())
	if err != nil {
		t.Fatalf("RenderROC() error = %v", err)
	}
	if len(series) != 2 || len(r.rocSeries) != 2 {
		t.Fatalf("got %d series, renderer saw %d", len(series), len(r.rocSeries))
	}
	if series[0].Curve.AUC != 1 {
		t.Errorf("set_1 AUC = %v, want 1", series[0].Curve.AUC)
	}
}

func TestRenderROC_RendererError(t *testing.T) {
	r := &recordingRenderer{err: errors.New("no space left")}
	if _, err := RenderROC(r, "roc.png", testSets()); err == nil {
		t.Error("expected renderer error")
	}
}

func TestCompare_DuplicateNames(t *testing.T) {
	records := []perfstat.Record{{Label: 1, Score: 0.1}, {Label: 0, Score: 0.9}}
	sets := []*dataset.Dataset{
		{Name: "set_1", Records: records},
		{Name: "set_1", Records: roundTrip},
		{Name: "set_1_2", Records: records},
		{Name: "set_1", Records: records},
	}

	comparisons, err := Compare(sets, []float64{0.5})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	want := []string{"set_1", "set_1_2", "set_1_2_2", "set_1_3"}
	for i, c := range comparisons {
		if c.Name != want[i] {
			t.Errorf("comparisons[%d].Name = %q, want %q", i, c.Name, want[i])
		}
		if got := c.Results[0].Report.Dataset; got != want[i] {
			t.Errorf("comparisons[%d] report dataset = %q, want %q", i, got, want[i])
		}
	}
	if sets[1].Name != "set_1" {
		t.Errorf("Compare renamed its input: %q", sets[1].Name)
	}

	r := &recordingRenderer{}
	series, err := RenderROC(r, "roc.png", sets[:2])
	if err != nil {
		t.Fatalf("RenderROC() error = %v", err)
	}
	if series[0].Name != "set_1" || series[1].Name != "set_1_2" {
		t.Errorf("ROC series names = %q, %q", series[0].Name, series[1].Name)
	}
}
