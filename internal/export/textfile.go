// Package export writes evaluation results in the Prometheus text exposition
// format, for collection by node_exporter's textfile collector.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/jamesainslie/go-perfstat/internal/bench"
	"github.com/jamesainslie/go-perfstat/thresholdlog"
)

const namespace = "perfstat_"

// Metric names.
const (
	MetricConfusion = namespace + "confusion_count"
	MetricAccuracy  = namespace + "accuracy"
	MetricMCC       = namespace + "mcc"
	MetricRecall    = namespace + "recall"
	MetricPrecision = namespace + "precision"
	MetricThreshold = namespace + "threshold"
	MetricSweepMCC  = namespace + "sweep_mcc"
	MetricAUC       = namespace + "roc_auc"
)

var help = map[string]string{
	MetricConfusion: "Confusion matrix cell counts at the evaluated threshold.",
	MetricAccuracy:  "Fraction of correctly classified records (Q2).",
	MetricMCC:       "Matthews correlation coefficient.",
	MetricRecall:    "True positive rate.",
	MetricPrecision: "Positive predictive value.",
	MetricThreshold: "Decision threshold; scores at or below it are positive.",
	MetricSweepMCC:  "Matthews correlation coefficient per swept threshold.",
	MetricAUC:       "Area under the ROC curve.",
}

// Textfile accumulates gauge families. Each family is written once, so a
// dataset may contribute a report, a sweep and a ROC curve to the same file.
// Adding a sample whose labels already exist overwrites its value.
type Textfile struct {
	families map[string]*dto.MetricFamily
}

// NewTextfile returns an empty Textfile.
func NewTextfile() *Textfile {
	return &Textfile{families: make(map[string]*dto.MetricFamily)}
}

// AddReport records the single-threshold statistics of a report.
func (t *Textfile) AddReport(r bench.Report) {
	ds := label("dataset", r.Dataset)
	cm := r.Matrix

	for _, cell := range []struct {
		name  string
		value int
	}{{"tn", cm.TN}, {"fn", cm.FN}, {"fp", cm.FP}, {"tp", cm.TP}} {
		t.gauge(MetricConfusion, float64(cell.value), ds, label("cell", cell.name))
	}
	t.gauge(MetricAccuracy, r.Accuracy, ds)
	t.gauge(MetricMCC, r.MCC, ds)
	t.gauge(MetricRecall, r.Recall, ds)
	t.gauge(MetricPrecision, r.Precision, ds)
	t.gauge(MetricThreshold, r.Threshold, ds)
}

// AddSweep records the MCC at every swept threshold.
func (t *Textfile) AddSweep(name string, results []bench.SweepResult) {
	for _, r := range bench.ByThreshold(results) {
		t.gauge(MetricSweepMCC, r.Report.MCC,
			label("dataset", name),
			label("threshold", thresholdlog.FormatFloat(r.Threshold)))
	}
}

// AddROC records the AUC of each curve.
func (t *Textfile) AddROC(series []bench.ROCSeries) {
	for _, s := range series {
		t.gauge(MetricAUC, s.Curve.AUC, label("dataset", s.Name))
	}
}

// WriteTo writes all families in name order.
func (t *Textfile) WriteTo(w io.Writer) (int64, error) {
	names := make([]string, 0, len(t.families))
	for name := range t.families {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int64
	for _, name := range names {
		n, err := expfmt.MetricFamilyToText(w, t.families[name])
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return total, nil
}

// WriteFile writes the textfile atomically: node_exporter may read at any time.
func (t *Textfile) WriteFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }() // no-op after a successful rename

	if _, err := t.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming textfile: %w", err)
	}
	return nil
}

func (t *Textfile) gauge(name string, value float64, labels ...*dto.LabelPair) {
	mf, ok := t.families[name]
	if !ok {
		mf = &dto.MetricFamily{
			Name: proto.String(name),
			Help: proto.String(help[name]),
			Type: dto.MetricType_GAUGE.Enum(),
		}
		t.families[name] = mf
	}
	// a repeated label set replaces the earlier sample; exposition forbids duplicates
	for _, m := range mf.Metric {
		if sameLabels(m.GetLabel(), labels) {
			m.Gauge = &dto.Gauge{Value: proto.Float64(value)}
			return
		}
	}
	mf.Metric = append(mf.Metric, &dto.Metric{
		Label: labels,
		Gauge: &dto.Gauge{Value: proto.Float64(value)},
	})
}

func sameLabels(a, b []*dto.LabelPair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].GetName() != b[i].GetName() || a[i].GetValue() != b[i].GetValue() {
			return false
		}
	}
	return true
}

func label(name, value string) *dto.LabelPair {
	return &dto.LabelPair{Name: proto.String(name), Value: proto.String(value)}
}
