package perfstat

import (
	"math"
	"testing"
)

func TestROCPoints(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    []ROCPoint
		wantAUC float64
	}{
		{
			name:    "perfect separation",
			records: []Record{{Label: 1, Score: 0.1}, {Label: 0, Score: 0.9}},
			want:    []ROCPoint{{0, 0}, {0, 1}, {1, 1}},
			wantAUC: 1,
		},
		{
			name:    "inverted",
			records: []Record{{Label: 0, Score: 0.1}, {Label: 1, Score: 0.9}},
			want:    []ROCPoint{{0, 0}, {1, 0}, {1, 1}},
			wantAUC: 0,
		},
		{
			name:    "tie moves diagonally",
			records: []Record{{Label: 1, Score: 0.5}, {Label: 0, Score: 0.5}},
			want:    []ROCPoint{{0, 0}, {1, 1}},
			wantAUC: 0.5,
		},
		{
			name: "interleaved",
			records: []Record{
				{Label: 1, Score: 1e-10},
				{Label: 0, Score: 1e-6},
				{Label: 1, Score: 1e-3},
				{Label: 0, Score: 1},
			},
			want:    []ROCPoint{{0, 0}, {0, 0.5}, {0.5, 0.5}, {0.5, 1}, {1, 1}},
			wantAUC: 0.75,
		},
		{
			name:    "no negatives",
			records: []Record{{Label: 1, Score: 0.2}, {Label: 1, Score: 0.4}},
			want:    []ROCPoint{{0, 0}, {0, 0.5}, {0, 1}},
			wantAUC: 0,
		},
		{
			name:    "empty",
			records: nil,
			want:    []ROCPoint{{0, 0}},
			wantAUC: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ROCPoints(tt.records)
			if len(got) != len(tt.want) {
				t.Fatalf("ROCPoints() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("point[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if auc := AUC(got); math.Abs(auc-tt.wantAUC) > 1e-12 {
				t.Errorf("AUC() = %v, want %v", auc, tt.wantAUC)
			}
		})
	}
}

func TestROCPoints_MatchesThresholdSweep(t *testing.T) {
	records := []Record{
		{Label: 1, Score: 1e-30},
		{Label: 1, Score: 1e-12},
		{Label: 0, Score: 1e-12},
		{Label: 0, Score: 1e-5},
		{Label: 1, Score: 0.01},
		{Label: 0, Score: 0.3},
		{Label: 0, Score: 4},
		{Label: 1, Score: 9},
	}
	distinct := []float64{1e-30, 1e-12, 1e-5, 0.01, 0.3, 4, 9}

	points := ROCPoints(records)
	if len(points) != len(distinct)+1 {
		t.Fatalf("got %d points, want %d", len(points), len(distinct)+1)
	}

	for i, th := range distinct {
		cm := BuildConfusionMatrix(records, th)
		want := ROCPoint{
			FPR: float64(cm.FP) / float64(cm.FP+cm.TN),
			TPR: float64(cm.TP) / float64(cm.TP+cm.FN),
		}
		if points[i+1] != want {
			t.Errorf("threshold %g: point %+v, want %+v", th, points[i+1], want)
		}
	}
}

func TestROCPoints_DoesNotReorderInput(t *testing.T) {
	records := []Record{{Label: 0, Score: 3}, {Label: 1, Score: 1}, {Label: 0, Score: 2}}
	_ = ROCPoints(records)
	if records[0].Score != 3 || records[1].Score != 1 || records[2].Score != 2 {
		t.Errorf("input reordered: %+v", records)
	}
}

func TestROC(t *testing.T) {
	curve := ROC([]Record{{Label: 1, Score: 0.1}, {Label: 0, Score: 0.9}})
	if curve.AUC != 1 {
		t.Errorf("AUC = %v, want 1", curve.AUC)
	}
	if len(curve.Points) != 3 {
		t.Errorf("got %d points, want 3", len(curve.Points))
	}
}

func TestAUC_TooFewPoints(t *testing.T) {
	if got := AUC(nil); got != 0 {
		t.Errorf("AUC(nil) = %v, want 0", got)
	}
	if got := AUC([]ROCPoint{{0, 0}}); got != 0 {
		t.Errorf("AUC(single) = %v, want 0", got)
	}
}
