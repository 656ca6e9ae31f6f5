package perfstat

import "math"

// ConfusionMatrix holds the 2x2 contingency table of predicted vs true labels.
// It is a value type; a matrix returned by BuildConfusionMatrix is never mutated.
type ConfusionMatrix struct {
	TN int // predicted 0, true 0
	FN int // predicted 0, true 1
	FP int // predicted 1, true 0
	TP int // predicted 1, true 1
}

// Predict applies the decision rule: scores at or below threshold are positive.
func Predict(score, threshold float64) int {
	if score <= threshold {
		return 1
	}
	return 0
}

// BuildConfusionMatrix classifies every record at threshold and counts the outcomes.
// The result does not depend on record order.
func BuildConfusionMatrix(records []Record, threshold float64) ConfusionMatrix {
	var cm ConfusionMatrix
	for _, r := range records {
		cm.add(Predict(r.Score, threshold), r.Label)
	}
	return cm
}

// BuildConfusionMatrixFromLines parses and classifies raw lines. Lines that fail
// to parse are skipped and returned; they never contribute to the counts.
func BuildConfusionMatrixFromLines(lines []string, cols Columns, threshold float64) (ConfusionMatrix, []LineError) {
	var (
		cm      ConfusionMatrix
		skipped []LineError
	)
	for i, line := range lines {
		r, err := ParseRecord(line, cols)
		if err != nil {
			skipped = append(skipped, LineError{Line: i + 1, Text: line, Err: err})
			continue
		}
		cm.add(Predict(r.Score, threshold), r.Label)
	}
	return cm, skipped
}

func (cm *ConfusionMatrix) add(pred, truth int) {
	switch {
	case pred == 0 && truth == 0:
		cm.TN++
	case pred == 0 && truth == 1:
		cm.FN++
	case pred == 1 && truth == 0:
		cm.FP++
	case pred == 1 && truth == 1:
		cm.TP++
	}
}

// Cell returns the count at (predicted, truth). Out-of-range indices return 0.
func (cm ConfusionMatrix) Cell(pred, truth int) int {
	switch {
	case pred == 0 && truth == 0:
		return cm.TN
	case pred == 0 && truth == 1:
		return cm.FN
	case pred == 1 && truth == 0:
		return cm.FP
	case pred == 1 && truth == 1:
		return cm.TP
	}
	return 0
}

// Total returns the number of classified records.
func (cm ConfusionMatrix) Total() int {
	return cm.TN + cm.FN + cm.FP + cm.TP
}

// PredictedPositive returns TP+FP.
func (cm ConfusionMatrix) PredictedPositive() int {
	return cm.TP + cm.FP
}

// Accuracy returns (TN+TP)/total, reported as Q2 by the CLI.
func (cm ConfusionMatrix) Accuracy() float64 {
	return ratio(cm.TN+cm.TP, cm.Total())
}

// MCC returns the Matthews correlation coefficient, or 0 when any marginal is empty.
func (cm ConfusionMatrix) MCC() float64 {
	tp, tn := float64(cm.TP), float64(cm.TN)
	fp, fn := float64(cm.FP), float64(cm.FN)

	// float64 products: integer products overflow for large datasets
	denom := math.Sqrt((tp+fp)*(tn+fn)) * math.Sqrt((tp+fn)*(tn+fp))
	if denom == 0 {
		return 0
	}
	// each product rounds; keep the ratio inside [-1, 1]
	return max(-1, min(1, (tp*tn-fp*fn)/denom))
}

// Recall returns TP/(TP+FN), the true positive rate.
func (cm ConfusionMatrix) Recall() float64 {
	return ratio(cm.TP, cm.TP+cm.FN)
}

// Precision returns TP/(TP+FP), the positive predictive value.
func (cm ConfusionMatrix) Precision() float64 {
	return ratio(cm.TP, cm.TP+cm.FP)
}

// Specificity returns TN/(TN+FP).
func (cm ConfusionMatrix) Specificity() float64 {
	return ratio(cm.TN, cm.TN+cm.FP)
}

// F1 returns the harmonic mean of precision and recall.
func (cm ConfusionMatrix) F1() float64 {
	p, r := cm.Precision(), cm.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
