package perfstat

import (
	"slices"

	"gonum.org/v1/gonum/integrate"
)

// ROCPoint is one operating point of a ROC curve.
type ROCPoint struct {
	FPR float64
	TPR float64
}

// ROCCurve is a ROC curve with its area.
type ROCCurve struct {
	Points []ROCPoint
	AUC    float64
}

// ROC builds the curve for records and integrates it.
func ROC(records []Record) ROCCurve {
	points := ROCPoints(records)
	return ROCCurve{Points: points, AUC: AUC(points)}
}

// ROCPoints sweeps every distinct score as a threshold, most confident first
// (ascending score). The curve starts at (0,0) and gains one point per distinct
// score, so tied scores move together. The result equals classifying at each
// distinct score with BuildConfusionMatrix.
//
// A rate whose class is absent from records is reported as 0.
func ROCPoints(records []Record) []ROCPoint {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		}
		return 0
	})

	var pos, neg int
	for _, r := range sorted {
		if r.Label == 1 {
			pos++
		} else {
			neg++
		}
	}

	points := make([]ROCPoint, 0, len(sorted)+1)
	points = append(points, ROCPoint{})

	var tp, fp int
	for i, r := range sorted {
		if r.Label == 1 {
			tp++
		} else {
			fp++
		}
		// emit only once the whole tie group is consumed
		if i+1 < len(sorted) && sorted[i+1].Score == r.Score {
			continue
		}
		points = append(points, ROCPoint{FPR: ratio(fp, neg), TPR: ratio(tp, pos)})
	}

	return points
}

// AUC returns the trapezoidal area under points, which must be ordered by
// non-decreasing FPR as ROCPoints returns them. Fewer than two points yield 0.
func AUC(points []ROCPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.FPR
		y[i] = p.TPR
	}
	return integrate.Trapezoidal(x, y)
}
