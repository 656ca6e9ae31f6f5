package thresholdlog

import (
	"fmt"
	"regexp"
	"strconv"

	perfstat "github.com/jamesainslie/go-perfstat"
)

var (
	thresholdPattern = regexp.MustCompile(`Threshold: ([\de.+-]+)`)
	// the sign is optional so that negative correlations stay paired
	mccPattern = regexp.MustCompile(`MCC: (-?[\d.]+)`)
)

// ParseLegacy extracts threshold/MCC pairs from free text. The n-th threshold
// is paired with the n-th MCC value; surplus values of either kind are
// dropped. When maxThreshold > 0 only pairs with threshold <= maxThreshold are
// returned. An unparseable captured number wraps perfstat.ErrMalformedLog.
func ParseLegacy(text string, maxThreshold float64) ([]Entry, error) {
	thresholds, err := captureFloats(thresholdPattern, text, "threshold")
	if err != nil {
		return nil, err
	}
	mccs, err := captureFloats(mccPattern, text, "MCC")
	if err != nil {
		return nil, err
	}

	n := min(len(thresholds), len(mccs))
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, Entry{Threshold: thresholds[i], MCC: mccs[i]})
	}

	return Filter(entries, maxThreshold), nil
}

func captureFloats(re *regexp.Regexp, text, what string) ([]float64, error) {
	matches := re.FindAllStringSubmatch(text, -1)
	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", perfstat.ErrMalformedLog, what, m[1])
		}
		values = append(values, v)
	}
	return values, nil
}
