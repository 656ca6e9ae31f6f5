// Package thresholdlog reads and writes per-threshold performance logs.
//
// Two encodings exist. The text form is the human-readable report printed by
// the perfstat command; ParseLegacy scrapes "Threshold:" and "MCC:" values out
// of it by pattern and is kept for compatibility with existing log files. The
// structured form is a size-delimited stream of protobuf Struct messages and
// carries the full confusion matrix.
package thresholdlog

import (
	"os"
	"path/filepath"
	"strings"

	perfstat "github.com/jamesainslie/go-perfstat"
)

// Entry is the outcome of evaluating one dataset at one threshold.
type Entry struct {
	Dataset   string
	Threshold float64
	MCC       float64
	Matrix    perfstat.ConfusionMatrix
	HasMatrix bool // false for entries scraped from legacy text
}

// FromMatrix builds an entry from a confusion matrix.
func FromMatrix(dataset string, threshold float64, cm perfstat.ConfusionMatrix) Entry {
	return Entry{
		Dataset:   dataset,
		Threshold: threshold,
		MCC:       cm.MCC(),
		Matrix:    cm,
		HasMatrix: true,
	}
}

// Filter keeps entries with Threshold <= maxThreshold. A non-positive
// maxThreshold keeps everything.
func Filter(entries []Entry, maxThreshold float64) []Entry {
	if maxThreshold <= 0 {
		return entries
	}
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Threshold <= maxThreshold {
			kept = append(kept, e)
		}
	}
	return kept
}

// StructuredExt is the file extension of structured logs.
const StructuredExt = ".pb"

// Open reads a log file, choosing the decoder by extension: StructuredExt for
// the structured form, anything else as legacy text. Entries without a
// dataset name take the file's base name.
func Open(path string, maxThreshold float64) ([]Entry, error) {
	var (
		entries []Entry
		err     error
	)

	if filepath.Ext(path) == StructuredExt {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, openErr
		}
		defer func() { _ = f.Close() }()
		entries, err = ReadAll(f)
		if err == nil {
			entries = Filter(entries, maxThreshold)
		}
	} else {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, readErr
		}
		entries, err = ParseLegacy(string(data), maxThreshold)
	}
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	for i := range entries {
		if entries[i].Dataset == "" {
			entries[i].Dataset = name
		}
	}
	return entries, nil
}
