// Package dataset loads labelled score files into records.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	perfstat "github.com/jamesainslie/go-perfstat"
)

// maxLineSize bounds a single input line; .class files carry long sequence ids.
const maxLineSize = 1 << 20

// Dataset is a parsed score file.
type Dataset struct {
	Name    string // file name without extension
	Records []perfstat.Record
	Skipped []perfstat.LineError
	Lines   int // lines read, including blanks and comments
}

// Positives returns the number of records labelled 1.
func (d *Dataset) Positives() int {
	n := 0
	for _, r := range d.Records {
		if r.Label == 1 {
			n++
		}
	}
	return n
}

// Read parses records from r. Malformed lines are skipped and collected in
// Dataset.Skipped; only read failures are returned as errors.
func Read(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ds := &Dataset{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		ds.Lines++
		line := scanner.Text()

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		rec, err := perfstat.ParseRecord(line, cfg.columns)
		if err != nil {
			cfg.logger.Debug("skipping malformed line", "line", ds.Lines, "error", err)
			ds.Skipped = append(ds.Skipped, perfstat.LineError{Line: ds.Lines, Text: line, Err: err})
			continue
		}
		ds.Records = append(ds.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}

	if len(ds.Skipped) > 0 {
		cfg.logger.Warn("skipped malformed lines", "skipped", len(ds.Skipped), "records", len(ds.Records))
	}

	return ds, nil
}

// Load reads a score file from disk.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }() // read-only; close error carries no data loss

	ds, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	base := filepath.Base(path)
	ds.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return ds, nil
}

// LoadAll loads several files and concatenates their records in order.
// The returned dataset is named after the files joined with "+".
func LoadAll(paths []string, opts ...Option) (*Dataset, error) {
	merged := &Dataset{}
	names := make([]string, 0, len(paths))

	for _, path := range paths {
		ds, err := Load(path, opts...)
		if err != nil {
			return nil, err
		}
		names = append(names, ds.Name)
		merged.Records = append(merged.Records, ds.Records...)
		merged.Skipped = append(merged.Skipped, ds.Skipped...)
		merged.Lines += ds.Lines
	}

	merged.Name = strings.Join(names, "+")
	return merged, nil
}
