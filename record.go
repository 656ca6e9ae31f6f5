package perfstat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is a single labelled score.
type Record struct {
	Label int // true class, 0 or 1
	Score float64
}

// Columns locates the label and score fields within a whitespace-delimited line.
// Indices are 0-based.
type Columns struct {
	Label int
	Score int
	Exact int // if > 0, lines must have exactly this many fields
}

// DefaultColumns returns the .class layout: id, label, e-value, ...
func DefaultColumns() Columns {
	return Columns{Label: 1, Score: 2}
}

// minFields is the number of fields a line needs to reach both columns.
func (c Columns) minFields() int {
	return max(c.Label, c.Score) + 1
}

// LineError describes a skipped input line.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseRecord parses one line into a Record. All failures wrap ErrMalformedRecord.
func ParseRecord(line string, cols Columns) (Record, error) {
	fields := strings.Fields(line)

	if cols.Exact > 0 && len(fields) != cols.Exact {
		return Record{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), cols.Exact)
	}
	if len(fields) < cols.minFields() {
		return Record{}, fmt.Errorf("%w: got %d fields, need %d", ErrMalformedRecord, len(fields), cols.minFields())
	}

	label, err := strconv.Atoi(fields[cols.Label])
	if err != nil {
		return Record{}, fmt.Errorf("%w: label %q: %w", ErrMalformedRecord, fields[cols.Label], err)
	}
	if label != 0 && label != 1 {
		return Record{}, fmt.Errorf("%w: label %d not in {0,1}", ErrMalformedRecord, label)
	}

	score, err := strconv.ParseFloat(fields[cols.Score], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: score %q: %w", ErrMalformedRecord, fields[cols.Score], err)
	}
	if math.IsNaN(score) {
		return Record{}, fmt.Errorf("%w: score is NaN", ErrMalformedRecord)
	}

	return Record{Label: label, Score: score}, nil
}
