package thresholdlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"

	perfstat "github.com/jamesainslie/go-perfstat"
)

// Field names of a structured entry.
const (
	fieldDataset   = "dataset"
	fieldThreshold = "threshold"
	fieldMCC       = "mcc"
	fieldTN        = "tn"
	fieldFN        = "fn"
	fieldFP        = "fp"
	fieldTP        = "tp"
)

// Writer encodes entries as size-delimited protobuf Struct messages.
type Writer struct {
	w io.Writer
	n int
}

// NewWriter returns a Writer appending to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one entry.
func (w *Writer) Write(e Entry) error {
	fields := map[string]any{
		fieldDataset:   e.Dataset,
		fieldThreshold: e.Threshold,
		fieldMCC:       e.MCC,
	}
	if e.HasMatrix {
		fields[fieldTN] = e.Matrix.TN
		fields[fieldFN] = e.Matrix.FN
		fields[fieldFP] = e.Matrix.FP
		fields[fieldTP] = e.Matrix.TP
	}

	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("encoding entry: %w", err)
	}
	if _, err := protodelim.MarshalTo(w.w, msg); err != nil {
		return fmt.Errorf("writing entry %d: %w", w.n, err)
	}
	w.n++
	return nil
}

// WriteAll appends entries in order.
func (w *Writer) WriteAll(entries []Entry) error {
	for _, e := range entries {
		if err := w.Write(e); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of entries written.
func (w *Writer) Count() int {
	return w.n
}

// ReadAll decodes every entry from r until EOF.
func ReadAll(r io.Reader) ([]Entry, error) {
	br, ok := r.(protodelim.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var entries []Entry
	for {
		var msg structpb.Struct
		err := protodelim.UnmarshalFrom(br, &msg)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", perfstat.ErrMalformedLog, len(entries), err)
		}

		e, err := decodeEntry(&msg)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(entries), err)
		}
		entries = append(entries, e)
	}
}

func decodeEntry(msg *structpb.Struct) (Entry, error) {
	fields := msg.GetFields()

	threshold, ok := fields[fieldThreshold]
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing %s", perfstat.ErrMalformedLog, fieldThreshold)
	}
	mcc, ok := fields[fieldMCC]
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing %s", perfstat.ErrMalformedLog, fieldMCC)
	}

	e := Entry{
		Dataset:   fields[fieldDataset].GetStringValue(),
		Threshold: threshold.GetNumberValue(),
		MCC:       mcc.GetNumberValue(),
	}

	if _, ok := fields[fieldTP]; ok {
		e.HasMatrix = true
		e.Matrix = perfstat.ConfusionMatrix{
			TN: int(fields[fieldTN].GetNumberValue()),
			FN: int(fields[fieldFN].GetNumberValue()),
			FP: int(fields[fieldFP].GetNumberValue()),
			TP: int(fields[fieldTP].GetNumberValue()),
		}
	}

	return e, nil
}
