package perfstat

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMalformedRecord indicates a line could not be parsed into a label and score.
	// Loaders skip such lines and keep going.
	ErrMalformedRecord = errors.New("perfstat: malformed record")

	// ErrMalformedLog indicates a threshold log contains an unparseable number.
	ErrMalformedLog = errors.New("perfstat: malformed threshold log")

	// ErrNoRecords indicates a dataset produced no usable records.
	ErrNoRecords = errors.New("perfstat: no records")

	// ErrUsage indicates required arguments were missing at a command boundary.
	ErrUsage = errors.New("perfstat: usage")
)
