// Package errs defines the failure taxonomy shared by the extraction
// pipeline. Every failure is fatal to the run; stages wrap these sentinels
// with fmt.Errorf("...: %w", ...) so callers can match with errors.Is while
// still seeing which stage and input row caused the abort.
package errs

import "errors"

var (
	// ErrMalformedRecord reports a data row with fewer than two fields or a
	// non-numeric timestamp/voltage field.
	ErrMalformedRecord = errors.New("malformed capture record")

	// ErrEmptyInput reports a capture with no data rows after the header.
	ErrEmptyInput = errors.New("capture contains no data rows")

	// ErrNoSignalAfterStart reports that the start-time window filtered out
	// every sample.
	ErrNoSignalAfterStart = errors.New("no samples at or after start time")

	// ErrDegenerateRun reports a level run whose duration rounds to zero
	// microseconds, which indicates the supplied sample rate does not match
	// the capture density.
	ErrDegenerateRun = errors.New("level run rounds to zero duration")

	// ErrUnmatchedDuration reports a segment duration with no table entry
	// within tolerance. The table is built with the same tolerance, so this
	// is an internal-consistency fault rather than a user error.
	ErrUnmatchedDuration = errors.New("segment duration matches no table entry")

	// ErrTableOverflow reports that clustering produced more entries than
	// the configured table capacity allows.
	ErrTableOverflow = errors.New("duration table exceeds configured capacity")
)
