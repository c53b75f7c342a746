// Package provenance accumulates per-field extraction outcomes for a single parse.
package provenance

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Bucket identifies one of the four outcome categories.
type Bucket int

const (
	// Success means the field was found and extracted.
	Success Bucket = iota
	// Warning means the field was expected but missing or malformed.
	Warning
	// Error means the document as a whole could not be parsed.
	Error
	// Skipped means an optional field was absent.
	Skipped
)

// String returns the bucket's name as used in reports.
func (b Bucket) String() string {
	switch b {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("bucket(%d)", int(b))
	}
}

// Tracker is an append-only accumulator. It is not safe for concurrent use;
// each parse creates its own.
type Tracker struct {
	report types.Provenance
}

// NewTracker returns a tracker with all four buckets initialized empty.
func NewTracker() *Tracker {
	return &Tracker{
		report: types.Provenance{
			Successes: []string{},
			Warnings:  []string{},
			Errors:    []string{},
			Skipped:   []string{},
		},
	}
}

// Add appends msg verbatim to the given bucket.
func (t *Tracker) Add(b Bucket, msg string) {
	switch b {
	case Success:
		t.report.Successes = append(t.report.Successes, msg)
	case Warning:
		t.report.Warnings = append(t.report.Warnings, msg)
	case Error:
		t.report.Errors = append(t.report.Errors, msg)
	case Skipped:
		t.report.Skipped = append(t.report.Skipped, msg)
	}
}

// Addf appends a formatted message to the given bucket.
func (t *Tracker) Addf(b Bucket, format string, args ...any) {
	t.Add(b, fmt.Sprintf(format, args...))
}

// Success records a success message.
func (t *Tracker) Success(msg string) { t.Add(Success, msg) }

// Successf records a formatted success message.
func (t *Tracker) Successf(format string, args ...any) { t.Addf(Success, format, args...) }

// Warn records a warning message.
func (t *Tracker) Warn(msg string) { t.Add(Warning, msg) }

// Warnf records a formatted warning message.
func (t *Tracker) Warnf(format string, args ...any) { t.Addf(Warning, format, args...) }

// Error records an error message.
func (t *Tracker) Error(msg string) { t.Add(Error, msg) }

// Errorf records a formatted error message.
func (t *Tracker) Errorf(format string, args ...any) { t.Addf(Error, format, args...) }

// Skip records a skipped message.
func (t *Tracker) Skip(msg string) { t.Add(Skipped, msg) }

// Skipf records a formatted skipped message.
func (t *Tracker) Skipf(format string, args ...any) { t.Addf(Skipped, format, args...) }

// Len returns the number of messages recorded so far.
func (t *Tracker) Len() int {
	return t.report.Total()
}

// Report returns a copy of the accumulated buckets.
func (t *Tracker) Report() types.Provenance {
	return types.Provenance{
		Successes: append([]string{}, t.report.Successes...),
		Warnings:  append([]string{}, t.report.Warnings...),
		Errors:    append([]string{}, t.report.Errors...),
		Skipped:   append([]string{}, t.report.Skipped...),
	}
}
