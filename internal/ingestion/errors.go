package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFile is returned when the input has no bytes.
	ErrEmptyFile = errors.New("file is empty")
	// ErrFileTooLarge is returned when the input exceeds Options.MaxBytes.
	ErrFileTooLarge = errors.New("file too large")
)

// UnsupportedTypeError is returned when the content is not a format the
// extractor can decode.
type UnsupportedTypeError struct {
	Filename string
	MIME     string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("unsupported file type %s for %s: only PDF, DOCX, HTML and plain text are accepted", e.MIME, e.Filename)
	}
	return fmt.Sprintf("unsupported file type %s: only PDF, DOCX, HTML and plain text are accepted", e.MIME)
}

// ExtractionError is returned when a supported format fails to decode.
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
