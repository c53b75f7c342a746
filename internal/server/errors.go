package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
)

// ErrStorageDisabled is returned by the /parses routes when no database is
// configured.
var ErrStorageDisabled = errors.New("parse storage is not configured")

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a missing parse result
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("parse result not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		notFoundErr    *ErrNotFound
		unsupportedErr *ingestion.UnsupportedTypeError
		extractionErr  *ingestion.ExtractionError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.Is(err, ErrStorageDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, ingestion.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ingestion.ErrEmptyFile),
		errors.Is(err, pipeline.ErrNoSource),
		errors.As(err, &unsupportedErr),
		errors.As(err, &extractionErr):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrHTTPRequestFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
