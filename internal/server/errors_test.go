package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "text", Message: "required"}
	assert.Equal(t, "validation error: text - required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{ID: "abc"}
	assert.Equal(t, "parse result not found: abc", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"storage disabled", ErrStorageDisabled, http.StatusServiceUnavailable},
		{"too large", fmt.Errorf("resume.pdf: %w", ingestion.ErrFileTooLarge), http.StatusRequestEntityTooLarge},
		{"empty", ingestion.ErrEmptyFile, http.StatusBadRequest},
		{"no source", pipeline.ErrNoSource, http.StatusBadRequest},
		{"unsupported", fmt.Errorf("x: %w", &ingestion.UnsupportedTypeError{MIME: "image/png"}), http.StatusBadRequest},
		{"extraction", &ingestion.ExtractionError{Format: ingestion.FormatPDF, Message: "corrupt"}, http.StatusBadRequest},
		{"fetch", fmt.Errorf("%w: timeout", ingestion.ErrHTTPRequestFailed), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
