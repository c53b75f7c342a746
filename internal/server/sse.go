package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/pipeline"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer and sends the stream headers.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	// Streaming needs a flushable writer
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	// SSE format: event: <type>\ndata: <json>\n\n
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an error event carrying the status the plain endpoint
// would have returned.
func (s *SSEWriter) WriteError(status int, message string) {
	s.WriteEvent("error", map[string]any{"status": status, "error": message}) //nolint:errcheck
}

// WriteResult sends the final outcome.
func (s *SSEWriter) WriteResult(out *pipeline.Outcome) {
	s.WriteEvent("result", out) //nolint:errcheck
}
