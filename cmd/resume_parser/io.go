package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

// newLogger logs warnings to stderr, or everything with --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	return newLoggerAt(cmd, slog.LevelWarn)
}

func newLoggerAt(cmd *cobra.Command, level slog.Level) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// verbosef prints a [VERBOSE] line to stderr when --verbose is set.
func verbosef(cmd *cobra.Command, format string, args ...any) {
	if verbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "[VERBOSE] "+format+"\n", args...)
	}
}

// syncWriter serializes writes from concurrent parses.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	verbosef(cmd, "Wrote %s (%d bytes)", path, len(data))
	return nil
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// recordDocument is a record file as written by parse, or a bare record.
type recordDocument struct {
	Raw        []byte
	Record     *types.ResumeRecord
	Provenance types.Provenance
}

// loadRecord reads a record JSON file. Files holding parse output keep their
// provenance; Raw is always the record object alone.
func loadRecord(cmd *cobra.Command, path string) (*recordDocument, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Record     json.RawMessage  `json:"record"`
		Provenance types.Provenance `json:"provenance"`
	}
	doc := &recordDocument{Raw: data}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", displayName(path), err)
	}
	if len(bytes.TrimSpace(envelope.Record)) > 0 && !bytes.Equal(bytes.TrimSpace(envelope.Record), []byte("null")) {
		doc.Raw = envelope.Record
		doc.Provenance = envelope.Provenance
	}

	doc.Record = &types.ResumeRecord{}
	if err := json.Unmarshal(doc.Raw, doc.Record); err != nil {
		return nil, fmt.Errorf("invalid record in %s: %w", displayName(path), err)
	}
	return doc, nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
