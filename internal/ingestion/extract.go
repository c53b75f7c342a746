// Package ingestion acquires resume text from uploaded files and URLs.
package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/parsing"
)

// DefaultMaxBytes is the default upload limit.
const DefaultMaxBytes = 10 << 20

// Options configures extraction.
type Options struct {
	// MaxBytes rejects larger inputs. Zero means DefaultMaxBytes.
	MaxBytes int64
	// UseBrowser renders HTML pages in headless Chrome when the plain fetch
	// yields too little text. Only FromURL honors it.
	UseBrowser bool
	Logger     *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Document is cleaned resume text ready for parsing.
type Document struct {
	Text     string    `json:"text"`
	Metadata *Metadata `json:"metadata"`
}

// Extract decodes data into cleaned text. The format is sniffed from the
// content; filename is used for its extension only when sniffing is
// inconclusive. A decodable document with no text yields
// parsing.NoTextSentinel rather than an error.
func Extract(ctx context.Context, filename string, data []byte, opts Options) (*Document, error) {
	opts = opts.withDefaults()
	if err := checkSize(data, opts.MaxBytes); err != nil {
		return nil, err
	}

	format, mime, err := DetectFormat(filename, data)
	if err != nil {
		return nil, err
	}
	return decode(ctx, filename, data, format, mime, fetch.PlatformUnknown, opts)
}

// IngestFromFile reads path from disk and extracts it.
func IngestFromFile(ctx context.Context, path string, opts Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Extract(ctx, filepath.Base(path), data, opts)
}

func checkSize(data []byte, limit int64) error {
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if int64(len(data)) > limit {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrFileTooLarge, len(data), limit)
	}
	return nil
}

func decode(ctx context.Context, filename string, data []byte, format Format, mime string, platform fetch.Platform, opts Options) (*Document, error) {
	logger := opts.Logger
	var (
		raw   string
		pages int
		err   error
	)
	switch format {
	case FormatPDF:
		raw, pages, err = extractPDF(ctx, data)
	case FormatDOCX:
		raw, err = extractDOCX(data)
	case FormatHTML:
		raw, err = extractHTML(data, platform)
	case FormatText:
		raw = string(data)
	default:
		err = &UnsupportedTypeError{Filename: filename, MIME: mime}
	}
	if err != nil {
		logger.Warn("text extraction failed", "filename", filename, "format", format, "error", err)
		return nil, err
	}

	text := CleanText(raw)
	if text == "" {
		logger.Warn("document has no selectable text", "filename", filename, "format", format)
		text = parsing.NoTextSentinel
	}

	meta := NewMetadata(text, filename)
	meta.MIME = mime
	meta.Format = format
	meta.Size = len(data)
	meta.Pages = pages

	logger.Debug("text extracted",
		"filename", filename,
		"format", format,
		"bytes", meta.Size,
		"pages", pages,
		"chars", meta.Chars)
	return &Document{Text: text, Metadata: meta}, nil
}
