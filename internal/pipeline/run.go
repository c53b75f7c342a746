// Package pipeline runs a resume source through acquisition, parsing,
// rule checks and optional storage.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// Step names reported in progress events.
const (
	StepAcquire  = "acquire"
	StepParse    = "parse"
	StepValidate = "validate"
	StepStore    = "store"
)

// DefaultConcurrency bounds RunBatch when no limit is given.
const DefaultConcurrency = 4

// ErrNoSource is returned when a Source names nothing to read.
var ErrNoSource = errors.New("source has no path, URL, data or text")

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Source  string `json:"source"`
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Saver persists a parse. *db.DB satisfies it.
type Saver interface {
	SaveParseResult(ctx context.Context, in *db.ParseResultInput) (*db.ParseResult, error)
}

// Source is one resume to parse. Exactly one of Path, URL, Data or Text is
// used, in that order of precedence.
type Source struct {
	Name string
	Path string
	URL  string
	Data []byte
	Text string
}

func (s Source) label() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.Path != "":
		return s.Path
	case s.URL != "":
		return s.URL
	}
	return "input"
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Enhance    bool
	Seed       int64
	UseBrowser bool
	MaxBytes   int64
	Store      Saver
	Logger     *slog.Logger
	OnProgress ProgressCallback
}

// Outcome is the result of running one source.
type Outcome struct {
	ID         *uuid.UUID          `json:"id,omitempty"`
	Source     string              `json:"source"`
	Record     *types.ResumeRecord `json:"record"`
	Provenance types.Provenance    `json:"provenance"`
	Enhanced   bool                `json:"enhanced"`
	Metadata   *ingestion.Metadata `json:"metadata,omitempty"`
	Issues     []validation.Issue  `json:"issues"`

	Text  string        `json:"-"`
	State parsing.State `json:"-"`
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, source, step, format string, args ...any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Source:  source,
			Step:    step,
			Message: fmt.Sprintf(format, args...),
		})
	}
}

// Run acquires, parses and checks src. Acquisition failures are returned as
// errors; an unparseable document is not an error and yields an Outcome
// whose provenance carries the reason. A failed save is logged and leaves
// ID nil.
func Run(ctx context.Context, src Source, opts RunOptions) (*Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	name := src.label()

	emitProgress(&opts, name, StepAcquire, "reading %s", name)
	doc, err := acquire(ctx, src, ingestion.Options{
		MaxBytes:   opts.MaxBytes,
		UseBrowser: opts.UseBrowser,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	emitProgress(&opts, name, StepAcquire, "%d characters extracted", len(doc.Text))

	parser := parsing.NewParser(logger, nil)
	if opts.Enhance {
		parser.Enhancer = enhance.New(opts.Seed, logger)
	}
	emitProgress(&opts, name, StepParse, "parsing")
	res := parser.Parse(doc.Text)
	emitProgress(&opts, name, StepParse, "%d found, %d warnings, %d errors",
		len(res.Provenance.Successes), len(res.Provenance.Warnings), len(res.Provenance.Errors))

	out := &Outcome{
		Source:     name,
		Record:     res.Record,
		Provenance: res.Provenance,
		Enhanced:   res.Enhanced,
		Metadata:   doc.Metadata,
		Issues:     validation.CheckRecord(res.Record),
		Text:       doc.Text,
		State:      res.State,
	}
	if out.Issues == nil {
		out.Issues = []validation.Issue{}
	}
	emitProgress(&opts, name, StepValidate, "%d rule issues", len(out.Issues))

	if opts.Store != nil && res.Err() == nil {
		saved, err := opts.Store.SaveParseResult(ctx, &db.ParseResultInput{
			SourceName: name,
			SourceText: doc.Text,
			Record:     res.Record,
			Provenance: res.Provenance,
			Enhanced:   res.Enhanced,
		})
		if err != nil {
			logger.Warn("failed to store parse result", "source", name, "error", err)
		} else {
			out.ID = &saved.ID
			emitProgress(&opts, name, StepStore, "stored as %s", saved.ID)
		}
	}
	return out, nil
}

func acquire(ctx context.Context, src Source, opts ingestion.Options) (*ingestion.Document, error) {
	switch {
	case src.Path != "":
		return ingestion.IngestFromFile(ctx, src.Path, opts)
	case src.URL != "":
		return ingestion.FromURL(ctx, src.URL, opts)
	case len(src.Data) > 0:
		return ingestion.Extract(ctx, src.Name, src.Data, opts)
	case src.Text != "":
		text := ingestion.CleanText(src.Text)
		if strings.TrimSpace(text) == "" {
			text = parsing.NoTextSentinel
		}
		meta := ingestion.NewMetadata(text, src.Name)
		meta.Format = ingestion.FormatText
		meta.MIME = "text/plain"
		meta.Size = len(src.Text)
		return &ingestion.Document{Text: text, Metadata: meta}, nil
	}
	return nil, ErrNoSource
}

// BatchItem pairs a source with its outcome or error.
type BatchItem struct {
	Source  string
	Outcome *Outcome
	Err     error
}

// RunBatch runs sources concurrently, at most concurrency at a time, and
// returns items in input order. A failing source does not stop the others;
// only context cancellation is returned as an error. opts.OnProgress is
// called from several goroutines.
func RunBatch(ctx context.Context, sources []Source, opts RunOptions, concurrency int) ([]BatchItem, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	items := make([]BatchItem, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := Run(gctx, src, opts)
			items[i] = BatchItem{Source: src.label(), Outcome: out, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return items, err
	}
	return items, nil
}
