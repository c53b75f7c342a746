package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/report"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse resumes into structured records",
	Long: `Extract text from one or more resume files (PDF, DOCX, HTML, plain text), a URL,
or stdin, and parse it into a structured record with a provenance report.

Several files are parsed concurrently and written as a JSON array. A single
input is written as one JSON object, or as an XLSX workbook with --format xlsx.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runParse,
}

var (
	parseConfigPath  string
	parseURL         string
	parseOutput      string
	parseFormat      string
	parseEnhance     bool
	parseSeed        int64
	parseUseBrowser  bool
	parseStore       bool
	parseDatabaseURL string
	parseMaxBytes    int64
	parseConcurrency int
)

func init() {
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCmd.Flags().StringVarP(&parseURL, "url", "u", "", "URL of an online resume (mutually exclusive with file arguments)")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Output file (default stdout)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Output format: json or xlsx (default json)")
	parseCmd.Flags().BoolVar(&parseEnhance, "enhance", false, "Apply the enhancement pass to the parsed record")
	parseCmd.Flags().Int64Var(&parseSeed, "seed", 0, "Enhancement seed (default time based)")
	parseCmd.Flags().BoolVar(&parseUseBrowser, "use-browser", false, "Render client-side pages in headless Chrome when the plain fetch yields little text")
	parseCmd.Flags().BoolVar(&parseStore, "store", false, "Save results to PostgreSQL")
	parseCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	parseCmd.Flags().Int64Var(&parseMaxBytes, "max-bytes", 0, "Reject inputs larger than this many bytes (default 10 MiB)")
	parseCmd.Flags().IntVar(&parseConcurrency, "concurrency", pipeline.DefaultConcurrency, "Maximum files parsed at once")

	rootCmd.AddCommand(parseCmd)
}

// batchEntry is one element of the multi-file JSON output.
type batchEntry struct {
	*pipeline.Outcome
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadParseConfig(cmd, args)
	if err != nil {
		return err
	}
	sources, err := parseSources(cmd, cfg, args)
	if err != nil {
		return err
	}
	if cfg.Format == config.FormatXLSX {
		if len(sources) != 1 {
			return fmt.Errorf("--format xlsx supports a single input, got %d", len(sources))
		}
		if cfg.Output == "" || cfg.Output == "-" {
			return fmt.Errorf("--format xlsx requires --out")
		}
	}

	logger := newLogger(cmd)
	progress := &syncWriter{w: cmd.ErrOrStderr()}
	opts := pipeline.RunOptions{
		Enhance:    cfg.Enhance,
		Seed:       cfg.Seed,
		UseBrowser: cfg.UseBrowser,
		MaxBytes:   cfg.MaxUploadBytes,
		Logger:     logger,
	}
	if opts.Enhance && !cmd.Flags().Changed("seed") && cfg.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
		verbosef(cmd, "Enhancement seed: %d", opts.Seed)
	}
	if verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(progress, "[VERBOSE] %s: %s: %s\n", e.Source, e.Step, e.Message)
		}
	}

	if parseStore {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--store requires --db-url or DATABASE_URL")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare database: %w", err)
		}
		opts.Store = database
		verbosef(cmd, "Connected to database")
	}

	if len(sources) == 1 {
		out, err := pipeline.Run(ctx, sources[0], opts)
		if err != nil {
			return err
		}
		printOutcome(cmd, out)
		if err := writeParseOutput(cmd, cfg, out); err != nil {
			return err
		}
		if out.State == parsing.StateUnparseable {
			return fmt.Errorf("%s: %w", out.Source, parsing.ErrUnparseable)
		}
		return nil
	}

	items, err := pipeline.RunBatch(ctx, sources, opts, parseConcurrency)
	if err != nil {
		return err
	}
	entries := make([]batchEntry, len(items))
	failed := 0
	for i, item := range items {
		entries[i] = batchEntry{Outcome: item.Outcome, Source: item.Source}
		if item.Err != nil {
			entries[i].Error = item.Err.Error()
			failed++
			continue
		}
		printOutcome(cmd, item.Outcome)
	}
	data, err := marshalJSON(entries)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, cfg.Output, data); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(items))
	}
	return nil
}

// loadParseConfig merges the config file, flags, environment and defaults.
func loadParseConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	var cfg config.Config
	if parseConfigPath != "" {
		loaded, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		verbosef(cmd, "Loaded config from: %s", parseConfigPath)
	}

	// Only override if the flag was explicitly set
	if len(args) > 0 || cmd.Flags().Changed("url") {
		cfg.Input = ""
	}
	if cmd.Flags().Changed("url") {
		cfg.URL = parseURL
	}
	if len(args) > 0 {
		cfg.URL = ""
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = parseOutput
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = parseFormat
	}
	if cmd.Flags().Changed("enhance") {
		cfg.Enhance = parseEnhance
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = parseSeed
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = parseUseBrowser
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = parseDatabaseURL
	}
	if cmd.Flags().Changed("max-bytes") {
		cfg.MaxUploadBytes = parseMaxBytes
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	verbose = verbose || cfg.Verbose

	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

// parseSources turns arguments, --url or the config input into sources.
// With none of them, stdin is read.
func parseSources(cmd *cobra.Command, cfg config.Config, args []string) ([]pipeline.Source, error) {
	if len(args) > 0 && parseURL != "" && cmd.Flags().Changed("url") {
		return nil, fmt.Errorf("file arguments and --url are mutually exclusive; provide only one")
	}

	switch {
	case len(args) > 0:
		sources := make([]pipeline.Source, 0, len(args))
		for _, arg := range args {
			if arg == "-" {
				src, err := stdinSource(cmd)
				if err != nil {
					return nil, err
				}
				sources = append(sources, src)
				continue
			}
			sources = append(sources, pipeline.Source{Path: arg})
		}
		return sources, nil
	case cfg.URL != "":
		return []pipeline.Source{{URL: cfg.URL}}, nil
	case cfg.Input != "":
		return []pipeline.Source{{Path: cfg.Input}}, nil
	}

	src, err := stdinSource(cmd)
	if err != nil {
		return nil, err
	}
	return []pipeline.Source{src}, nil
}

func stdinSource(cmd *cobra.Command) (pipeline.Source, error) {
	data, err := readInput(cmd, "-")
	if err != nil {
		return pipeline.Source{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return pipeline.Source{}, errors.New("no input: pass resume files, --url, or pipe a resume on stdin")
	}
	return pipeline.Source{Name: "stdin", Data: data}, nil
}

func writeParseOutput(cmd *cobra.Command, cfg config.Config, out *pipeline.Outcome) error {
	if cfg.Format == config.FormatXLSX {
		var buf bytes.Buffer
		if err := report.WriteWorkbook(&buf, out.Record, out.Provenance); err != nil {
			return err
		}
		return writeOutput(cmd, cfg.Output, buf.Bytes())
	}

	data, err := marshalJSON(out)
	if err != nil {
		return err
	}
	return writeOutput(cmd, cfg.Output, data)
}

func printOutcome(cmd *cobra.Command, out *pipeline.Outcome) {
	if !verbose || out == nil {
		return
	}
	printer := observability.NewPrinter(cmd.ErrOrStderr())
	printer.PrintMetadata(out.Metadata)
	printer.PrintParseResult(out.Source, out.Record)
	printer.PrintProvenance(out.Provenance)
	printer.PrintIssues(out.Issues)
}
