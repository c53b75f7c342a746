package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that parses uploaded resumes, pasted text and URLs.
Parse results are stored in PostgreSQL when a database URL is configured.`,
	RunE: runServe,
}

var (
	serveConfigPath  string
	servePort        int
	serveDatabaseURL string
	serveMaxUpload   int64
	serveUseBrowser  bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Port to listen on (defaults to PORT env var)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().Int64Var(&serveMaxUpload, "max-upload", config.DefaultMaxUploadBytes, "Upload limit in bytes")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render client-side pages in headless Chrome (requires Chrome)")
	rootCmd.AddCommand(serveCmd)
}

func serveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("max-upload") {
		cfg.MaxUploadBytes = serveMaxUpload
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}

	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(config.Config{})
	if err := merged.Validate(); err != nil {
		return merged, err
	}
	return merged, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		verbosef(cmd, "No DATABASE_URL set; parse results will not be stored")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:           cfg.Port,
		DatabaseURL:    cfg.DatabaseURL,
		MaxUploadBytes: cfg.MaxUploadBytes,
		UseBrowser:     cfg.UseBrowser,
		Logger:         newLoggerAt(cmd, slog.LevelInfo),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
