package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/ingestion"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <record.json>",
	Short: "Apply the enhancement pass to an existing record",
	Long: `Rewrite weak verbs, fill achievement templates and append relevant keywords to
a record produced by parse. The source resume given with --text drives keyword
selection. The same --seed and input always produce the same output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnhance,
}

var (
	enhanceTextPath string
	enhanceSeed     int64
	enhanceOutput   string
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceTextPath, "text", "t", "", "Resume file the record was parsed from (any supported format)")
	enhanceCmd.Flags().Int64Var(&enhanceSeed, "seed", 0, "Enhancement seed (default time based)")
	enhanceCmd.Flags().StringVarP(&enhanceOutput, "out", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(enhanceCmd)
}

// enhanceOutputDoc is the JSON written by enhance.
type enhanceOutputDoc struct {
	Record      any      `json:"record"`
	Suggestions []string `json:"suggestions"`
	Seed        int64    `json:"seed"`
}

func runEnhance(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := loadRecord(cmd, path)
	if err != nil {
		return err
	}

	var text string
	if enhanceTextPath != "" {
		src, err := ingestion.IngestFromFile(cmd.Context(), enhanceTextPath, ingestion.Options{Logger: newLogger(cmd)})
		if err != nil {
			return fmt.Errorf("failed to read --text: %w", err)
		}
		text = src.Text
	}

	seed := enhanceSeed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	verbosef(cmd, "Enhancement seed: %d", seed)

	suggestions := enhance.Suggestions(text)
	if suggestions == nil {
		suggestions = []string{}
	}
	data, err := marshalJSON(enhanceOutputDoc{
		Record:      enhance.New(seed, newLogger(cmd)).Enhance(doc.Record, text),
		Suggestions: suggestions,
		Seed:        seed,
	})
	if err != nil {
		return err
	}
	return writeOutput(cmd, enhanceOutput, data)
}
