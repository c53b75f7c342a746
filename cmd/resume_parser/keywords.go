package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/keywords"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [file]",
	Short: "Print ATS keyword suggestions for a resume or an industry",
	Long: `Print the catalog keywords relevant to a resume (any supported file format, or
stdin), or the keyword list of an industry with --industry. --suggest adds the
improvement hints the enhancement pass is based on.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeywords,
}

var (
	keywordsIndustry string
	keywordsSuggest  bool
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsIndustry, "industry", "i", "", "Industry name ("+strings.Join(keywords.Industries(), ", ")+")")
	keywordsCmd.Flags().BoolVar(&keywordsSuggest, "suggest", false, "Also print improvement suggestions")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if keywordsIndustry != "" {
		for _, k := range keywords.ForIndustry(keywordsIndustry) {
			_, _ = fmt.Fprintln(out, k)
		}
		return nil
	}

	var text string
	if len(args) == 1 && args[0] != "-" {
		doc, err := ingestion.IngestFromFile(cmd.Context(), args[0], ingestion.Options{Logger: newLogger(cmd)})
		if err != nil {
			return err
		}
		text = doc.Text
	} else {
		data, err := readInput(cmd, "-")
		if err != nil {
			return err
		}
		text = ingestion.CleanText(string(data))
	}

	for _, k := range keywords.Relevant(text) {
		_, _ = fmt.Fprintln(out, k)
	}
	if keywordsSuggest {
		suggestions := enhance.Suggestions(text)
		if len(suggestions) > 0 {
			_, _ = fmt.Fprintln(out, "\nSuggestions:")
		}
		for _, s := range suggestions {
			_, _ = fmt.Fprintf(out, "  - %s\n", s)
		}
	}
	return nil
}
