package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/validation"
	recordschema "github.com/jonathan/resume-builder/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <record.json>",
	Short: "Validate a record against the JSON Schema and the field rules",
	Long: `Validate a resume record, or the output of parse, against the record JSON Schema
(built in unless --schema is given) and the field rules (email, phone, URL and
name formats, length limits). Warnings are reported but only schema violations
and error-severity rules fail the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "Path to a JSON Schema file (default built-in record schema)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := loadRecord(cmd, path)
	if err != nil {
		return err
	}

	schemaContent := recordschema.ResumeRecord
	if validateSchemaPath != "" {
		data, err := readInput(cmd, validateSchemaPath)
		if err != nil {
			return err
		}
		schemaContent = string(data)
	}

	out := cmd.OutOrStdout()
	failed := false

	if err := schemas.ValidateJSONString(schemaContent, string(doc.Raw)); err != nil {
		var verr *schemas.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		failed = true
		_, _ = fmt.Fprintf(out, "Schema validation failed:\n")
		for _, fe := range verr.Errors {
			_, _ = fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
		}
	}

	issues := validation.CheckRecord(doc.Record)
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintIssues(issues)
	}
	for _, issue := range issues {
		_, _ = fmt.Fprintf(out, "%s\n", issue)
		if issue.Severity == validation.SeverityError {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("validation failed for %s", displayName(path))
	}
	_, _ = fmt.Fprintf(out, "Validation passed: %s\n", displayName(path))
	return nil
}
