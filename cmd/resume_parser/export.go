package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <parse.json>",
	Short: "Export a parsed record and its provenance to an XLSX workbook",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Output .xlsx file (required)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := loadRecord(cmd, path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, doc.Record, doc.Provenance); err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	if err := writeOutput(cmd, exportOutput, buf.Bytes()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", displayName(path), exportOutput)
	return nil
}
