// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintParseResult outputs a human-readable summary of a parsed record.
func (p *Printer) PrintParseResult(source string, record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	field := func(label, value string) {
		if value == "" {
			value = "(not found)"
		}
		sb.WriteString(fmt.Sprintf("%-10s%s\n", label+":", value))
	}
	field("Name", record.FullName)
	field("Email", record.Email)
	field("Phone", record.Phone)
	field("Location", record.Location)
	if record.LinkedInURL != "" {
		field("LinkedIn", record.LinkedInURL)
	}
	if record.WebsiteURL != "" {
		field("Website", record.WebsiteURL)
	}
	sb.WriteString("\n")

	if len(record.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(record.Experience)))
		count := min(len(record.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := record.Experience[i]
			line := fmt.Sprintf("  • %s - %s", e.Company, e.Position)
			if dates := dateRange(e.StartDate, e.EndDate, e.IsCurrent); dates != "" {
				line += " (" + dates + ")"
			}
			sb.WriteString(line + "\n")
		}
		if len(record.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(record.Education)))
		for i := 0; i < min(len(record.Education), 3); i++ {
			e := record.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", e.Institution, strings.TrimSpace(e.Degree+" "+e.Field)))
		}
		sb.WriteString("\n")
	}

	if record.Skills.Technical != "" {
		field("Skills", record.Skills.Technical)
	}
	sb.WriteString(fmt.Sprintf("Projects: %d  Certifications: %d", len(record.Projects), len(record.Certifications)))

	title := "PARSED RESUME"
	if source != "" {
		title += ": " + source
	}
	p.printBox(title, sb.String())
}

func dateRange(start, end string, current bool) string {
	if current && end == "" {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	}
	return start + " - " + end
}

// PrintProvenance outputs the per-bucket parse report.
func (p *Printer) PrintProvenance(prov types.Provenance) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d found, %d warnings, %d errors, %d skipped\n",
		len(prov.Successes), len(prov.Warnings), len(prov.Errors), len(prov.Skipped)))

	section := func(marker string, messages []string) {
		if len(messages) == 0 {
			return
		}
		sb.WriteString("\n")
		for _, m := range messages {
			sb.WriteString(fmt.Sprintf("%s %s\n", marker, m))
		}
	}
	section("✗", prov.Errors)
	section("⚠", prov.Warnings)
	section("✓", prov.Successes)
	section("-", prov.Skipped)

	p.printBox("PARSE PROVENANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIssues outputs field rule issues found in a record.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIssues(issues []validation.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO FIELD ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))
	for i, issue := range issues {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", issue.Field, issue.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", issue.Message))
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FIELD ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetadata outputs where the text came from.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	if meta.Filename != "" {
		sb.WriteString(fmt.Sprintf("File:     %s\n", meta.Filename))
	}
	if meta.URL != "" {
		sb.WriteString(fmt.Sprintf("URL:      %s\n", meta.URL))
		if meta.Platform != "" {
			sb.WriteString(fmt.Sprintf("Platform: %s\n", meta.Platform))
		}
	}
	sb.WriteString(fmt.Sprintf("Format:   %s (%s)\n", meta.Format, meta.MIME))
	if meta.Pages > 0 {
		sb.WriteString(fmt.Sprintf("Pages:    %d\n", meta.Pages))
	}
	sb.WriteString(fmt.Sprintf("Size:     %d bytes, %d chars extracted", meta.Size, meta.Chars))
	if meta.Rendered {
		sb.WriteString("\nRendered in headless browser")
	}

	p.printBox("SOURCE", sb.String())
}
