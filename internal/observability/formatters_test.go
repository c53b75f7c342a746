package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

func TestPrintParseResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ResumeRecord{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Experience: []types.ExperienceEntry{
			{Company: "Acme Corp", Position: "Engineer", StartDate: "January 2020", IsCurrent: true},
			{Company: "Globex", Position: "Developer"},
		},
		Education: []types.EducationEntry{
			{Institution: "Stanford University", Degree: "Bachelor of Science", Field: "Computer Science"},
		},
		Skills: types.Skills{Technical: "Go, Python"},
	}

	p.PrintParseResult("jane.pdf", record)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME: jane.pdf")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "(not found)")
	assert.Contains(t, output, "Acme Corp - Engineer (January 2020 - Present)")
	assert.Contains(t, output, "Globex - Developer")
	assert.NotContains(t, output, "Globex - Developer (")
	assert.Contains(t, output, "Stanford University")
	assert.Contains(t, output, "Go, Python")
}

func TestPrintParseResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParseResult("x", nil)
	assert.Empty(t, buf.String())
}

func TestPrintParseResult_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParseResult("", &types.ResumeRecord{FullName: strings.Repeat("é", 100)})

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintProvenance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProvenance(types.Provenance{
		Successes: []string{"Email found"},
		Warnings:  []string{"Location not found"},
		Skipped:   []string{"Projects section not found"},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSE PROVENANCE")
	assert.Contains(t, output, "1 found, 1 warnings, 0 errors, 1 skipped")
	assert.Contains(t, output, "✓ Email found")
	assert.Contains(t, output, "⚠ Location not found")
	assert.Contains(t, output, "- Projects section not found")
	assert.Less(t, strings.Index(output, "⚠"), strings.Index(output, "✓"))
}

func TestPrintIssues(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintIssues(nil)
		assert.Contains(t, buf.String(), "NO FIELD ISSUES FOUND")
	})

	t.Run("some", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintIssues([]validation.Issue{
			{Field: "email", Rule: "email", Severity: validation.SeverityError, Message: "invalid email address"},
		})
		output := buf.String()
		assert.Contains(t, output, "Found 1 issues")
		assert.Contains(t, output, "email (error)")
		assert.Contains(t, output, "invalid email address")
	})
}

func TestPrintMetadata(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMetadata(&ingestion.Metadata{
		URL:      "https://docs.google.com/document/d/abc/edit",
		Platform: "google_docs",
		MIME:     "application/pdf",
		Format:   ingestion.FormatPDF,
		Pages:    2,
		Size:     2048,
		Chars:    900,
		Rendered: true,
	})
	output := buf.String()

	assert.Contains(t, output, "SOURCE")
	assert.Contains(t, output, "google_docs")
	assert.Contains(t, output, "pdf (application/pdf)")
	assert.Contains(t, output, "Pages:    2")
	assert.Contains(t, output, "Rendered in headless browser")
}

func TestPrintMetadata_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMetadata(nil)
	assert.Empty(t, buf.String())
}
