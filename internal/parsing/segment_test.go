package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentBlocks_Experience(t *testing.T) {
	body := `Acme Corp - Senior Engineer
January 2020 - Present
- Built the billing service - in Go
Reduced costs

Globex | Engineer
2017 - 2019
Maintained pipelines
Initech - Intern
Summer 2016 (Internship)`

	blocks := SegmentBlocks(body, experienceBoundary)

	assert.Equal(t, [][]string{
		{"Acme Corp - Senior Engineer", "January 2020 - Present", "- Built the billing service - in Go", "Reduced costs"},
		{"Globex | Engineer", "2017 - 2019", "Maintained pipelines"},
		{"Initech - Intern", "Summer 2016 (Internship)"},
	}, blocks)
}

func TestSegmentBlocks_Education(t *testing.T) {
	body := `Bachelor of Science - Computer Science
MIT - 2019
GPA: 3.9
Master of Science - Data Science
Stanford University - 2021`

	blocks := SegmentBlocks(body, educationBoundary)

	assert.Len(t, blocks, 2)
	assert.Equal(t, "Bachelor of Science - Computer Science", blocks[0][0])
	assert.Equal(t, []string{"Master of Science - Data Science", "Stanford University - 2021"}, blocks[1])
}

func TestSegmentBlocks_Projects(t *testing.T) {
	body := `Resume Parser
Technologies: Go
A parser for resumes.
Budget Tracker
Link: https://example.com/budget`

	blocks := SegmentBlocks(body, projectBoundary)

	assert.Equal(t, [][]string{
		{"Resume Parser", "Technologies: Go", "A parser for resumes."},
		{"Budget Tracker", "Link: https://example.com/budget"},
	}, blocks)
}

func TestSegmentBlocks_Degenerate(t *testing.T) {
	assert.Empty(t, SegmentBlocks("", experienceBoundary))
	assert.Empty(t, SegmentBlocks("  \n\t\n", educationBoundary))

	// Text without the expected separators collapses into a single block.
	blocks := SegmentBlocks("worked at a few places\nand did things", experienceBoundary)
	assert.Len(t, blocks, 1)
}

func TestLooksLikeEntryHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Acme Corp - Engineer", true},
		{"Acme Corp | Engineer", true},
		{"Acme Corp: Engineer", false},
		{"Acme Corp: Engineer - Remote", true},
		{"- Acme Corp - Engineer", false},
		{"January 2020 - Present", false},
		{"Technologies: Go, Rust", false},
		{"acme corp - engineer", false},
		{"Just a sentence", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeEntryHeader(tt.line))
		})
	}
}
