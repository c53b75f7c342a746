package parsing

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/provenance"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"first line", "Jane Doe\njane@example.com", "Jane Doe", true},
		{"skips resume banner", "RESUME\nJohn Smith\nEmail: j@x.io", "John Smith", true},
		{"labelled name wins", "Curriculum\nName: Maria Garcia\n", "Maria Garcia", true},
		{"contact lines rejected", "jane@example.com\n+1 555 123 4567\nPhone: 555", "", false},
		{"too short", "Jo\n\n", "", false},
		{"only first three lines scanned", "a@b.co\n+1\nCV\nJane Doe", "", false},
		{"section header rejected", "EXPERIENCE\nJane Doe\nAcme - Engineer", "Jane Doe", true},
		{"title-case header rejected", "Certifications\nJohn Smith", "John Smith", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractName(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractIdentity_Phone(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Call (555) 123-4567 today", "(555) 123-4567"},
		{"+1 555.123.4567", "+1 555.123.4567"},
		{"555-123-4567", "555-123-4567"},
		{"Phone: +44 20 7946 0958", "+44 20 7946 0958"},
		{"+44 20 7946 0958", "+44 20 7946 0958"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var r types.ResumeRecord
			extractIdentity(tt.text, &r, provenance.NewTracker())
			assert.Equal(t, tt.want, r.Phone)
		})
	}
}

func TestExtractIdentity_DateRangeIsNotAPhone(t *testing.T) {
	for _, text := range []string{
		"Jane Doe\nAcme - Engineer\n2019 - 2021",
		"Jane Doe\nStanford University\n2012 2016",
	} {
		t.Run(text, func(t *testing.T) {
			var r types.ResumeRecord
			tr := provenance.NewTracker()
			extractIdentity(text, &r, tr)
			assert.Empty(t, r.Phone)
			assert.Contains(t, tr.Report().Warnings, "No phone number found")
		})
	}
}

func TestLooksLikeYears(t *testing.T) {
	assert.True(t, looksLikeYears("2019 - 2021"))
	assert.True(t, looksLikeYears("2012 2016"))
	assert.False(t, looksLikeYears("+44 20 7946 0958"))
	assert.False(t, looksLikeYears("0800 123 4567"))
}

func TestExtractIdentity_Location(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Austin, TX 78701", "Austin, TX"},
		{"x | New York, NY | y", "New York, NY"},
		{"Location: Remote (EU)", "Remote (EU)"},
		{"nowhere in particular", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var r types.ResumeRecord
			extractIdentity(tt.text, &r, provenance.NewTracker())
			assert.Equal(t, tt.want, r.Location)
		})
	}
}

func TestExtractIdentity_Links(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantLinked  string
		wantWebsite string
	}{
		{"bare linkedin path", "Jane\nlinkedin.com/in/jdoe", "https://www.linkedin.com/in/jdoe", ""},
		{"full linkedin url", "Jane\nhttps://www.linkedin.com/in/jdoe/", "https://www.linkedin.com/in/jdoe/", ""},
		{"labelled linkedin", "Jane\nLinkedIn: www.linkedin.com/in/jdoe", "https://www.linkedin.com/in/jdoe", ""},
		{"labelled website", "Jane\nWebsite: janedoe.dev", "", "https://www.janedoe.dev"},
		{"first non-linkedin url", "Jane\nhttps://linkedin.com/in/j | see https://jane.dev, thanks", "https://linkedin.com/in/j", "https://jane.dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r types.ResumeRecord
			extractIdentity(tt.text, &r, provenance.NewTracker())
			assert.Equal(t, tt.wantLinked, r.LinkedInURL)
			assert.Equal(t, tt.wantWebsite, r.WebsiteURL)
		})
	}
}

func TestExtractIdentity_ProvenancePerField(t *testing.T) {
	tr := provenance.NewTracker()
	var r types.ResumeRecord

	extractIdentity("Jane Doe\njane@example.com\nPROFESSIONAL SUMMARY\nToo short.\n", &r, tr)

	report := tr.Report()
	// name, email, phone, location, linkedin, website, summary
	assert.Equal(t, 7, report.Total())
	assert.Equal(t, []string{`Name extracted: "Jane Doe"`, `Email extracted: "jane@example.com"`}, report.Successes)
	assert.Contains(t, report.Warnings, "Professional summary found but too short")
	assert.Contains(t, report.Warnings, "No phone number found")
	assert.ElementsMatch(t, []string{"No LinkedIn profile found", "No personal website found"}, report.Skipped)
	assert.Empty(t, r.Summary)
}

func TestExtractIdentity_Idempotent(t *testing.T) {
	text := loadFixture(t, "template_resume.txt")

	var first, second types.ResumeRecord
	extractIdentity(text, &first, provenance.NewTracker())
	extractIdentity(text, &second, provenance.NewTracker())

	require.NotEmpty(t, first.Email)
	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, first.Phone, second.Phone)
	assert.Equal(t, first.Location, second.Location)
	assert.Equal(t, first, second)
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "", normalizeURL("  "))
	assert.Equal(t, "https://www.example.com", normalizeURL("example.com"))
	assert.Equal(t, "https://www.example.com", normalizeURL("www.example.com"))
	assert.Equal(t, "http://example.com", normalizeURL("http://example.com"))
}
