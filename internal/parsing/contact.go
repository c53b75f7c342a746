package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/provenance"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	nameScanLines    = 3
	websiteScanLines = 10
	minSummaryLength = 20
)

// nameRejectTokens disqualify a line from being the candidate's name.
var nameRejectTokens = []string{"@", "+", "Phone", "Email", "RESUME", "CV"}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	emailMatchers = []Matcher{
		Where(Labelled("Email", "E-mail"), func(m Match) bool { return emailPattern.MatchString(m.Text) }),
		Regex(emailPattern),
	}

	phoneMatchers = []Matcher{
		Labelled("Phone", "Mobile", "Tel"),
		// (555) 123-4567, +1 555.123.4567
		Regex(regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)),
		// 555-123-4567
		Regex(regexp.MustCompile(`(\d{3})[-.\s]?(\d{3})[-.\s]?(\d{4})`)),
		// +44 20 7946 0958
		Where(Regex(regexp.MustCompile(`\+?[1-9][\d\s\-()]{7,20}`)), func(m Match) bool { return !looksLikeYears(m.Text) }),
	}

	locationMatchers = []Matcher{
		Labelled("Location", "Address"),
		Regex(regexp.MustCompile(`([A-Z][a-z]+(?:[ \t,]+[A-Z][a-z]+)*),[ \t]*([A-Z]{2})\b`)),
	}

	digitRunPattern = regexp.MustCompile(`\d+`)

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_\-%]+/?`)

	linkedinMatchers = []Matcher{
		Where(Labelled("LinkedIn"), func(m Match) bool { return strings.Contains(strings.ToLower(m.Text), "linkedin.com") }),
		Regex(linkedinPattern),
	}

	websiteMatchers = []Matcher{
		Labelled("Website", "Portfolio", "Homepage"),
	}
)

// extractIdentity fills the top-level scalar fields of record from the whole
// text. Every field is attempted and records exactly one provenance entry.
func extractIdentity(text string, record *types.ResumeRecord, tr *provenance.Tracker) {
	if name, ok := extractName(text); ok {
		record.FullName = name
		tr.Successf("Name extracted: %q", name)
	} else {
		tr.Warn("Could not extract name from the first lines")
	}

	if m, ok := FirstMatch(text, emailMatchers...); ok {
		record.Email = emailPattern.FindString(m.Text)
		tr.Successf("Email extracted: %q", record.Email)
	} else {
		tr.Warn("No email address found")
	}

	if m, ok := FirstMatch(text, phoneMatchers...); ok {
		record.Phone = m.Text
		tr.Successf("Phone extracted: %q", record.Phone)
	} else {
		tr.Warn("No phone number found")
	}

	if m, ok := FirstMatch(text, locationMatchers...); ok {
		record.Location = m.Text
		tr.Successf("Location extracted: %q", record.Location)
	} else {
		tr.Warn("No location found")
	}

	if m, ok := FirstMatch(text, linkedinMatchers...); ok {
		record.LinkedInURL = normalizeURL(linkedinPattern.FindString(m.Text))
		if record.LinkedInURL == "" {
			record.LinkedInURL = normalizeURL(m.Text)
		}
		tr.Successf("LinkedIn URL extracted: %q", record.LinkedInURL)
	} else {
		tr.Skip("No LinkedIn profile found")
	}

	if website, ok := extractWebsite(text); ok {
		record.WebsiteURL = website
		tr.Successf("Website extracted: %q", website)
	} else {
		tr.Skip("No personal website found")
	}

	extractSummary(text, record, tr)
}

// extractName applies the labelled form first, then scans the first few
// non-empty lines for one that reads like a name.
func extractName(text string) (string, bool) {
	if m, ok := Labelled("Name", "Full Name")(text); ok {
		return m.Text, true
	}
	lines := nonEmptyLines(text)
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}
	for _, line := range lines {
		if isNameCandidate(line) {
			return line, true
		}
	}
	return "", false
}

func isNameCandidate(line string) bool {
	if isKnownHeader(line) {
		return false
	}
	for _, tok := range nameRejectTokens {
		if strings.Contains(line, tok) {
			return false
		}
	}
	return len(line) > 2 && len(line) < 50
}

// looksLikeYears reports whether a digit run is a date range or a list of
// years rather than a phone number.
func looksLikeYears(s string) bool {
	if _, ok := matchDateRange(s); ok {
		return true
	}
	groups := digitRunPattern.FindAllString(s, -1)
	for _, g := range groups {
		if !yearPattern.MatchString(g) || len(g) != 4 {
			return false
		}
	}
	return len(groups) > 0
}

// extractWebsite looks for a labelled website, then for the first non-LinkedIn
// URL near the top of the document.
func extractWebsite(text string) (string, bool) {
	if m, ok := FirstMatch(text, websiteMatchers...); ok {
		return normalizeURL(m.Text), true
	}
	lines := nonEmptyLines(text)
	if len(lines) > websiteScanLines {
		lines = lines[:websiteScanLines]
	}
	for _, line := range lines {
		for _, u := range urlPattern.FindAllString(line, -1) {
			if !strings.Contains(strings.ToLower(u), "linkedin.com") {
				return strings.TrimRight(u, ".,;)"), true
			}
		}
	}
	return "", false
}

// extractSummary takes the PROFESSIONAL SUMMARY body, falling back to a bare
// SUMMARY heading, and keeps it only when it is long enough to be meaningful.
func extractSummary(text string, record *types.ResumeRecord, tr *provenance.Tracker) {
	body, found := LocateSection(text, HeaderSummary)
	if !found {
		body, found = LocateSection(text, "SUMMARY")
	}
	switch {
	case !found:
		tr.Warn("Professional summary section not found")
	case len(body) > minSummaryLength:
		record.Summary = body
		tr.Successf("Professional summary extracted (%d characters)", len(body))
	default:
		tr.Warn("Professional summary found but too short")
	}
}

// normalizeURL prefixes https://www. when the value is not already a full URL.
func normalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	lower := strings.ToLower(u)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return u
	}
	if strings.HasPrefix(lower, "www.") {
		return "https://" + u
	}
	return "https://www." + u
}
