package parsing

import (
	"strings"
	"unicode"
)

// Section header keywords recognized by the locator.
const (
	HeaderSummary        = "PROFESSIONAL SUMMARY"
	HeaderExperience     = "EXPERIENCE"
	HeaderEducation      = "EDUCATION"
	HeaderSkills         = "SKILLS"
	HeaderProjects       = "PROJECTS"
	HeaderCertifications = "CERTIFICATIONS"
)

// otherHeaders are common resume headings that end a section but are not
// extracted.
var otherHeaders = []string{
	"SUMMARY", "OBJECTIVE", "PROFILE", "AWARDS", "HONORS", "ACHIEVEMENTS",
	"PUBLICATIONS", "INTERESTS", "VOLUNTEER", "REFERENCES", "CONTACT",
}

var knownHeaders = append([]string{
	HeaderSummary, HeaderExperience, HeaderEducation,
	HeaderSkills, HeaderProjects, HeaderCertifications,
}, otherHeaders...)

// maxHeadingWords bounds how many words a heading-shaped line may have.
const maxHeadingWords = 4

// LocateSection returns the body between the first line that matches header
// and the next line that ends a section (or end of text).
//
// A line matches when, ignoring case and a trailing colon, it equals header,
// or when it is all-caps and ends with header after at most two qualifier
// words ("WORK EXPERIENCE"). found is false when no line matches. An empty
// body with found == true means the section exists but has no content.
func LocateSection(text, header string) (body string, found bool) {
	lines := splitLines(text)
	start := -1
	for i, line := range lines {
		if isSectionHeader(line, header) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if endsSection(lines, i) {
			end = i
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines[start+1:end], "\n")), true
}

func isSectionHeader(line, header string) bool {
	t := strings.TrimSuffix(strings.TrimSpace(line), ":")
	t = strings.TrimSpace(t)
	if t == "" {
		return false
	}
	if strings.EqualFold(t, header) {
		return true
	}
	if t != strings.ToUpper(t) {
		return false
	}
	words := strings.Fields(t)
	headerWords := strings.Fields(strings.ToUpper(header))
	if len(words) <= len(headerWords) || len(words) > len(headerWords)+2 {
		return false
	}
	tail := words[len(words)-len(headerWords):]
	return strings.Join(tail, " ") == strings.Join(headerWords, " ")
}

// endsSection reports whether lines[i] closes the current section: a known
// header in any case, or an unknown all-caps heading of two or more words
// that does not directly follow an entry header line. Single all-caps words
// such as "MIT" or "IBM" are entry content.
func endsSection(lines []string, i int) bool {
	line := lines[i]
	if isKnownHeader(line) {
		return true
	}
	if !isHeadingLine(line) || len(strings.Fields(line)) < 2 {
		return false
	}
	for j := i - 1; j >= 0; j-- {
		prev := strings.TrimSpace(lines[j])
		if prev == "" {
			continue
		}
		return !looksLikeEntryHeader(prev) && !degreeStartPattern.MatchString(prev)
	}
	return true
}

func isKnownHeader(line string) bool {
	for _, h := range knownHeaders {
		if isSectionHeader(line, h) {
			return true
		}
	}
	return false
}

// isHeadingLine reports whether a line looks like a section heading: short,
// all caps, at least three letters, no digits and no entry separators.
func isHeadingLine(line string) bool {
	t := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	if t == "" || t != strings.ToUpper(t) {
		return false
	}
	if len(strings.Fields(t)) > maxHeadingWords {
		return false
	}
	if strings.ContainsAny(t, "@|—–/") || strings.Contains(t, " - ") || strings.Contains(t, ":") {
		return false
	}
	letters := 0
	for _, r := range t {
		switch {
		case unicode.IsDigit(r):
			return false
		case unicode.IsLetter(r):
			letters++
		}
	}
	return letters >= 3
}

// splitLines normalizes line endings and splits text into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// nonEmptyLines returns the trimmed, non-blank lines of text.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range splitLines(text) {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
