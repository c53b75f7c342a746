package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpace   = regexp.MustCompile(`[ \t\f\v]+`)
	blankRuns    = regexp.MustCompile(`\n\n\n+`)
	invisibles   = strings.NewReplacer("\u00a0", " ", "\u2007", " ", "\u202f", " ", "\u200b", "", "\ufeff", "", "\u00ad", "")
	bulletGlyphs = []string{"\u2022 ", "\u25cf ", "\u25aa ", "\u00b7 ", "* "}
)

// CleanText normalizes extracted text while preserving its line structure:
// line endings become LF, non-breaking and zero-width characters are
// normalized, spaces inside lines are collapsed, leading bullet glyphs become "- ",
// and runs of blank lines are reduced to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = invisibles.Replace(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses its inner whitespace. Section
// detection works on trimmed lines, so leading indentation is dropped.
func cleanLine(line string) string {
	line = strings.TrimSpace(innerSpace.ReplaceAllString(line, " "))
	if line == "" {
		return ""
	}
	for _, glyph := range bulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			return "- " + line[len(glyph):]
		}
	}
	return line
}
