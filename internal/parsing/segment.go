package parsing

import (
	"regexp"
	"strings"
)

const maxProjectNameWords = 8

// BoundaryFunc reports whether lines[i] opens a new entry, given the lines
// already collected into the current block.
type BoundaryFunc func(lines []string, i int, current []string) bool

var (
	// entryHeaderPattern: a capitalized phrase followed by a colon-like
	// separator ("Acme Corp - Engineer", "Acme Corp | Engineer", "Acme: Engineer").
	entryHeaderPattern = regexp.MustCompile(`^[A-Z0-9][^:|]*?(?:\s[-–—|]\s|:\s*\S)`)

	// labelPattern matches "Label: value" lines used inside project entries.
	labelPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z /&]{0,24}:\s*`)

	degreeStartPattern = regexp.MustCompile(`(?i)^(?:Bachelor|Master|Diploma|PhD|Ph\.D\.?|Doctor|Associate|B\.?Tech|M\.?Tech|B\.?Sc|M\.?Sc|B\.?S\.?|M\.?S\.?|B\.?A\.?|M\.?A\.?|MBA|B\.?E\.?|M\.?E\.?)\b`)

	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// SegmentBlocks splits a section body into per-entry blocks of trimmed,
// non-blank lines. A block is opened by the first line and by every line for
// which isBoundary returns true. Blank-only blocks never appear in the output.
func SegmentBlocks(body string, isBoundary BoundaryFunc) [][]string {
	lines := nonEmptyLines(body)
	var blocks [][]string
	var current []string
	for i, line := range lines {
		if len(current) > 0 && isBoundary(lines, i, current) {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") ||
		strings.HasPrefix(line, "•") || strings.HasPrefix(line, "·")
}

// looksLikeEntryHeader applies the shared header heuristic: capitalized,
// separator-bearing, not a bullet, not a date range, not a labelled field.
func looksLikeEntryHeader(line string) bool {
	if isBullet(line) || !entryHeaderPattern.MatchString(line) {
		return false
	}
	if _, ok := matchDateRange(line); ok {
		return false
	}
	return !labelPattern.MatchString(line) || strings.Contains(line, " - ")
}

// experienceBoundary opens a new job when a header-shaped line is followed by
// a line carrying a year. The second line of a block never opens a new one.
func experienceBoundary(lines []string, i int, current []string) bool {
	if len(current) < 2 || !looksLikeEntryHeader(lines[i]) {
		return false
	}
	return i+1 < len(lines) && yearPattern.MatchString(lines[i+1])
}

// educationBoundary opens a new degree at a degree keyword, or at a
// header-shaped line once the current block has its institution line.
func educationBoundary(lines []string, i int, current []string) bool {
	line := lines[i]
	if degreeStartPattern.MatchString(line) {
		return true
	}
	return len(current) >= 2 && looksLikeEntryHeader(line) && !yearPattern.MatchString(line)
}

// projectBoundary opens a new project at a short, unlabelled, non-link line
// once the current block has at least one labelled line.
func projectBoundary(lines []string, i int, current []string) bool {
	line := lines[i]
	if isBullet(line) || labelPattern.MatchString(line) || strings.Contains(line, "://") {
		return false
	}
	if len(strings.Fields(line)) > maxProjectNameWords || strings.HasSuffix(line, ".") {
		return false
	}
	for _, l := range current[1:] {
		if labelPattern.MatchString(l) {
			return true
		}
	}
	return false
}
