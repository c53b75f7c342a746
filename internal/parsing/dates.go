package parsing

import (
	"regexp"
	"strings"
)

// DateRange is a start/end pair as written in the source text.
type DateRange struct {
	Start     string
	End       string
	IsCurrent bool
}

const openEndedTokens = `Present|Current|Ongoing`

// dateRangeMatchers are tried in order; the first hit wins.
var dateRangeMatchers = []Matcher{
	// "January 2020 - March 2022", "Jan. 2020 – Present"
	Regex(regexp.MustCompile(`(?i)([A-Za-z]+\.?\s+\d{4})\s*(?:-|–|—|to)\s*([A-Za-z]+\.?\s+\d{4}|` + openEndedTokens + `)`)),
	// "01/2020 - 03/2022"
	Regex(regexp.MustCompile(`(?i)(\d{1,2}/\d{4})\s*(?:-|–|—|to)\s*(\d{1,2}/\d{4}|` + openEndedTokens + `)`)),
	// "2019 - 2021", "2020 - Present"
	Regex(regexp.MustCompile(`(?i)(\d{4})\s*(?:-|–|—|to)\s*(\d{4}|` + openEndedTokens + `)`)),
	// "March 2021 (Ongoing)"
	Regex(regexp.MustCompile(`(?i)([A-Za-z]+\s+\d{4})\s*\(([^)]+)\)`)),
}

// matchDateRange extracts the first recognizable date range from s.
func matchDateRange(s string) (DateRange, bool) {
	m, ok := FirstMatch(s, dateRangeMatchers...)
	if !ok {
		return DateRange{}, false
	}
	dr := DateRange{Start: m.Group(0), End: m.Group(1)}
	dr.IsCurrent = isOpenEnded(dr.End)
	return dr, true
}

// isOpenEnded reports whether an end token denotes an ongoing period.
func isOpenEnded(end string) bool {
	lower := strings.ToLower(end)
	return strings.Contains(lower, "present") ||
		strings.Contains(lower, "current") ||
		strings.Contains(lower, "ongoing")
}
