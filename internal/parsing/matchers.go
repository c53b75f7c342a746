package parsing

import (
	"regexp"
	"strings"
)

// Match is the structured result of a successful matcher.
// Text is the whole matched span; Groups holds the capture groups (without the
// whole match), trimmed of surrounding whitespace.
type Match struct {
	Text   string
	Groups []string
}

// Group returns capture group i (0-based), or "" when absent.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Matcher inspects a string and returns a match when it recognizes something.
type Matcher func(s string) (Match, bool)

// FirstMatch evaluates matchers in order and returns the first hit.
func FirstMatch(s string, matchers ...Matcher) (Match, bool) {
	for _, m := range matchers {
		if res, ok := m(s); ok {
			return res, true
		}
	}
	return Match{}, false
}

// Regex builds a matcher around a compiled pattern.
func Regex(re *regexp.Regexp) Matcher {
	return func(s string) (Match, bool) {
		sub := re.FindStringSubmatch(s)
		if sub == nil {
			return Match{}, false
		}
		groups := make([]string, 0, len(sub)-1)
		for _, g := range sub[1:] {
			groups = append(groups, strings.TrimSpace(g))
		}
		return Match{Text: strings.TrimSpace(sub[0]), Groups: groups}, true
	}
}

// Labelled matches a "Label: value" line anywhere in s (case-insensitive) and
// returns the value as both Text and Groups[0]. Empty values do not match.
func Labelled(labels ...string) Matcher {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	re := regexp.MustCompile(`(?im)^[ \t]*(?:` + strings.Join(quoted, "|") + `)[ \t]*:[ \t]*(.+?)[ \t]*$`)
	return func(s string) (Match, bool) {
		sub := re.FindStringSubmatch(s)
		if sub == nil || strings.TrimSpace(sub[1]) == "" {
			return Match{}, false
		}
		value := strings.TrimSpace(sub[1])
		return Match{Text: value, Groups: []string{value}}, true
	}
}

// Where wraps a matcher with an acceptance predicate on its result.
func Where(m Matcher, accept func(Match) bool) Matcher {
	return func(s string) (Match, bool) {
		res, ok := m(s)
		if !ok || !accept(res) {
			return Match{}, false
		}
		return res, true
	}
}
