package enhance

import (
	"regexp"
	"strings"
)

// strongVerbs are leading words that already read as action verbs.
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "engineered": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "optimized": true, "reduced": true, "scaled": true,
	"shipped": true, "transformed": true,
}

var digitPattern = regexp.MustCompile(`\d`)

// StyleCheck is the outcome of the line-level style heuristics.
type StyleCheck struct {
	StrongVerb bool
	Quantified bool
}

// OK reports whether the line passes every check.
func (c StyleCheck) OK() bool {
	return c.StrongVerb && c.Quantified
}

// CheckStyle inspects one description line.
func CheckStyle(line string) StyleCheck {
	return StyleCheck{
		StrongVerb: startsWithStrongVerb(strings.ToLower(strings.TrimSpace(line))),
		Quantified: digitPattern.MatchString(line) || strings.Contains(line, "%"),
	}
}

func startsWithStrongVerb(lower string) bool {
	words := strings.Fields(strings.TrimLeft(lower, "-*•· "))
	if len(words) == 0 {
		return false
	}
	word := strings.TrimRight(words[0], ".,!?;:")
	if strongVerbs[word] {
		return true
	}
	// past-tense verbs ending in -ed are usually action verbs
	return strings.HasSuffix(word, "ed") && len(word) > 3
}
