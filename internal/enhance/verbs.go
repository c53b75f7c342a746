package enhance

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// verbRule maps a weak phrase to its stronger alternatives.
type verbRule struct {
	weak    string
	pattern *regexp.Regexp
	strong  []string
}

func newVerbRule(weak string, strong ...string) verbRule {
	return verbRule{
		weak:    weak,
		pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(weak) + `\b`),
		strong:  strong,
	}
}

// verbRules are applied in order; each text gets one random pick per rule.
var verbRules = []verbRule{
	newVerbRule("did", "developed", "implemented", "created", "designed", "built"),
	newVerbRule("made", "developed", "created", "designed", "built", "implemented"),
	newVerbRule("worked on", "developed", "contributed to", "collaborated on", "led development of"),
	newVerbRule("helped", "assisted", "supported", "contributed to", "facilitated"),
	newVerbRule("knew", "proficient in", "experienced with", "skilled in", "expertise in"),
	newVerbRule("used", "implemented", "utilized", "leveraged", "applied", "integrated"),
	newVerbRule("learned", "mastered", "acquired expertise in", "developed proficiency in"),
	newVerbRule("tried", "successfully implemented", "effectively developed", "successfully created"),
	newVerbRule("started", "initiated", "launched", "established", "founded", "created"),
	newVerbRule("finished", "completed", "delivered", "finalized", "accomplished", "achieved"),
}

// replaceWeakVerbs swaps whole-word weak verbs for stronger ones. A
// replacement keeps the leading capital of the word it replaces.
func replaceWeakVerbs(text string, rng *rand.Rand) string {
	for _, rule := range verbRules {
		choice := rule.strong[rng.Intn(len(rule.strong))]
		text = rule.pattern.ReplaceAllStringFunc(text, func(found string) string {
			return matchCase(found, choice)
		})
	}
	return text
}

func matchCase(found, replacement string) string {
	r, _ := utf8.DecodeRuneInString(found)
	if !unicode.IsUpper(r) {
		return replacement
	}
	return strings.ToUpper(replacement[:1]) + replacement[1:]
}

// WeakVerbs returns the weak phrases the enhancer rewrites, in rule order.
func WeakVerbs() []string {
	out := make([]string, len(verbRules))
	for i, r := range verbRules {
		out[i] = r.weak
	}
	return out
}
