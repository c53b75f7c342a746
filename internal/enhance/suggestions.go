package enhance

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/keywords"
)

const (
	suggestedKeywords = 5
	maxStyleHints     = 3
)

// Suggestions returns human-readable improvement hints for text. The result
// is deterministic.
func Suggestions(text string) []string {
	var out []string
	lower := strings.ToLower(text)

	if strings.Contains(lower, "worked on") {
		out = append(out, `Replace "worked on" with stronger verbs like "developed", "implemented", or "created"`)
	}
	if strings.Contains(lower, "helped") {
		out = append(out, `Replace "helped" with "assisted", "supported", or "contributed to"`)
	}
	if strings.Contains(lower, "made") {
		out = append(out, `Replace "made" with "developed", "created", or "designed"`)
	}

	if relevant := keywords.Relevant(text); len(relevant) > 0 {
		out = append(out, "Consider adding these relevant skills: "+strings.Join(first(relevant, suggestedKeywords), ", "))
	}

	hints := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !isBulletLine(line) || hints >= maxStyleHints {
			continue
		}
		if check := CheckStyle(line); !check.Quantified {
			out = append(out, fmt.Sprintf("Quantify the impact of %q", strings.TrimLeft(line, "-*•· ")))
			hints++
		}
	}
	return out
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "• ")
}
