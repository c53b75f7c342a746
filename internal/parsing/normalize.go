package parsing

import (
	"strings"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"c sharp":    "C#",
	"ml":         "Machine Learning",
}

// NormalizeSkillName maps a skill to its canonical spelling. Unknown
// multi-word or mixed-case skills are returned trimmed but otherwise as-is.
func NormalizeSkillName(skill string) string {
	normalized := strings.TrimSpace(skill)
	if normalized == "" {
		return ""
	}
	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}
	// All-caps tokens are acronyms (SQL, AWS, CSS).
	if normalized == strings.ToUpper(normalized) {
		return normalized
	}
	if normalized == lower && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}
	return normalized
}

// SplitSkills splits a comma or semicolon separated skills string into
// trimmed, non-empty items in source order.
func SplitSkills(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ';' || r == '\n' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// MergeSkills appends additions to a skills string, skipping any item whose
// normalized name is already present. The existing text is kept verbatim.
func MergeSkills(list string, additions ...string) string {
	seen := make(map[string]bool)
	items := SplitSkills(list)
	for _, item := range items {
		seen[strings.ToLower(NormalizeSkillName(item))] = true
	}
	out := strings.TrimSpace(list)
	for _, add := range additions {
		key := strings.ToLower(NormalizeSkillName(add))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if out == "" {
			out = strings.TrimSpace(add)
		} else {
			out += ", " + strings.TrimSpace(add)
		}
	}
	return out
}
