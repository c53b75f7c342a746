package keywords

import (
	"regexp"
	"strings"
)

const (
	alwaysSoftSkills    = 8
	alwaysMethodologies = 5
)

// rule adds keywords when any of its triggers appears in the lowercased text.
type rule struct {
	triggers []string
	match    func(lower string) bool
	add      func() []string
}

var aiWord = regexp.MustCompile(`\bai\b`)

var rules = []rule{
	{
		triggers: []string{"python"},
		add: func() []string {
			out := append([]string{}, head(AIML, 5)...)
			for _, lang := range catalog[ProgrammingLanguages] {
				switch strings.ToLower(lang) {
				case "python", "r", "matlab":
					out = append(out, lang)
				}
			}
			return append(out, "Data Structures & Algorithms", "Object-Oriented Programming (OOP)")
		},
	},
	{
		triggers: []string{"react", "javascript"},
		add: func() []string {
			return append(append([]string{}, head(WebTechnologies, 8)...), "Responsive Web Design", "Cross-Browser Compatibility")
		},
	},
	{
		triggers: []string{"java", "c++"},
		add: func() []string {
			return []string{"Data Structures & Algorithms", "Object-Oriented Programming (OOP)", "System Design", "Performance Optimization"}
		},
	},
	{
		triggers: []string{"cybersecurity", "security"},
		add:      func() []string { return head(Cybersecurity, 10) },
	},
	{
		triggers: []string{"machine learning"},
		match:    aiWord.MatchString,
		add:      func() []string { return head(AIML, 8) },
	},
	{
		triggers: []string{"web", "frontend"},
		add: func() []string {
			return append(append([]string{}, head(WebTechnologies, 12)...), "UI/UX Design", "User Experience")
		},
	},
	{
		triggers: []string{"database", "sql"},
		add:      func() []string { return head(Databases, 8) },
	},
}

func (r rule) fires(lower string) bool {
	for _, t := range r.triggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return r.match != nil && r.match(lower)
}

// Relevant returns catalog keywords related to text. Trigger words pull in
// related categories; the top soft skills and methodologies are always
// included. The result has no duplicates and keeps first-seen order.
func Relevant(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, r := range rules {
		if r.fires(lower) {
			out = append(out, r.add()...)
		}
	}
	out = append(out, head(SoftSkills, alwaysSoftSkills)...)
	out = append(out, head(Methodologies, alwaysMethodologies)...)
	return dedupe(out)
}

// industries maps an industry slug to the categories (or slices of them)
// that describe it.
var industries = map[string]func() []string{
	"web-development": func() []string {
		return concat(catalog[WebTechnologies], catalog[Databases], catalog[DevOpsTools])
	},
	"ai-ml": func() []string {
		return concat(catalog[AIML], head(ProgrammingLanguages, 5))
	},
	"cybersecurity": func() []string {
		return concat(catalog[Cybersecurity], head(SystemDesign, 5))
	},
	"mobile-development": func() []string {
		return concat(catalog[MobileDev], span(ProgrammingLanguages, 5, 10))
	},
	"data-science": func() []string {
		return concat(catalog[AIML], catalog[Databases], head(ProgrammingLanguages, 5))
	},
	"devops": func() []string {
		return concat(catalog[DevOpsTools], catalog[CloudPlatforms], catalog[VersionControl])
	},
}

// ForIndustry returns the keyword list for an industry slug such as
// "web-development" or "devops". Unknown industries get the programming
// language list.
func ForIndustry(industry string) []string {
	if build, ok := industries[strings.ToLower(strings.TrimSpace(industry))]; ok {
		return build()
	}
	return List(ProgrammingLanguages)
}

// Industries returns the known industry slugs in a stable order.
func Industries() []string {
	return []string{"web-development", "ai-ml", "cybersecurity", "mobile-development", "data-science", "devops"}
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
