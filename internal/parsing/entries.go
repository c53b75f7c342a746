package parsing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Placeholders used when an entry's header line has no separator.
const (
	placeholderPosition = "Position"
	placeholderCompany  = "Company %d"
)

var (
	// pairMatchers split an entry header into a primary/secondary pair.
	pairMatchers = []Matcher{
		Regex(regexp.MustCompile(`^(.+?)\s+[-–—|]\s+(.+)$`)),
		Regex(regexp.MustCompile(`^([^-–—]+?)\s*[-–—]\s*(.+)$`)),
	}

	// positionAtCompany handles "Engineer at Acme".
	positionAtCompany = Regex(regexp.MustCompile(`^(.+?)\s+at\s+(.+)$`))

	degreeFieldMatcher = Regex(regexp.MustCompile(`(?i)^(Bachelor(?:'s)?|Master(?:'s)?|Diploma|PhD|Ph\.D\.?|B\.Tech|M\.Tech|BSc|MSc|BA|MA|BS|MS|MBA)\s+(?:of\s+|in\s+)?(.+)$`))

	// degreeInstitutionYear handles the single-line "Degree, Institution, Year" form.
	degreeInstitutionYear = Regex(regexp.MustCompile(`^([^,]+),\s*([^,]+?)(?:,\s*(.*\d{4}.*))?$`))

	gpaPattern = regexp.MustCompile(`(?i)\bGPA\b\s*[:\-]?\s*(\d(?:\.\d{1,2})?(?:\s*/\s*\d(?:\.\d{1,2})?)?)`)

	urlPattern = regexp.MustCompile(`https?://[^\s]+`)
)

// splitPair splits a header line into its two halves using the separator chain.
func splitPair(line string) (string, string, bool) {
	m, ok := FirstMatch(line, pairMatchers...)
	if !ok || m.Group(0) == "" || m.Group(1) == "" {
		return "", "", false
	}
	return m.Group(0), m.Group(1), true
}

// parseExperienceBlock turns one job block into an entry. The first line is
// "Company - Position", the second is tried as a date range, the rest is the
// description. dated reports whether a date range was recognized.
func parseExperienceBlock(lines []string, index int) (entry types.ExperienceEntry, dated bool) {
	first := lines[0]
	if company, position, ok := splitPair(first); ok {
		entry.Company, entry.Position = company, position
	} else if m, ok := positionAtCompany(first); ok {
		entry.Position, entry.Company = m.Group(0), m.Group(1)
	} else {
		entry.Company = first
		entry.Position = placeholderPosition
	}
	if entry.Company == "" {
		entry.Company = fmt.Sprintf(placeholderCompany, index+1)
	}

	rest := lines[1:]
	if len(rest) > 0 {
		if dr, ok := matchDateRange(rest[0]); ok {
			entry.StartDate, entry.EndDate, entry.IsCurrent = dr.Start, dr.End, dr.IsCurrent
			dated = true
			rest = rest[1:]
		}
	}
	entry.Description = strings.Join(rest, "\n")
	return entry, dated
}

// parseEducationBlock turns one degree block into an entry.
func parseEducationBlock(lines []string) types.EducationEntry {
	var entry types.EducationEntry
	first := lines[0]

	m, commaForm := degreeInstitutionYear(first)
	commaForm = commaForm && yearPattern.MatchString(first)
	switch {
	case commaForm:
		entry.Degree, entry.Institution, entry.GraduationDate = m.Group(0), m.Group(1), m.Group(2)
		if entry.GraduationDate == "" {
			entry.GraduationDate = yearPattern.FindString(entry.Institution)
		}
		if entry.Institution == entry.GraduationDate {
			entry.Institution = ""
		}
	default:
		if degree, field, ok := splitPair(first); ok {
			entry.Degree, entry.Field = degree, field
		} else if m, ok := degreeFieldMatcher(first); ok {
			entry.Degree, entry.Field = m.Group(0), m.Group(1)
		} else {
			entry.Degree = first
		}
	}
	if m, ok := degreeFieldMatcher(entry.Degree); ok && entry.Field == "" {
		entry.Degree, entry.Field = m.Group(0), m.Group(1)
	}

	rest := lines[1:]
	if entry.Institution == "" && len(rest) > 0 {
		if institution, date, ok := splitPair(rest[0]); ok {
			entry.Institution, entry.GraduationDate = institution, date
		} else {
			entry.Institution = rest[0]
		}
		rest = rest[1:]
	}

	var achievements []string
	for _, line := range rest {
		if m := gpaPattern.FindStringSubmatch(line); m != nil && entry.GPA == "" {
			entry.GPA = strings.ReplaceAll(m[1], " ", "")
			if strings.TrimSpace(gpaPattern.ReplaceAllString(line, "")) == "" {
				continue
			}
		}
		achievements = append(achievements, line)
	}
	entry.Achievements = strings.Join(achievements, "\n")
	return entry
}

// projectLabels maps a lowercased label to the project field it fills.
var projectLabels = map[string]string{
	"technologies": "technologies",
	"tech stack":   "technologies",
	"tech":         "technologies",
	"stack":        "technologies",
	"link":         "link",
	"url":          "link",
	"github":       "link",
	"demo":         "link",
	"description":  "description",
	"summary":      "description",
}

// parseProjectBlock turns one project block into an entry. The first line is
// the name; later lines are scanned for labelled fields, and unlabelled lines
// become the description.
func parseProjectBlock(lines []string) types.ProjectEntry {
	entry := types.ProjectEntry{Name: lines[0]}
	var unlabelled []string
	for _, line := range lines[1:] {
		field, value := projectLabel(line)
		switch field {
		case "technologies":
			entry.Technologies = value
		case "link":
			entry.Link = value
		case "description":
			entry.Description = value
		default:
			if entry.Link == "" && urlPattern.MatchString(line) && urlPattern.FindString(line) == line {
				entry.Link = line
				continue
			}
			unlabelled = append(unlabelled, line)
		}
	}
	if entry.Description == "" {
		entry.Description = strings.Join(unlabelled, "\n")
	}
	return entry
}

// projectLabel returns the target field and value for a "Label: value" line.
func projectLabel(line string) (field, value string) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", ""
	}
	label := strings.ToLower(strings.TrimSpace(line[:idx]))
	field, ok := projectLabels[label]
	if !ok {
		return "", ""
	}
	return field, strings.TrimSpace(line[idx+1:])
}
