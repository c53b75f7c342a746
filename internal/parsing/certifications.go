package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// certSeparators start a new certification when present in a line.
var certSeparators = []string{"—", "–", " - ", " | "}

var leadingYearPattern = regexp.MustCompile(`^\d{4}`)

// parseCertifications runs the certification line state machine over a
// section body. A separator-bearing line opens a new entry ("Name - Issuer");
// following lines contribute a leading year as the date, an http(s) URL as
// the link, or otherwise fill an empty issuer. Lines before the first entry
// are ignored and the last open entry is flushed at the end.
func parseCertifications(body string) []types.CertificationEntry {
	var (
		certs   []types.CertificationEntry
		current *types.CertificationEntry
	)
	flush := func() {
		if current != nil && current.Name != "" {
			certs = append(certs, *current)
		}
		current = nil
	}

	for _, line := range nonEmptyLines(body) {
		if sep := certSeparator(line); sep != "" {
			flush()
			current = &types.CertificationEntry{}
			name, issuer, _ := strings.Cut(line, sep)
			current.Name = strings.TrimSpace(name)
			current.Issuer = strings.TrimSpace(issuer)
			continue
		}
		if current == nil {
			continue
		}
		switch {
		case leadingYearPattern.MatchString(line):
			current.Date = line[:4]
			if link := urlPattern.FindString(line); link != "" {
				current.Link = link
			}
		case strings.Contains(line, "http"):
			if link := urlPattern.FindString(line); link != "" {
				current.Link = link
			} else {
				current.Link = line
			}
		case current.Issuer == "":
			current.Issuer = line
		}
	}
	flush()
	return certs
}

// certSeparator returns the first separator found in a line, skipping lines
// that are only links.
func certSeparator(line string) string {
	if urlPattern.FindString(line) == line {
		return ""
	}
	for _, sep := range certSeparators {
		if strings.Contains(line, sep) {
			return sep
		}
	}
	return ""
}
