package parsing

import (
	"github.com/jonathan/resume-builder/internal/provenance"
	"github.com/jonathan/resume-builder/internal/types"
)

// sectionPolicy describes how a missing section is reported.
type sectionPolicy struct {
	header   string
	label    string
	optional bool
}

var (
	experienceSection     = sectionPolicy{header: HeaderExperience, label: "Experience"}
	educationSection      = sectionPolicy{header: HeaderEducation, label: "Education"}
	projectsSection       = sectionPolicy{header: HeaderProjects, label: "Projects", optional: true}
	certificationsSection = sectionPolicy{header: HeaderCertifications, label: "Certifications", optional: true}
)

// locate finds the section body and records the provenance of a miss or an
// empty body. ok is true only when there is text to segment.
func (p sectionPolicy) locate(text string, tr *provenance.Tracker) (string, bool) {
	body, found := LocateSection(text, p.header)
	switch {
	case !found && p.optional:
		tr.Skipf("%s section not found", p.label)
		return "", false
	case !found:
		tr.Warnf("%s section not found", p.label)
		return "", false
	case body == "":
		tr.Warnf("%s section found but no entries could be parsed", p.label)
		return "", false
	}
	return body, true
}

// empty records the degenerate case of a located body that produced no entries.
func (p sectionPolicy) empty(tr *provenance.Tracker) {
	tr.Warnf("%s section found but no entries could be parsed", p.label)
}

func extractExperience(text string, tr *provenance.Tracker) []types.ExperienceEntry {
	body, ok := experienceSection.locate(text, tr)
	if !ok {
		return nil
	}
	var entries []types.ExperienceEntry
	for i, block := range SegmentBlocks(body, experienceBoundary) {
		entry, dated := parseExperienceBlock(block, i)
		if !dated {
			tr.Warnf("No date range recognized for experience entry %q", entry.Company)
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		experienceSection.empty(tr)
		return nil
	}
	tr.Successf("%d work experience entries extracted", len(entries))
	return entries
}

func extractEducation(text string, tr *provenance.Tracker) []types.EducationEntry {
	body, ok := educationSection.locate(text, tr)
	if !ok {
		return nil
	}
	var entries []types.EducationEntry
	for _, block := range SegmentBlocks(body, educationBoundary) {
		entry := parseEducationBlock(block)
		if entry.Institution == "" {
			tr.Warnf("Education entry %q has no institution and was dropped", entry.Degree)
			continue
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		educationSection.empty(tr)
		return nil
	}
	tr.Successf("%d education entries extracted", len(entries))
	return entries
}

func extractProjects(text string, tr *provenance.Tracker) []types.ProjectEntry {
	body, ok := projectsSection.locate(text, tr)
	if !ok {
		return nil
	}
	var entries []types.ProjectEntry
	for _, block := range SegmentBlocks(body, projectBoundary) {
		entries = append(entries, parseProjectBlock(block))
	}
	if len(entries) == 0 {
		projectsSection.empty(tr)
		return nil
	}
	tr.Successf("%d projects extracted", len(entries))
	return entries
}

func extractCertifications(text string, tr *provenance.Tracker) []types.CertificationEntry {
	body, ok := certificationsSection.locate(text, tr)
	if !ok {
		return nil
	}
	entries := parseCertifications(body)
	if len(entries) == 0 {
		certificationsSection.empty(tr)
		return nil
	}
	tr.Successf("%d certifications extracted", len(entries))
	return entries
}
