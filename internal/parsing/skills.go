package parsing

import (
	"github.com/jonathan/resume-builder/internal/provenance"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	technicalSkills = Labelled("Technical Skills", "Technical")
	softSkills      = Labelled("Soft Skills", "Soft")
	languageSkills  = Labelled("Languages", "Spoken Languages")
)

// extractSkills reads the labelled skill lines of the SKILLS section. The
// values stay free text.
func extractSkills(text string, record *types.ResumeRecord, tr *provenance.Tracker) {
	body, found := LocateSection(text, HeaderSkills)
	if !found {
		tr.Warn("Skills section not found")
		return
	}

	if m, ok := technicalSkills(body); ok {
		record.Skills.Technical = m.Text
		tr.Success("Technical skills extracted")
	}
	if m, ok := softSkills(body); ok {
		record.Skills.Soft = m.Text
		tr.Success("Soft skills extracted")
	}
	if m, ok := languageSkills(body); ok {
		record.Skills.Languages = m.Text
		tr.Success("Languages extracted")
	}

	if record.Skills.Technical == "" && record.Skills.Soft == "" {
		tr.Warn("Skills section found but no specific skills could be parsed")
	}
}
