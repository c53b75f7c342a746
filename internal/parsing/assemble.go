package parsing

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// assemble drops entries without a primary key and turns empty collections
// into nil so they are omitted from the serialized record.
func assemble(record *types.ResumeRecord) {
	record.Education = keep(record.Education, func(e types.EducationEntry) string { return e.Institution })
	record.Experience = keep(record.Experience, func(e types.ExperienceEntry) string { return e.Company })
	record.Projects = keep(record.Projects, func(e types.ProjectEntry) string { return e.Name })
	record.Certifications = keep(record.Certifications, func(e types.CertificationEntry) string { return e.Name })
}

func keep[T any](entries []T, key func(T) string) []T {
	var out []T
	for _, e := range entries {
		if strings.TrimSpace(key(e)) != "" {
			out = append(out, e)
		}
	}
	return out
}
