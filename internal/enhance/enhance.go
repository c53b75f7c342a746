// Package enhance applies the optional cosmetic pass over a parsed resume:
// weak verbs become stronger ones, vague experience lines become achievement
// statements, and skills gain relevant ATS keywords.
//
// The pass is random but seedable. Two calls with the same seed and input
// produce the same output.
package enhance

import (
	"log/slog"
	"math/rand"
	"strings"

	"github.com/jonathan/resume-builder/internal/keywords"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// vagueLineLength is the length below which an experience line is rewritten.
	vagueLineLength = 50

	maxTechnicalAdditions = 5
	maxSoftAdditions      = 5
	maxLanguageAdditions  = 3
	maxProjectTech        = 5
)

// Enhancer rewrites records. It is safe for concurrent use; each call draws
// from its own generator seeded with Seed.
type Enhancer struct {
	Seed   int64
	logger *slog.Logger
}

// New creates an enhancer. A nil logger uses slog.Default().
func New(seed int64, logger *slog.Logger) *Enhancer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enhancer{Seed: seed, logger: logger}
}

// Enhance returns an enhanced deep copy of record. inputText is the raw text
// the record was parsed from and drives keyword selection. The input record
// is never modified.
func (e *Enhancer) Enhance(record *types.ResumeRecord, inputText string) *types.ResumeRecord {
	if record == nil {
		return nil
	}
	rng := rand.New(rand.NewSource(e.Seed))
	out := record.Clone()

	if out.Summary != "" {
		out.Summary = replaceWeakVerbs(out.Summary, rng)
	}
	out.Skills = enhanceSkills(out.Skills, inputText)

	for i := range out.Experience {
		out.Experience[i].Description = enhanceDescription(out.Experience[i].Description, rng)
	}
	for i := range out.Projects {
		p := &out.Projects[i]
		if p.Description == "" {
			continue
		}
		if p.Technologies == "" {
			p.Technologies = strings.Join(first(keywords.Relevant(p.Description), maxProjectTech), ", ")
		}
		p.Description = replaceWeakVerbs(p.Description, rng)
	}
	for i := range out.Education {
		if out.Education[i].Achievements != "" {
			out.Education[i].Achievements = replaceWeakVerbs(out.Education[i].Achievements, rng)
		}
	}

	e.logger.Debug("resume enhanced",
		"seed", e.Seed,
		"experience", len(out.Experience),
		"projects", len(out.Projects))
	return out
}

// enhanceDescription rewrites each non-blank line. Lines that stay short or
// still read as supporting work are replaced by an achievement statement.
func enhanceDescription(description string, rng *rand.Rand) string {
	if description == "" {
		return ""
	}
	var lines []string
	for _, line := range strings.Split(description, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		enhanced := replaceWeakVerbs(line, rng)
		if len(enhanced) < vagueLineLength || strings.Contains(enhanced, "assisted") || strings.Contains(enhanced, "helped") {
			enhanced = achievementLine(enhanced, rng)
		}
		lines = append(lines, enhanced)
	}
	return strings.Join(lines, "\n")
}

// enhanceSkills appends relevant catalog keywords to each non-empty category.
func enhanceSkills(skills types.Skills, inputText string) types.Skills {
	relevant := keywords.Relevant(inputText)

	if skills.Technical != "" {
		tech := filter(relevant, func(k string) bool {
			return keywords.In(k, keywords.ProgrammingLanguages, keywords.WebTechnologies, keywords.Databases)
		})
		skills.Technical = parsing.MergeSkills(skills.Technical, first(tech, maxTechnicalAdditions)...)
	}
	if skills.Soft != "" {
		soft := filter(relevant, func(k string) bool {
			return keywords.In(k, keywords.SoftSkills, keywords.Methodologies)
		})
		skills.Soft = parsing.MergeSkills(skills.Soft, first(soft, maxSoftAdditions)...)
	}
	if skills.Languages != "" {
		langs := filter(relevant, func(k string) bool {
			return keywords.In(k, keywords.ProgrammingLanguages) || strings.Contains(strings.ToLower(k), "language")
		})
		skills.Languages = parsing.MergeSkills(skills.Languages, first(langs, maxLanguageAdditions)...)
	}
	return skills
}

func filter(in []string, keep func(string) bool) []string {
	var out []string
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func first(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}
