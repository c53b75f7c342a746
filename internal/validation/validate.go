package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

// Severity levels for an Issue.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is a single rule violation. Field uses the record's JSON path, for
// example "experience[1].description".
type Issue struct {
	Field    string `json:"field"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Field, i.Message, i.Severity)
}

// Checker runs the field rules. The zero value is not usable; call NewChecker.
type Checker struct {
	v *validator.Validate
}

// NewChecker creates a checker with the custom rules registered.
func NewChecker() *Checker {
	return &Checker{v: newValidator()}
}

// check is one field/tag pair evaluated by the checker.
type check struct {
	field    string
	value    string
	tag      string
	severity string
	message  string
}

// CheckRecord returns every rule violation in record, in field order. Empty
// fields are never violations.
func (c *Checker) CheckRecord(record *types.ResumeRecord) []Issue {
	if record == nil {
		return nil
	}
	var checks []check
	add := func(field, value, tag, severity, message string) {
		checks = append(checks, check{field, value, tag, severity, message})
	}
	maxLen := func(field, value string, limit int) {
		add(field, value, fmt.Sprintf("max=%d", limit), SeverityWarning,
			fmt.Sprintf("longer than %d characters", limit))
	}

	add("fullName", record.FullName, tagPersonName, SeverityError, "must be 2-50 letters, spaces, hyphens or apostrophes")
	add("email", record.Email, "email", SeverityError, "is not a valid email address")
	add("phone", record.Phone, tagPhone, SeverityError, "is not a valid phone number")
	add("linkedinUrl", record.LinkedInURL, tagWebURL, SeverityError, "is not a valid http(s) URL")
	add("websiteUrl", record.WebsiteURL, tagWebURL, SeverityError, "is not a valid http(s) URL")
	maxLen("summary", record.Summary, MaxSummaryLength)

	maxLen("skills.technical", record.Skills.Technical, MaxSkillsLength)
	maxLen("skills.soft", record.Skills.Soft, MaxSkillsLength)
	maxLen("skills.languages", record.Skills.Languages, MaxSkillsLength)

	for i, e := range record.Experience {
		maxLen(fmt.Sprintf("experience[%d].description", i), e.Description, MaxDescriptionLength)
	}
	for i, e := range record.Education {
		maxLen(fmt.Sprintf("education[%d].achievements", i), e.Achievements, MaxAchievementsLength)
	}
	for i, p := range record.Projects {
		maxLen(fmt.Sprintf("projects[%d].description", i), p.Description, MaxDescriptionLength)
		add(fmt.Sprintf("projects[%d].link", i), p.Link, tagWebURL, SeverityWarning, "is not a valid http(s) URL")
	}
	for i, cert := range record.Certifications {
		add(fmt.Sprintf("certifications[%d].link", i), cert.Link, tagWebURL, SeverityWarning, "is not a valid http(s) URL")
	}

	var issues []Issue
	for _, ck := range checks {
		if ck.value == "" {
			continue
		}
		if err := c.v.Var(ck.value, ck.tag); err != nil {
			issues = append(issues, Issue{Field: ck.field, Rule: ruleName(err, ck.tag), Severity: ck.severity, Message: ck.message})
		}
	}
	return issues
}

// Enforce returns an *Error when record has any error-severity issue.
func (c *Checker) Enforce(record *types.ResumeRecord) error {
	var failing []Issue
	for _, issue := range c.CheckRecord(record) {
		if issue.Severity == SeverityError {
			failing = append(failing, issue)
		}
	}
	if len(failing) == 0 {
		return nil
	}
	return &Error{Message: fmt.Sprintf("%d field(s) failed validation", len(failing)), Issues: failing}
}

// CheckRecord runs the default rules over record.
func CheckRecord(record *types.ResumeRecord) []Issue {
	return NewChecker().CheckRecord(record)
}

func ruleName(err error, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return fallback
}
