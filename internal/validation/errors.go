// Package validation checks a ResumeRecord against the field rules used by the
// editing form: contact formats, name shape, and text length limits.
package validation

import (
	"fmt"
	"strings"
)

// Error reports that a record failed one or more error-severity rules.
type Error struct {
	Message string
	Issues  []Issue
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("validation error: ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	for _, issue := range e.Issues {
		fmt.Fprintf(&b, "\n  - %s", issue)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
