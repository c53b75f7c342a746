// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Provenance reports, per attempted extraction, whether it succeeded, was
// questionable, failed, or was not applicable. Messages are human readable and
// kept in the order they were recorded.
type Provenance struct {
	Successes []string `json:"successes"`
	Warnings  []string `json:"warnings"`
	Errors    []string `json:"errors"`
	Skipped   []string `json:"skipped"`
}

// Total returns the number of entries across all four buckets.
func (p Provenance) Total() int {
	return len(p.Successes) + len(p.Warnings) + len(p.Errors) + len(p.Skipped)
}

// HasErrors reports whether the error bucket is non-empty.
func (p Provenance) HasErrors() bool {
	return len(p.Errors) > 0
}
