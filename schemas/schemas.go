// Package schemas holds the JSON Schemas for the documents the parser emits.
package schemas

import _ "embed"

// ResumeRecord is the JSON Schema of a parsed resume record.
//
//go:embed resume_record.schema.json
var ResumeRecord string
