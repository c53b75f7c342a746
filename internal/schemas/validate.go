// Package schemas validates resume records and other JSON documents against
// JSON Schemas.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	recordschema "github.com/jonathan/resume-builder/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// DefaultRecordSchemaPath is the repository-relative path of the record schema.
const DefaultRecordSchemaPath = "schemas/resume_record.schema.json"

// ResolveSchemaPath finds a schema file relative to the working directory or
// up to two parent directories. It returns "" when none exists.
func ResolveSchemaPath(relativePath string) string {
	// Try paths in order:
	// 1. Relative to current working directory
	// 2. One level up (../schemas/...)
	// 3. Two levels up (../../schemas/...)
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSON validates a JSON file against a JSON Schema file.
func ValidateJSON(schemaPath, jsonPath string) error {
	// Resolve absolute paths to handle relative paths correctly
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	// Check if files exist
	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	// Load schema and JSON document
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbsPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + jsonAbsPath)
	return validate(schemaLoader, documentLoader, schemaAbsPath)
}

// ValidateJSONString validates JSON content against schema content.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(gojsonschema.NewStringLoader(schemaContent), gojsonschema.NewStringLoader(jsonContent), "(string schema)")
}

// ValidateRecord validates record against the schema at schemaPath, or the
// built-in record schema when schemaPath is empty.
func ValidateRecord(schemaPath string, record *types.ResumeRecord) error {
	if record == nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "record is nil"}}}
	}
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// Built-in schema unless a file is given
	if schemaPath == "" {
		return validate(gojsonschema.NewStringLoader(recordschema.ResumeRecord), gojsonschema.NewBytesLoader(doc), "(built-in record schema)")
	}
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}
	return validate(gojsonschema.NewReferenceLoader("file://"+schemaAbsPath), gojsonschema.NewBytesLoader(doc), schemaAbsPath)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaName string) error {
	// Validate
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// A load error covers both an unresolvable $ref or bad schema syntax
		// and an unreadable document
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
