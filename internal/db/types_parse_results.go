package db

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// List paging bounds.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ParseResult is a stored parse.
type ParseResult struct {
	ID         uuid.UUID           `json:"id"`
	SourceName string              `json:"source_name"`
	SourceHash string              `json:"source_hash"`
	Record     *types.ResumeRecord `json:"record"`
	Provenance types.Provenance    `json:"provenance"`
	Enhanced   bool                `json:"enhanced"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ParseResultInput is the data needed to store a parse. SourceHash is
// computed from SourceText when empty.
type ParseResultInput struct {
	SourceName string
	SourceText string
	SourceHash string
	Record     *types.ResumeRecord
	Provenance types.Provenance
	Enhanced   bool
}

func (in *ParseResultInput) normalize() error {
	if in.Record == nil {
		return fmt.Errorf("%w: record is required", ErrInvalidInput)
	}
	if in.SourceHash == "" {
		if in.SourceText == "" {
			return fmt.Errorf("%w: source text or hash is required", ErrInvalidInput)
		}
		in.SourceHash = HashContent(in.SourceText)
	}
	return nil
}

// HashContent returns the hex SHA-256 of content.
func HashContent(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ClampPage applies the list defaults and bounds to a page request.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
