package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes where a document came from and what was extracted.
type Metadata struct {
	Filename  string `json:"filename,omitempty"`
	URL       string `json:"url,omitempty"`
	Platform  string `json:"platform,omitempty"`
	MIME      string `json:"mime"`
	Format    Format `json:"format"`
	Size      int    `json:"size"`
	Pages     int    `json:"pages,omitempty"`
	Chars     int    `json:"chars"`
	Rendered  bool   `json:"rendered,omitempty"`
	Timestamp string `json:"timestamp"`
	Hash      string `json:"hash"`
}

// NewMetadata creates Metadata for cleaned text with the current timestamp.
// Hash is the SHA-256 of the cleaned text.
func NewMetadata(content string, filename string) *Metadata {
	return &Metadata{
		Filename:  filename,
		Chars:     len(content),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to indented JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
