package ingestion

import (
	"github.com/jonathan/resume-builder/internal/fetch"
)

// extractHTML returns the visible text of an HTML resume page.
func extractHTML(data []byte, platform fetch.Platform) (string, error) {
	text, err := fetch.ExtractMainText(string(data),
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return "", &ExtractionError{Format: FormatHTML, Message: "failed to parse page", Cause: err}
	}
	return text, nil
}
