package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the plain text of every page and the page count.
// Pages without a content stream are skipped.
func extractPDF(ctx context.Context, data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, &ExtractionError{Format: FormatPDF, Message: "failed to open document", Cause: err}
	}

	pages = reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("failed to read page %d", i), Cause: err}
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), pages, nil
}
