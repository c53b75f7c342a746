package ingestion

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	xmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	xmlEntities   = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
)

// extractDOCX returns the body text of a Word document, one paragraph per line.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to open document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return documentXMLText(doc.Editable().GetContent()), nil
}

// documentXMLText flattens WordprocessingML into text. Paragraph and break
// elements become newlines, tabs become tab characters.
func documentXMLText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTagPattern.ReplaceAllString(content, "")
	return xmlEntities.Replace(content)
}
