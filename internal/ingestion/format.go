package ingestion

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format is a decodable source format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatText Format = "text"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeHTML = "text/html"
	mimeText = "text/plain"
	mimeZip  = "application/zip"
)

var zipMagic = []byte("PK\x03\x04")

var extensionFormats = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".txt":  FormatText,
	".md":   FormatText,
}

// DetectFormat sniffs data to decide how to decode it. The filename
// extension only breaks ties: text named .html is decoded as HTML, and a
// generic zip named .docx as a Word document. The returned MIME type is the
// sniffed one.
func DetectFormat(filename string, data []byte) (Format, string, error) {
	mt := mimetype.Detect(data)
	mime := mt.String()

	switch {
	case mt.Is(mimePDF):
		return FormatPDF, mime, nil
	case mt.Is(mimeDOCX):
		return FormatDOCX, mime, nil
	case mt.Is(mimeHTML):
		return FormatHTML, mime, nil
	case isText(mt):
		if extensionFormats[ext(filename)] == FormatHTML {
			return FormatHTML, mime, nil
		}
		return FormatText, mime, nil
	}

	if extensionFormats[ext(filename)] == FormatDOCX && (mt.Is(mimeZip) || bytes.HasPrefix(data, zipMagic)) {
		return FormatDOCX, mime, nil
	}
	return "", mime, &UnsupportedTypeError{Filename: filename, MIME: mime}
}

// isText reports whether mt is text/plain or one of its descendants.
func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is(mimeText) {
			return true
		}
	}
	return false
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
