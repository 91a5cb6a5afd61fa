package pdfdoc

import (
	"errors"
	"strings"
)

// ErrExtractionFailed is returned when no page of a document could be
// parsed for text at all.
var ErrExtractionFailed = errors.New("text extraction failed")

// Extractor produces a single text representation of an unlocked
// document for pattern matching.
type Extractor struct{}

// NewExtractor creates a text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text concatenates per-page plain text in page order, separated by a
// newline so tokens from adjacent pages never merge into false matches.
// Pages without a text layer (scanned images) contribute an empty
// segment rather than failing, so a fully scanned document yields an
// empty string and is rejected downstream as a partial extraction.
func (e *Extractor) Text(doc *Document) (string, error) {
	if doc == nil || doc.reader == nil {
		return "", ErrExtractionFailed
	}

	segments := make([]string, 0, doc.reader.NumPage())
	for pageNum := 1; pageNum <= doc.reader.NumPage(); pageNum++ {
		segments = append(segments, pageText(doc, pageNum))
	}

	text := strings.Join(segments, "\n")
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return text, nil
}

// pageText extracts one page's text, swallowing parse failures and
// panics from malformed font programs so one bad page cannot sink the
// document.
func pageText(doc *Document, pageNum int) (content string) {
	defer func() {
		if recover() != nil {
			content = ""
		}
	}()

	page := doc.reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
