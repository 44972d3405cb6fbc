// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract produces Markdown text from OCR'd PDFs with pluggable
// primary backends and a degraded block-extraction fallback. Extraction is
// the only pipeline stage with a recovery policy: a primary fault triggers
// the fallback, and a fallback fault still yields a diagnostic document.
package extract

import "fmt"

// Extractor transforms a PDF file into Markdown text. Different backends
// (markitdown, pdftotext) implement this interface.
type Extractor interface {
	// Extract reads a PDF at pdfPath and returns the Markdown content.
	Extract(pdfPath string) (string, error)
}

// unavailable is an Extractor that always fails with a fixed reason.
type unavailable struct {
	err error
}

func (u unavailable) Extract(string) (string, error) {
	return "", u.err
}

// Unavailable returns an Extractor whose Extract always fails with err.
// The CLI uses it when no primary backend could be constructed, so every
// document takes the fallback path with the construction failure as the
// recorded reason.
func Unavailable(err error) Extractor {
	return unavailable{err: fmt.Errorf("primary extractor unavailable: %w", err)}
}

// Document converts the PDF at pdfPath to sanitized Markdown. The primary
// extractor is tried first; any fault from it selects the fallback block
// extraction. Document never fails: under double failure it returns a
// diagnostic document naming both errors.
func Document(primary Extractor, pdfPath string, policy Policy) string {
	md, err := primary.Extract(pdfPath)
	if err == nil {
		return Sanitize(md, policy)
	}
	return fallbackDocument(pdfPath, err, policy)
}
