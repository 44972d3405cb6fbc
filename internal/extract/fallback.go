// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPage pulls the text blocks from one page. Tests override this to
// simulate per-page faults.
var extractPage = pageBlocks

// fallbackDocument performs degraded block-granularity extraction after a
// primary fault, prefixed with a banner naming the primary failure. When the
// fallback itself faults it returns a terminal diagnostic document naming
// both errors; this function always returns text.
func fallbackDocument(pdfPath string, primaryErr error, policy Policy) string {
	text, err := fallbackText(pdfPath, primaryErr)
	if err != nil {
		return fmt.Sprintf("# Conversion Failed\n\n"+
			"Both primary and fallback text extraction failed.\n\n"+
			"Primary error: %v\nFallback error: %v", primaryErr, err)
	}
	return Sanitize(text, policy)
}

func fallbackText(pdfPath string, primaryErr error) (text string, err error) {
	// The PDF reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	defer f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "# Document Conversion\n\n"+
		"*Note: Primary markdown conversion failed (%v), using fallback extraction.*\n\n", primaryErr)

	for i := 1; i <= reader.NumPage(); i++ {
		fmt.Fprintf(&b, "\n## Page %d\n\n", i)

		blocks, pageErr := extractPage(reader.Page(i))
		if pageErr != nil {
			// Per-page faults are isolated; sibling pages still extract.
			fmt.Fprintf(&b, "*[Page %d: Error extracting text: %v]*\n\n", i, pageErr)
			continue
		}
		for _, block := range blocks {
			fmt.Fprintf(&b, "%s\n\n", block)
		}
	}

	return b.String(), nil
}

// pageBlocks extracts the non-empty text rows of a page in layout order.
func pageBlocks(p pdf.Page) (blocks []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	if p.V.IsNull() {
		return nil, fmt.Errorf("page has no content")
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		var line strings.Builder
		for _, t := range row.Content {
			line.WriteString(t.S)
		}
		if s := strings.TrimSpace(line.String()); s != "" {
			blocks = append(blocks, s)
		}
	}
	return blocks, nil
}
