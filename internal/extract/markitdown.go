// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os"

	"github.com/evcraddock/docr/internal/container"
)

const imageMarkitdown = "markitdown:latest"

// MarkitdownExtractor produces layout-aware Markdown by piping PDFs through
// the markitdown container image. Output is text only; embedded images are
// never emitted. It depends on a container.Runtime (docker or podman)
// injected at construction time.
type MarkitdownExtractor struct {
	runtime container.Runtime
}

// NewMarkitdownExtractor creates an extractor that uses the given container
// runtime to run the markitdown image. It verifies that the image exists
// locally before returning.
func NewMarkitdownExtractor(rt container.Runtime) (*MarkitdownExtractor, error) {
	if err := rt.ImageExists(imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownExtractor{runtime: rt}, nil
}

// Extract reads the PDF at pdfPath, pipes it through the markitdown
// container, and returns the resulting Markdown text.
func (m *MarkitdownExtractor) Extract(pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(imageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("extracting %s with markitdown: %w", pdfPath, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("markitdown produced empty output for %s", pdfPath)
	}

	return out.String(), nil
}
