// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"

	"github.com/evcraddock/docr/internal/run"
)

const binPdftotext = "pdftotext"

// PdftotextExtractor produces plain layout-preserving text via the poppler
// pdftotext binary. It is the lighter-weight primary backend for setups
// without a container runtime.
type PdftotextExtractor struct {
	runner run.Runner
}

// NewPdftotextExtractor creates the extractor after verifying that the
// pdftotext binary is on PATH.
func NewPdftotextExtractor(runner run.Runner) (*PdftotextExtractor, error) {
	if _, err := runner.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextExtractor{runner: runner}, nil
}

// Extract runs pdftotext in layout mode, capturing stdout.
func (p *PdftotextExtractor) Extract(pdfPath string) (string, error) {
	var out bytes.Buffer
	args := []string{"-layout", pdfPath, "-"}
	if err := p.runner.RunPiped(binPdftotext, args, nil, &out); err != nil {
		return "", fmt.Errorf("extracting %s with %s: %w", pdfPath, binPdftotext, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("%s produced empty output for %s", binPdftotext, pdfPath)
	}

	return out.String(), nil
}
