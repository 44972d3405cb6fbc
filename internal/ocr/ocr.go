// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr adds a text layer to PDFs by invoking the external OCRmyPDF
// engine. OCR failures are fatal for the pipeline; there is no fallback OCR
// path.
package ocr

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/evcraddock/docr/internal/run"
	"github.com/evcraddock/docr/pkg/types"
)

// scratchOutput is the fixed name for the OCR'd PDF inside the scratch dir.
const scratchOutput = "ocr_output.pdf"

const engine = "ocrmypdf"

// Apply runs the OCR engine over pdfPath and returns the path of the
// text-searchable result inside scratchDir. Exactly one of --force-ocr and
// --skip-text is passed, selected by cfg.ForceOCR. A non-zero engine exit is
// returned as-is; the caller does not retry.
func Apply(pdfPath, scratchDir string, cfg types.OCRConfig, runner run.Runner) (string, error) {
	outPath := filepath.Join(scratchDir, scratchOutput)

	args := []string{
		"-l", cfg.Language,
		"--deskew",
		"--clean",
		"--tesseract-timeout", strconv.Itoa(int(cfg.PageTimeout.Seconds())),
		"--jobs", strconv.Itoa(cfg.Jobs),
	}
	if cfg.ForceOCR {
		args = append(args, "--force-ocr")
	} else {
		args = append(args, "--skip-text")
	}
	args = append(args, pdfPath, outPath)

	if err := runner.Run(engine, args...); err != nil {
		return "", fmt.Errorf("ocr failed for %s: %w", pdfPath, err)
	}
	return outPath, nil
}
