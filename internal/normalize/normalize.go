// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns arbitrary supported inputs into PDFs for the OCR
// stage. PDFs pass through untouched; images are imported into a fresh PDF;
// office and text documents are rendered by a headless LibreOffice.
package normalize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/evcraddock/docr/internal/run"
)

var (
	// ErrUnsupportedFormat marks an input extension outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrConversionFailed marks an office conversion that ran but did not
	// leave the expected PDF behind.
	ErrConversionFailed = errors.New("document conversion failed")
)

// scratchPDF is the fixed name for normalized PDFs inside the scratch dir.
const scratchPDF = "input.pdf"

var (
	imageExts  = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".tiff": true, ".tif": true, ".bmp": true}
	officeExts = map[string]bool{".txt": true, ".csv": true, ".docx": true, ".doc": true, ".odt": true, ".rtf": true}
)

// SupportedExtensions returns the fixed set of convertible extensions,
// dot-prefixed and sorted by category: pdf, images, office documents.
func SupportedExtensions() []string {
	return []string{
		".pdf",
		".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp",
		".txt", ".csv", ".docx", ".doc", ".odt", ".rtf",
	}
}

// Supported reports whether the file's extension (case-insensitive) is
// convertible.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".pdf" || imageExts[ext] || officeExts[ext]
}

// PDF ensures inputPath is available as a PDF, writing any converted artifact
// into scratchDir. Inputs that are already PDFs are returned unchanged with
// no copy. It is a pure function of its arguments; all state lives in the
// scratch directory.
func PDF(inputPath, scratchDir string, runner run.Runner) (string, error) {
	ext := strings.ToLower(filepath.Ext(inputPath))

	switch {
	case ext == ".pdf":
		return inputPath, nil

	case imageExts[ext]:
		pdfPath := filepath.Join(scratchDir, scratchPDF)
		if err := api.ImportImagesFile([]string{inputPath}, pdfPath, nil, nil); err != nil {
			return "", fmt.Errorf("importing image %s: %w", inputPath, err)
		}
		return pdfPath, nil

	case officeExts[ext]:
		return officePDF(inputPath, scratchDir, runner)

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// officePDF renders an office or text document to PDF via headless
// LibreOffice. The converter names its output after the input's base name;
// a clean process exit does not guarantee that file exists, so its presence
// is checked explicitly.
func officePDF(inputPath, scratchDir string, runner run.Runner) (string, error) {
	err := runner.Run("libreoffice",
		"--headless", "--convert-to", "pdf",
		"--outdir", scratchDir, inputPath)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", inputPath, err)
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	converted := filepath.Join(scratchDir, stem+".pdf")
	if _, err := os.Stat(converted); err != nil {
		return "", fmt.Errorf("%w: expected output missing: %s", ErrConversionFailed, converted)
	}
	return converted, nil
}
