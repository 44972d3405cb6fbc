// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ExtractionBackend identifies the primary Markdown extraction tool.
type ExtractionBackend string

const (
	BackendMarkitdown ExtractionBackend = "markitdown"
	BackendPdftotext  ExtractionBackend = "pdftotext"
)

// OCRConfig holds settings for the OCR stage.
type OCRConfig struct {
	// Language is the OCR language code passed to the engine (default "eng").
	Language string `json:"language" yaml:"language"`

	// ForceOCR re-runs OCR on every page even when a text layer exists.
	// When false, pages with an extractable text layer are skipped.
	ForceOCR bool `json:"force_ocr" yaml:"force_ocr"`

	// PageTimeout is the per-page recognition timeout enforced by the
	// engine itself (default 300s).
	PageTimeout time.Duration `json:"page_timeout" yaml:"page_timeout"`

	// Jobs is the number of worker processes the engine runs internally
	// (default 2).
	Jobs int `json:"jobs" yaml:"jobs"`
}

// ExtractionConfig holds settings for the Markdown extraction stage.
type ExtractionConfig struct {
	// Backend selects the primary extraction tool: markitdown or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// KeepLayout disables whitespace collapsing during sanitization,
	// preserving the extractor's line structure.
	KeepLayout bool `json:"keep_layout" yaml:"keep_layout"`
}

// OutputConfig holds settings for how converted Markdown is written.
type OutputConfig struct {
	// Frontmatter prepends a YAML frontmatter block (source path, language,
	// conversion timestamp) to each output file.
	Frontmatter bool `json:"frontmatter" yaml:"frontmatter"`
}

// PipelineConfig groups all stage configurations for one pipeline instance.
// It is built once per invocation and never mutated afterwards.
type PipelineConfig struct {
	OCR        OCRConfig        `json:"ocr" yaml:"ocr"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}

const (
	// DefaultLanguage is the OCR language used when none is configured.
	DefaultLanguage = "eng"

	// DefaultPageTimeout is the per-page OCR recognition timeout.
	DefaultPageTimeout = 300 * time.Second

	// DefaultJobs is the OCR engine's internal worker process count.
	DefaultJobs = 2
)

// ApplyDefaults fills zero-valued fields with pipeline defaults.
func (c *PipelineConfig) ApplyDefaults() {
	if c.OCR.Language == "" {
		c.OCR.Language = DefaultLanguage
	}
	if c.OCR.PageTimeout <= 0 {
		c.OCR.PageTimeout = DefaultPageTimeout
	}
	if c.OCR.Jobs <= 0 {
		c.OCR.Jobs = DefaultJobs
	}
	if c.Extraction.Backend == "" {
		c.Extraction.Backend = BackendMarkitdown
	}
}
