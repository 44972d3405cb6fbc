// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates one file's conversion to Markdown through
// four stages: format normalization, OCR, Markdown extraction, and (on
// extraction failure) fallback block extraction. Control flows strictly
// forward; every intermediate artifact lives in a scratch directory released
// when the file's processing ends.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/evcraddock/docr/internal/extract"
	"github.com/evcraddock/docr/internal/normalize"
	"github.com/evcraddock/docr/internal/ocr"
	"github.com/evcraddock/docr/internal/run"
	"github.com/evcraddock/docr/pkg/types"
)

// ErrNotFound marks an input path missing at pipeline entry.
var ErrNotFound = errors.New("input file does not exist")

// Pipeline converts documents to Markdown. Configuration is fixed at
// construction; one Pipeline serves a whole batch sequentially.
type Pipeline struct {
	cfg     types.PipelineConfig
	runner  run.Runner
	primary extract.Extractor
}

// New builds a Pipeline from an immutable config, an exec runner for the
// external converter and OCR binaries, and the primary Markdown extractor.
func New(cfg types.PipelineConfig, runner run.Runner, primary extract.Extractor) *Pipeline {
	cfg.ApplyDefaults()
	return &Pipeline{cfg: cfg, runner: runner, primary: primary}
}

// Process converts one file and always returns a Result: any fault raised by
// a stage, including an unexpected panic, is converted into a failure result
// with the elapsed time still measured. This operation never throws.
func (p *Pipeline) Process(req types.Request) (result types.Result) {
	start := time.Now()

	defer func() {
		result.Elapsed = time.Since(start)
		if r := recover(); r != nil {
			result = types.Result{Err: fmt.Sprintf("unexpected fault: %v", r), Elapsed: time.Since(start)}
		}
	}()

	if err := p.convert(req); err != nil {
		return types.Result{Err: err.Error()}
	}
	return types.Result{Success: true}
}

func (p *Pipeline) convert(req types.Request) error {
	inputPath, err := filepath.Abs(req.InputPath)
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}
	outputPath, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	scratch, err := os.MkdirTemp("", "docr-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	// Released on every exit path, faults included.
	defer os.RemoveAll(scratch)

	pdfPath, err := normalize.PDF(inputPath, scratch, p.runner)
	if err != nil {
		return err
	}

	ocrPath, err := ocr.Apply(pdfPath, scratch, p.cfg.OCR, p.runner)
	if err != nil {
		return err
	}

	text := extract.Document(p.primary, ocrPath, p.policy())
	if p.cfg.Output.Frontmatter {
		text = frontmatter(inputPath, p.cfg.OCR.Language) + text
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

func (p *Pipeline) policy() extract.Policy {
	return extract.Policy{
		StripNonASCII:      true,
		CollapseWhitespace: !p.cfg.Extraction.KeepLayout,
	}
}

// frontmatter renders the optional YAML header prepended to output files.
func frontmatter(source, language string) string {
	fields := struct {
		Source      string `yaml:"source"`
		Language    string `yaml:"language"`
		ConvertedAt string `yaml:"converted_at"`
	}{
		Source:      source,
		Language:    language,
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := yaml.Marshal(fields)
	if err != nil {
		return ""
	}
	return "---\n" + string(data) + "---\n\n"
}
