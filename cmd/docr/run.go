// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evcraddock/docr/internal/container"
	"github.com/evcraddock/docr/internal/discover"
	"github.com/evcraddock/docr/internal/extract"
	"github.com/evcraddock/docr/internal/pipeline"
	"github.com/evcraddock/docr/internal/run"
	"github.com/evcraddock/docr/pkg/types"
)

func runRoot(cmd *cobra.Command, args []string) error {
	inputPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving input path: %w", err)
	}
	outputPath, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}

	recursive, _ := cmd.Flags().GetBool("recursive")
	files, err := discover.FindInputFiles(inputPath, recursive, os.Stderr)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No supported files found.")
		return errSilent
	}

	cfg := buildConfig(cmd)
	p := pipeline.New(cfg, run.Default, newExtractor(cfg.Extraction.Backend))

	info, statErr := os.Stat(inputPath)
	singleFile := len(files) == 1 && statErr == nil && !info.IsDir()

	overwrite, _ := cmd.Flags().GetBool("overwrite")
	verbose, _ := cmd.Flags().GetBool("verbose")
	opts := pipeline.BatchOptions{
		OutputPath: outputPath,
		SingleFile: singleFile,
		Overwrite:  overwrite,
		Verbose:    verbose,
	}

	// Interrupts are honored between files only; a file in flight finishes.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := p.ProcessBatch(ctx, files, opts, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "\nInterrupted by user")
		return errSilent
	}
	if result.HasFailures() {
		return errSilent
	}
	return nil
}

// buildConfig merges the config file, environment, and flags into one
// immutable pipeline configuration. Flags win when set.
func buildConfig(cmd *cobra.Command) types.PipelineConfig {
	language := viper.GetString("ocr.language")
	if cmd.Flags().Changed("language") {
		language, _ = cmd.Flags().GetString("language")
	}

	noForceOCR, _ := cmd.Flags().GetBool("no-force-ocr")
	keepLayout, _ := cmd.Flags().GetBool("keep-layout")
	frontmatter, _ := cmd.Flags().GetBool("frontmatter")

	cfg := types.PipelineConfig{
		OCR: types.OCRConfig{
			Language:    language,
			ForceOCR:    !noForceOCR,
			PageTimeout: viper.GetDuration("ocr.page_timeout"),
			Jobs:        viper.GetInt("ocr.jobs"),
		},
		Extraction: types.ExtractionConfig{
			Backend:    types.ExtractionBackend(viper.GetString("extraction.backend")),
			KeepLayout: keepLayout || viper.GetBool("extraction.keep_layout"),
		},
		Output: types.OutputConfig{
			Frontmatter: frontmatter || viper.GetBool("output.frontmatter"),
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// newExtractor constructs the configured primary extraction backend. When no
// backend is operational the returned extractor fails every document, which
// routes extraction through the fallback path with the reason recorded.
func newExtractor(backend types.ExtractionBackend) extract.Extractor {
	switch backend {
	case types.BackendPdftotext:
		ext, err := extract.NewPdftotextExtractor(run.Default)
		if err != nil {
			return extract.Unavailable(err)
		}
		return ext

	default:
		rt, err := container.DetectRuntime(run.Default)
		if err != nil {
			return extract.Unavailable(err)
		}
		ext, err := extract.NewMarkitdownExtractor(rt)
		if err != nil {
			return extract.Unavailable(err)
		}
		return ext
	}
}
