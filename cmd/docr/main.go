// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docr CLI, which converts
// documents, PDFs, and images to Markdown using OCR.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/evcraddock/docr/internal/normalize"
	"github.com/evcraddock/docr/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// errSilent signals a non-zero exit whose message was already printed.
var errSilent = errors.New("exit with failure")

// rootCmd is the base command for the docr CLI.
var rootCmd = &cobra.Command{
	Use:   "docr <input_path> <output_path>",
	Short: "Convert documents, PDFs, and images to Markdown using OCR",
	Long: `docr converts documents into Markdown text by pipelining them through
format conversion, OCR, and text extraction. Given a file it writes one
Markdown file; given a directory it converts every supported file in it.

Supported formats: ` + strings.Join(normalize.SupportedExtensions(), ", "),
	Args:          cobra.ExactArgs(2),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docr.yaml or ~/.config/docr/config.yaml)")

	rootCmd.Flags().Bool("no-force-ocr", false, "skip OCR for pages that already have text (default: force OCR on all pages)")
	rootCmd.Flags().StringP("language", "l", "", "OCR language code (default: eng)")
	rootCmd.Flags().BoolP("recursive", "r", false, "process directories recursively")
	rootCmd.Flags().Bool("overwrite", false, "overwrite existing output files")
	rootCmd.Flags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.Flags().Bool("keep-layout", false, "preserve extractor line structure instead of flattening output")
	rootCmd.Flags().Bool("frontmatter", false, "prepend YAML frontmatter to output files")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docr"))
		}
	}

	viper.SetDefault("ocr.language", types.DefaultLanguage)
	viper.SetDefault("ocr.page_timeout", types.DefaultPageTimeout)
	viper.SetDefault("ocr.jobs", types.DefaultJobs)
	viper.SetDefault("extraction.backend", string(types.BackendMarkitdown))

	viper.SetEnvPrefix("DOCR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
