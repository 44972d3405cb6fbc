// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover finds convertible input files and maps them to output
// paths. Pure path bookkeeping; no conversion logic lives here.
package discover

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evcraddock/docr/internal/normalize"
)

// FindInputFiles returns the supported files reachable from inputPath,
// sorted by path. A single unsupported file produces a warning on warn and
// an empty list, not an error. Directory discovery inspects the top level
// only unless recursive is set. A missing path is an error.
func FindInputFiles(inputPath string, recursive bool, warn io.Writer) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("input path does not exist: %s", inputPath)
	}

	if !info.IsDir() {
		if !normalize.Supported(inputPath) {
			fmt.Fprintf(warn, "Warning: Unsupported file type: %s\n", filepath.Ext(inputPath))
			return nil, nil
		}
		return []string{inputPath}, nil
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && normalize.Supported(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", inputPath, err)
		}
	} else {
		entries, err := os.ReadDir(inputPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", inputPath, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && normalize.Supported(entry.Name()) {
				files = append(files, filepath.Join(inputPath, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// OutputPath maps one input file to its Markdown output location. In
// single-file mode outputPath is the literal output file; otherwise it is a
// directory and the input's base name gets a .md extension under it.
func OutputPath(inputFile, outputPath string, singleFile bool) string {
	if singleFile {
		return outputPath
	}
	stem := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	return filepath.Join(outputPath, stem+".md")
}
