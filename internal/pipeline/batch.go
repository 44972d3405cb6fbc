// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/evcraddock/docr/internal/discover"
	"github.com/evcraddock/docr/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run. Skipped files
// count toward neither successes nor failures.
type BatchResult struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// Total returns the total number of files handled.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// BatchOptions shapes one batch run.
type BatchOptions struct {
	// OutputPath is the literal output file in single-file mode, or the
	// output directory otherwise.
	OutputPath string

	// SingleFile marks that the batch came from one explicit input file.
	SingleFile bool

	// Overwrite regenerates outputs that already exist. Without it an
	// existing output skips the file.
	Overwrite bool

	// Verbose enables per-file progress and timing lines.
	Verbose bool
}

// ProcessBatch converts files sequentially, one fully before the next.
// Per-file faults never abort the batch; the context is only consulted
// between files. Status lines go to out, failures to errw.
func (p *Pipeline) ProcessBatch(ctx context.Context, files []string, opts BatchOptions, out, errw io.Writer) (BatchResult, error) {
	total := len(files)
	var result BatchResult

	for i, inputFile := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if opts.Verbose {
			fmt.Fprintf(out, "[%d/%d] Processing: %s\n", i+1, total, inputFile)
		}

		outputFile := discover.OutputPath(inputFile, opts.OutputPath, opts.SingleFile)
		if _, err := os.Stat(outputFile); err == nil && !opts.Overwrite {
			fmt.Fprintf(out, "Skipping %s (output exists, use --overwrite to replace)\n", inputFile)
			result.Skipped++
			continue
		}

		res := p.Process(types.Request{InputPath: inputFile, OutputPath: outputFile})
		if res.Success {
			result.Succeeded++
			if opts.Verbose {
				fmt.Fprintf(out, "  done in %.2fs -> %s\n", res.Elapsed.Seconds(), outputFile)
			} else if total == 1 {
				fmt.Fprintf(out, "Successfully converted to %s\n", outputFile)
			}
		} else {
			result.Failed++
			fmt.Fprintf(errw, "  failed: %s\n", res.Err)
		}
	}

	if total > 1 {
		fmt.Fprintf(out, "\nProcessing complete: %d successful, %d failed\n", result.Succeeded, result.Failed)
	}
	return result, nil
}
