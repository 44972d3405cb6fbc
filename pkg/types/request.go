// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Request describes one file conversion. It is built once by the caller and
// is immutable for the duration of the pipeline run.
type Request struct {
	// InputPath is the document to convert.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is where the Markdown result is written. The parent
	// directory is created if absent; an existing file is overwritten.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// Result is the outcome of processing one file. The pipeline always returns
// a Result; faults never propagate to the caller.
type Result struct {
	// Success reports whether the output Markdown was written.
	Success bool `json:"success" yaml:"success"`

	// Err carries the failure message when Success is false.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`

	// Elapsed is the wall-clock processing time, measured from pipeline
	// entry, populated on both success and failure.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}
