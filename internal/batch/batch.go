// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch strips court formatting from every .txt file in a
// directory, writing the results to an output directory. Per-file
// failures are collected rather than aborting the run.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/transcript-engine/internal/transcript"
)

// ErrInputDirNotFound reports a missing input directory. It is returned
// before the output directory is created or any file is touched.
var ErrInputDirNotFound = errors.New("input directory not found")

// transcriptExt is the file extension selecting batch inputs.
const transcriptExt = ".txt"

// FileResult records one successfully stripped file.
type FileResult struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// Failure records one file that could not be processed.
type Failure struct {
	File  string `json:"file" yaml:"file"`
	Error string `json:"error" yaml:"error"`
}

// Result holds the outcome of a batch strip run.
type Result struct {
	Processed []FileResult `json:"processed" yaml:"processed"`
	Failed    []Failure    `json:"failed" yaml:"failed"`

	// Skipped holds run-level notes, e.g. when the input directory
	// contains no transcript files at all.
	Skipped []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Total returns the number of files attempted.
func (r Result) Total() int {
	return len(r.Processed) + len(r.Failed)
}

// HasFailures reports whether any file failed processing.
func (r Result) HasFailures() bool {
	return len(r.Failed) > 0
}

// Strip processes every transcript file directly inside inputDir
// (non-recursive), stripping court formatting and writing a same-named
// file into outputDir. The output directory and any missing ancestors
// are created. Per-file status lines and a summary go to w.
//
// A missing input directory is fatal and wraps ErrInputDirNotFound.
// Everything else is per-file: a file that cannot be read or written is
// recorded in the result and the batch continues. An input directory
// with no transcript files is not an error; the result carries a
// "nothing to do" note and no writes happen.
func Strip(ctx context.Context, inputDir, outputDir string, w io.Writer) (Result, error) {
	var result Result

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return result, fmt.Errorf("%w: %s", ErrInputDirNotFound, inputDir)
		}
		return result, fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != transcriptExt {
			continue
		}
		files = append(files, entry.Name())
	}

	if len(files) == 0 {
		note := fmt.Sprintf("no %s files found in %s", transcriptExt, inputDir)
		result.Skipped = append(result.Skipped, note)
		fmt.Fprintln(w, note)
		return result, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	for _, name := range files {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		inPath := filepath.Join(inputDir, name)
		outPath := filepath.Join(outputDir, name)

		data, err := os.ReadFile(inPath)
		if err != nil {
			result.Failed = append(result.Failed, Failure{File: inPath, Error: err.Error()})
			fmt.Fprintf(w, "failed:   %s (%v)\n", name, err)
			continue
		}

		stripped := transcript.Strip(string(data))

		if err := os.WriteFile(outPath, []byte(stripped), 0o644); err != nil {
			result.Failed = append(result.Failed, Failure{File: inPath, Error: err.Error()})
			fmt.Fprintf(w, "failed:   %s (%v)\n", name, err)
			continue
		}

		result.Processed = append(result.Processed, FileResult{Input: inPath, Output: outPath})
		fmt.Fprintf(w, "stripped: %s\n", name)
	}

	fmt.Fprintf(w, "\nBatch summary: %d stripped, %d failed (total: %d)\n",
		len(result.Processed), len(result.Failed), result.Total())
	return result, nil
}
