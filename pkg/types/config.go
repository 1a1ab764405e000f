// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration structs shared between the CLI and
// the internal packages.
package types

// BatchConfig holds settings for the batch strip stage.
type BatchConfig struct {
	// InputDir is the directory scanned for formatted .txt transcripts
	// (default "original").
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory stripped transcripts are written to
	// (default "stripped").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// HistoryConfig holds settings for the batch run history store.
type HistoryConfig struct {
	// HistoryDir is the directory containing history.db
	// (default "history").
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxRuns is the default maximum number of runs listed (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// Config groups all stage configurations for the tool.
type Config struct {
	Batch   BatchConfig   `json:"batch" yaml:"batch"`
	History HistoryConfig `json:"history" yaml:"history"`
}
