// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/transcript-engine/internal/batch"
	"github.com/pdiddy/transcript-engine/internal/history"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch [input-dir] [output-dir]",
	Short: "Strip every transcript in a folder",
	Long: `Batch strips court formatting from every .txt file directly inside the
input directory and writes same-named files to the output directory,
creating it if needed. One file failing does not stop the rest; the run
exits non-zero if any file failed. Directories default to the batch
section of the config file ("original" and "stripped").

Each run is recorded in the history database unless --no-history is set.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := batchConfig(args)

	result, err := batch.Strip(cmd.Context(), cfg.InputDir, cfg.OutputDir, os.Stdout)
	if err != nil {
		return err
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if !noHistory {
		store, err := history.NewStore(historyConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		runID, err := store.RecordRun(cmd.Context(), cfg.InputDir, cfg.OutputDir, result)
		if err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		fmt.Printf("Recorded as run %d\n", runID)
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed", len(result.Failed))
	}
	return nil
}

// batchConfig resolves the batch directories from positional arguments,
// falling back to config file values.
func batchConfig(args []string) types.BatchConfig {
	cfg := types.BatchConfig{
		InputDir:  viper.GetString("batch.input_dir"),
		OutputDir: viper.GetString("batch.output_dir"),
	}
	if len(args) > 0 {
		cfg.InputDir = args[0]
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}
	return cfg
}

// historyConfig resolves history store settings from the --history-dir
// flag, falling back to config file values.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	dir, _ := cmd.Flags().GetString("history-dir")
	if dir == "" {
		dir = viper.GetString("history.history_dir")
	}
	return types.HistoryConfig{
		HistoryDir: dir,
		MaxRuns:    viper.GetInt("history.max_runs"),
	}
}

func init() {
	batchCmd.Flags().Bool("no-history", false, "do not record this run in the history database")
	batchCmd.Flags().String("history-dir", "", "directory for the history database (default: history)")

	rootCmd.AddCommand(batchCmd)
}
