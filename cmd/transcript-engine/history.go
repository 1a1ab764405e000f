// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-engine/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded batch strip runs",
	Long: `History lists batch strip runs recorded in the local SQLite database,
shows the per-file outcomes of a single run, and exports the full
history as YAML or JSON.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%4d  %s  %s -> %s  %d stripped, %d failed\n",
			r.ID, r.StartedAt.Format(time.RFC3339),
			r.InputDir, r.OutputDir, r.Processed, r.Failed)
	}
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the per-file outcomes of one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	runID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	files, err := store.RunFiles(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no outcomes recorded for run %d", runID)
	}

	for _, f := range files {
		switch f.Status {
		case history.StatusStripped:
			fmt.Printf("stripped: %s -> %s\n", f.File, f.Output)
		default:
			fmt.Printf("failed:   %s (%s)\n", f.File, f.Error)
		}
	}
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run history as YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	return store.Export(cmd.Context(), os.Stdout, format)
}

func init() {
	// Shared flag on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().String("history-dir", "", "directory for the history database (default: history)")

	historyListCmd.Flags().Int("limit", 0, "maximum runs to list (0 = configured default)")
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
