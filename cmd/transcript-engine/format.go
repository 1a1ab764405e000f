// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-engine/internal/transcript"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Apply the court filing layout to raw transcript text",
	Long: `Format renders raw transcript text into the court layout: 5 blank
header lines per page, line numbers 1-25 right-aligned in an 11-column
field, double spacing, and a right-aligned page footer. Partial final
pages are padded with number-only lines. Reads the file argument or
stdin; writes to --output or stdout. The generated page count is
reported on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	formatted, pages := transcript.Apply(text)
	if err := writeOutput(cmd, formatted); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Applied formatting: %d page(s) generated\n", pages)
	return nil
}

func init() {
	formatCmd.Flags().StringP("output", "o", "", "write result to file instead of stdout")

	rootCmd.AddCommand(formatCmd)
}
