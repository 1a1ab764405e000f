// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-engine/internal/transcript"
)

var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Remove court formatting from a transcript",
	Long: `Strip removes line numbers, page headers, double spacing, and page
footers from a formatted transcript, recovering the raw text. Speaker
and Q/A indentation inside each line is preserved. Reads the file
argument or stdin; writes to --output or stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrip,
}

func runStrip(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}
	return writeOutput(cmd, transcript.Strip(text))
}

// --- shared helpers ---

// readInput returns the content of the file argument, or stdin when no
// argument is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// writeOutput writes text to the --output file when set, otherwise to
// stdout with a trailing newline.
func writeOutput(cmd *cobra.Command, text string) error {
	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

func init() {
	stripCmd.Flags().StringP("output", "o", "", "write result to file instead of stdout")

	rootCmd.AddCommand(stripCmd)
}
