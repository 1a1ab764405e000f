// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-engine/internal/transcript"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a formatted sample deposition page",
	Long: `Sample prints one fully formatted page of a deposition transcript,
useful for trying the strip command or seeding a test folder.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(transcript.Sample())
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
