// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcript-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the transcript-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "transcript-engine",
	Short: "Toggle deposition transcripts between raw and court-formatted text",
	Long: `transcript-engine converts legal deposition transcripts between a raw
plain-text form and the court filing layout: page headers, right-aligned
line numbers 1-25, double spacing, and numeric page footers.

Use strip to recover raw text, format to apply the court layout, and
batch to strip every transcript in a folder. Batch runs are recorded in
a local history database for later inspection.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transcript-engine.yaml or ~/.config/transcript-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcript-engine"))
		}
	}

	viper.SetDefault("batch.input_dir", "original")
	viper.SetDefault("batch.output_dir", "stripped")
	viper.SetDefault("history.history_dir", "history")
	viper.SetDefault("history.max_runs", 20)

	viper.SetEnvPrefix("TRANSCRIPT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
