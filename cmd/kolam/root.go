package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolamkit/kolam/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "kolam",
	Short: "Kolam generates traditional South Indian dot-grid patterns",
	Long: `Kolam generates sikku kolam patterns: a grid of pulli (dots) with
continuous loops woven around every dot, fourfold symmetric the way
street artists draw them at dawn.

Patterns can be rendered to PNG, animated frame by frame, batched into
labelled training datasets, served over HTTP or exposed to AI agents
through MCP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show detailed information")
}

// cmdLogger builds the logger shared by every subcommand.
func cmdLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.FromVerbose(verbose)
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
