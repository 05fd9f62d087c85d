package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolamkit/kolam"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kolam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kolam version %s\n", strings.TrimSpace(kolam.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
