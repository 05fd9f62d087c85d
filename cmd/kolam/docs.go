package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

//go:embed docs.md
var docsMarkdown string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the kolam pattern guide",
	Long:  `Renders a short guide to kolam patterns and the generator in the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Plain markdown when piped.
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(docsMarkdown)
			return
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(), // Automatically detect light/dark background
		)
		if err != nil {
			fmt.Print(docsMarkdown)
			return
		}

		out, err := r.Render(docsMarkdown)
		if err != nil {
			fmt.Print(docsMarkdown)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
