package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kolamkit/kolam/pkg/palette"
)

var palettesCmd = &cobra.Command{
	Use:     "palettes",
	Aliases: []string{"list-palettes"},
	Short:   "List the available color palettes",
	Run: func(cmd *cobra.Command, args []string) {
		tty := term.IsTerminal(int(os.Stdout.Fd()))
		profile := termenv.ColorProfile()

		swatch := func(hex string) string {
			if !tty {
				return ""
			}
			return termenv.String("██").Foreground(profile.Color(hex)).String() + " "
		}

		fmt.Println("Available Color Palettes:")
		fmt.Println(strings.Repeat("=", 40))
		for _, name := range palette.Names() {
			scheme, err := palette.Get(name)
			if err != nil {
				fail(err)
			}
			fmt.Printf("%-10s | Dots: %s%-8s | Lines: %s%-8s | BG: %s%s\n",
				strings.ToUpper(name),
				swatch(scheme.Dots), scheme.Dots,
				swatch(scheme.Lines), scheme.Lines,
				swatch(scheme.Background), scheme.Background)
		}
		fmt.Println(strings.Repeat("=", 40))
		fmt.Println("Use with: --palette <name>")
	},
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}
