package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kolamkit/kolam"
	"github.com/kolamkit/kolam/pkg/palette"
	"github.com/kolamkit/kolam/pkg/render"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Render one kolam in every color palette",
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("size")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		gen, err := kolam.New(kolam.WithLogger(cmdLogger(cmd)))
		if err != nil {
			fail(err)
		}

		p, err := gen.Generate(context.Background(), size)
		if err != nil {
			fail(err)
		}

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fail(err)
		}

		images := render.Variants(p, render.Options{Width: width, Height: height})

		fmt.Printf("Generated %d color variants:\n", len(images))
		for _, name := range palette.Names() {
			path := filepath.Join(outputDir, fmt.Sprintf("kolam_%s.png", name))
			if err := writePNG(path, images[name]); err != nil {
				fail(err)
			}
			fmt.Printf("   %s\n", path)
		}
	},
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(variantsCmd)

	variantsCmd.Flags().Int("size", 7, "Size of kolam (3-15)")
	variantsCmd.Flags().String("output-dir", "variants", "Directory for the variant images")
	variantsCmd.Flags().Int("width", 800, "Image width in pixels")
	variantsCmd.Flags().Int("height", 800, "Image height in pixels")
}
