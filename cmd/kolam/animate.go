package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kolamkit/kolam"
	"github.com/kolamkit/kolam/pkg/palette"
	"github.com/kolamkit/kolam/pkg/render"
)

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Render progressive animation frames of a kolam",
	Long: `Renders the drawing of a kolam as numbered PNG frames, from the
empty canvas to the finished pattern. Stitch them into a GIF with a
tool like ImageMagick.`,
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetInt("size")
		frames, _ := cmd.Flags().GetInt("frames")
		delay, _ := cmd.Flags().GetInt("delay")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		paletteName, _ := cmd.Flags().GetString("palette")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		scheme, err := palette.Get(paletteName)
		if err != nil {
			fail(err)
		}

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

		images := render.Frames(p, scheme, frames, render.Options{Width: width, Height: height})
		for i, img := range images {
			path := filepath.Join(outputDir, fmt.Sprintf("frame_%03d.png", i))
			if err := writePNG(path, img); err != nil {
				fail(err)
			}
		}

		fmt.Printf("Generated %d animation frames in %s\n", len(images), outputDir)
		fmt.Println("Create an animated GIF with ImageMagick:")
		fmt.Printf("   convert -delay %d %s kolam.gif\n", delay, filepath.Join(outputDir, "frame_*.png"))
	},
}

func init() {
	rootCmd.AddCommand(animateCmd)

	animateCmd.Flags().Int("size", 7, "Size of kolam (3-15)")
	animateCmd.Flags().Int("frames", 20, "Number of animation frames")
	animateCmd.Flags().Int("delay", 10, "Delay between frames (for ImageMagick)")
	animateCmd.Flags().String("output-dir", "frames", "Directory for the frame images")
	animateCmd.Flags().String("palette", "classic", "Color palette (run \"palettes\" to see options)")
	animateCmd.Flags().Int("width", 800, "Image width in pixels")
	animateCmd.Flags().Int("height", 800, "Image height in pixels")
}
