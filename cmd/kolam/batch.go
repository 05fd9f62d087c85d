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

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate kolams across a range of sizes",
	Run: func(cmd *cobra.Command, args []string) {
		minSize, _ := cmd.Flags().GetInt("min-size")
		maxSize, _ := cmd.Flags().GetInt("max-size")
		count, _ := cmd.Flags().GetInt("count")
		prefix, _ := cmd.Flags().GetString("prefix")
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

		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fail(err)
		}

		total := 0
		if maxSize >= minSize {
			total = (maxSize - minSize + 1) * count
		}
		fmt.Printf("Generating batch of %d kolams...\n", total)

		opts := render.Options{Width: width, Height: height}
		n := 0
		for size := minSize; size <= maxSize; size++ {
			for i := 0; i < count; i++ {
				p, err := gen.Generate(context.Background(), size)
				if err != nil {
					fail(err)
				}

				name := fmt.Sprintf("%s_size_%02d.png", prefix, size)
				if count > 1 {
					name = fmt.Sprintf("%s_size_%02d_%02d.png", prefix, size, i)
				}
				path := filepath.Join(outputDir, name)
				if err := render.SavePNG(path, p, scheme, opts); err != nil {
					fail(err)
				}

				n++
				fmt.Printf("   [%d/%d] Generated %s\n", n, total, path)
			}
		}

		fmt.Println("Batch generation complete")
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("min-size", 3, "Minimum kolam size")
	batchCmd.Flags().Int("max-size", 10, "Maximum kolam size")
	batchCmd.Flags().Int("count", 1, "Kolams per size")
	batchCmd.Flags().String("prefix", "kolam", "Filename prefix for batch files")
	batchCmd.Flags().String("output-dir", ".", "Directory for the batch images")
	batchCmd.Flags().String("palette", "classic", "Color palette (run \"palettes\" to see options)")
	batchCmd.Flags().Int("width", 800, "Image width in pixels")
	batchCmd.Flags().Int("height", 800, "Image height in pixels")
}
