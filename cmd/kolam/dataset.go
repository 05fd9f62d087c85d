package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolamkit/kolam"
	"github.com/kolamkit/kolam/pkg/dataset"
	"github.com/kolamkit/kolam/pkg/domain"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build a labelled kolam training dataset",
	Long: `Builds a dataset of rendered kolam images for training classifiers.
Valid images are clean patterns; invalid ones carry a controlled defect
(broken loops, asymmetry or displaced dots). Every file can be recorded
in a sqlite manifest and exported as a CSV label file.`,
	Run: func(cmd *cobra.Command, args []string) {
		outputDir, _ := cmd.Flags().GetString("output-dir")
		count, _ := cmd.Flags().GetInt("count")
		sizes, _ := cmd.Flags().GetIntSlice("sizes")
		validOnly, _ := cmd.Flags().GetBool("valid")
		invalidOnly, _ := cmd.Flags().GetBool("invalid")
		mutation, _ := cmd.Flags().GetString("mutation")
		side, _ := cmd.Flags().GetInt("side")
		seed, _ := cmd.Flags().GetInt64("seed")
		manifestPath, _ := cmd.Flags().GetString("manifest")
		labelsPath, _ := cmd.Flags().GetString("labels")

		if validOnly && invalidOnly {
			fail(errors.New("--valid and --invalid cannot be used together"))
		}
		if labelsPath != "" && manifestPath == "" {
			fail(errors.New("--labels needs --manifest"))
		}

		var mode domain.Mutation
		if mutation != "" {
			parsed, err := domain.ParseMutation(mutation)
			if err != nil {
				fail(err)
			}
			mode = parsed
		}

		logger := cmdLogger(cmd)

		gen, err := kolam.New(kolam.WithLogger(logger))
		if err != nil {
			fail(err)
		}

		var manifest *dataset.Manifest
		if manifestPath != "" {
			manifest, err = dataset.OpenManifest(manifestPath)
			if err != nil {
				fail(err)
			}
			defer manifest.Close()
		}

		builder := dataset.New(dataset.Config{
			Generator: gen,
			Manifest:  manifest,
			Logger:    logger,
			Seed:      seed,
		})

		spec := dataset.Spec{
			OutputDir: outputDir,
			Sizes:     sizes,
			Count:     count,
			Mutation:  mode,
			Side:      side,
		}

		ctx := context.Background()
		switch {
		case validOnly:
			files, err := builder.BuildValid(ctx, spec)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Generated %d valid images in %s\n", len(files), outputDir)
		case invalidOnly:
			files, err := builder.BuildInvalid(ctx, spec)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Generated %d invalid images in %s\n", len(files), outputDir)
		default:
			sum, err := builder.BuildComplete(ctx, spec)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Dataset complete: %d valid and %d invalid images in %s\n",
				len(sum.Valid), len(sum.Invalid), outputDir)
		}

		if labelsPath != "" {
			f, err := os.Create(labelsPath)
			if err != nil {
				fail(err)
			}
			if err := manifest.ExportCSV(f); err != nil {
				f.Close()
				fail(err)
			}
			if err := f.Close(); err != nil {
				fail(err)
			}
			fmt.Printf("Labels exported to %s\n", labelsPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)

	datasetCmd.Flags().String("output-dir", "dataset", "Directory for the rendered images")
	datasetCmd.Flags().Int("count", 5, "Patterns per size and palette")
	datasetCmd.Flags().IntSlice("sizes", nil, "Grid sizes to draw (default 3,5,7,9,11,13,15)")
	datasetCmd.Flags().Bool("valid", false, "Build only the valid half")
	datasetCmd.Flags().Bool("invalid", false, "Build only the invalid half")
	datasetCmd.Flags().String("mutation", "", "Fix the defect mode for invalid images")
	datasetCmd.Flags().Int("side", 0, "Fix the square image resolution (default samples 512, 768, 1024)")
	datasetCmd.Flags().Int64("seed", 0, "Seed for a reproducible build")
	datasetCmd.Flags().String("manifest", "", "Record every image in this sqlite manifest")
	datasetCmd.Flags().String("labels", "", "Export a CSV label file (needs --manifest)")
}
