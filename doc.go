/*
Package kolam procedurally generates kolam patterns, the South Indian floor
art drawn as continuous loops around a grid of dots.

A pattern is built in three stages: a greedy constraint solver fills a
quarter grid with tiles from a 16-tile curve library so that neighboring
curves connect, a composer mirrors the quarter into a 4-fold-symmetric
matrix, and an assembler lays the matrix out as dots and curves on a fixed
grid. A mutator can then derive deliberately flawed variants (broken loops,
asymmetry, displaced dots) for building valid/invalid image datasets.

# Usage

Seed the generator for reproducible output; leave it unseeded for a fresh
pattern each run.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/kolamkit/kolam"
	)

	func main() {
		gen, err := kolam.New(kolam.WithSeed(42))
		if err != nil {
			log.Fatal(err)
		}

		pattern, err := gen.Generate(context.Background(), 7)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s: %d dots, %d curves\n",
			pattern.Name, len(pattern.Dots), len(pattern.Curves))
	}

Rendering to PNG lives in pkg/render, color schemes in pkg/palette, and
dataset construction in pkg/dataset. Generated patterns can be persisted
behind the pkg/ports.PatternStore interface; pkg/adapters provides memory
and redis implementations.
*/
package kolam
