/*
Package domain contains the core domain models for the kolam engine.

It defines the geometric entities a pattern is made of and the value types
shared across the pipeline. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Pattern: A fully assembled kolam (dots, curves, dimensions, tile matrix).
  - Dot / Curve: The pulli grid and the strokes drawn around it.
  - Matrix: The grid of tile ids a pattern is assembled from.
  - Mutation: The controlled-defect modes used to build invalid datasets.
*/
package domain
