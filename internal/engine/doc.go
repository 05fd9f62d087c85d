/*
Package engine implements the kolam generation pipeline.

The pipeline has four stages, each pure except for the injected random
source:

  - solveQuarter: greedy one-pass constraint fill of a quarter grid with
    tile ids, honoring down/right connector compatibility.
  - compose: mirrors the quarter into a 4-fold-symmetric full matrix using
    the horizontal and vertical involution permutations.
  - Assemble: converts a matrix plus the tile library into drawable
    geometry (dots and curves on a fixed-spacing grid).
  - Mutate: derives controlled-defect variants for invalid datasets.

The connector tables in tables.go are fixed constants calibrated to the
16-tile library shipped in pkg/tiles; they are not derived at runtime.
*/
package engine
