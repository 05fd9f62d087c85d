package domain

import "fmt"

// Mutation selects a controlled-defect mode. Mutated patterns are the
// "invalid" half of a training dataset: structurally plausible kolams with
// one deliberate flaw.
type Mutation string

const (
	// MutationBrokenLoops removes a random subset of curves, leaving
	// interrupted loops behind.
	MutationBrokenLoops Mutation = "broken_loops"

	// MutationAsymmetry thins out one side of the pattern and may scatter a
	// few stray dots near an edge, breaking the mirror symmetry.
	MutationAsymmetry Mutation = "asymmetry"

	// MutationDisplacedDots nudges a third of the dots off the grid.
	MutationDisplacedDots Mutation = "displaced_dots"
)

// Mutations lists all modes in a stable order.
func Mutations() []Mutation {
	return []Mutation{MutationBrokenLoops, MutationAsymmetry, MutationDisplacedDots}
}

// ParseMutation resolves a mode name. The empty string is not a mode.
func ParseMutation(s string) (Mutation, error) {
	switch Mutation(s) {
	case MutationBrokenLoops, MutationAsymmetry, MutationDisplacedDots:
		return Mutation(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMutation, s)
}

func (m Mutation) String() string { return string(m) }
