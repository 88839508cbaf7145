// File: generator/example_test.go
package generator_test

import (
	"fmt"

	"github.com/katalvlaran/slants/generator"
	"github.com/katalvlaran/slants/solver"
)

////////////////////////////////////////////////////////////////////////////////
// Example: clue identity
////////////////////////////////////////////////////////////////////////////////

// ExampleVertexClues demonstrates the touch-count identity: every
// diagonal touches exactly two vertices, so a full clue set sums to
// twice the cell count no matter which solution was drawn.
// Scenario:
//
//   - Random 4x4 solution, all 25 vertex clues derived from it.
func ExampleVertexClues() {
	g := generator.New(deduceFn, generator.DefaultOptions())
	solution := g.RandomSolution(4, 4)
	clues := generator.VertexClues(4, 4, solution)

	sum := 0
	for _, c := range clues {
		sum += c
	}
	fmt.Println(len(solution), len(clues), sum)
	// Output: 16 25 32
}

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerator_Generate demonstrates the generation contract: the
// puzzle that comes back always re-solves to its own recorded solution
// under the generation tier cap.
// Scenario:
//
//   - Defaults: three reduction passes, medium tier, no symmetry.
func ExampleGenerator_Generate() {
	g := generator.New(deduceFn, generator.DefaultOptions())
	p, err := g.Generate(4, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	verify := solver.Deduce(p.Givens, 4, 4, solver.Options{MaxTier: 2})
	fmt.Println(verify.Status, verify.Solution == p.Solution, len(p.Solution))
	// Output: solved true 16
}
