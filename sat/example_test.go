// File: sat/example_test.go
package sat_test

import (
	"fmt"

	"github.com/katalvlaran/slants/sat"
	"github.com/katalvlaran/slants/solver"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve demonstrates finishing a deduction-resistant puzzle with
// the CNF phase: every production rule stalls on this 3x3 board, and
// the model search recovers its unique loop-free completion.
// Scenario:
//
//   - Cheap tiers fill five of the nine cells first.
//   - The remaining four become one variable each; cycle-closing models
//     are blocked until the true solution surfaces.
//
// Complexity: O(V) clauses plus the model iterations
func ExampleSolve() {
	res := sat.Solve("a1b12a2d0a0a", 3, 3, solver.DefaultOptions())
	fmt.Println(res.Status)
	fmt.Println(res.Solution)
	// Output:
	// solved
	// \\\\\/\/\
}

////////////////////////////////////////////////////////////////////////////////
// Example: ambiguity
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve_ambiguous demonstrates the second model phase: once a
// loop-free model is found it is blocked, and any further loop-free
// model proves the puzzle ambiguous.
// Scenario:
//
//   - Running the CNF phase always reports TierSearch.
func ExampleSolve_ambiguous() {
	res := sat.Solve("1h", 2, 2, solver.DefaultOptions())
	fmt.Println(res.Status, res.MaxTierUsed)
	// Output: mult 3
}
