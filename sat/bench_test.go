package sat_test

import (
	"testing"

	"github.com/katalvlaran/slants/sat"
	"github.com/katalvlaran/slants/solver"
)

// BenchmarkSolve_deduced measures a solve the cheap tiers finish on
// their own, so no CNF instance is ever built.
func BenchmarkSolve_deduced(b *testing.B) {
	opts := solver.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sat.Solve(puzzle5x5, 5, 5, opts)
	}
}

// BenchmarkSolve_cnf measures a solve that reaches the model search,
// encoding and blocking included.
func BenchmarkSolve_cnf(b *testing.B) {
	opts := solver.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sat.Solve(puzzle3x3Branching, 3, 3, opts)
	}
}
