package generator_test

import (
	"testing"

	"github.com/katalvlaran/slants/generator"
)

// BenchmarkRandomSolution measures raw solution drawing, snapshot
// copies included.
func BenchmarkRandomSolution(b *testing.B) {
	opts := generator.DefaultOptions()
	g := generator.New(deduceFn, opts)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.RandomSolution(8, 8)
	}
}

// BenchmarkGenerate measures a full generation cycle: solution, clues,
// three reduction passes with a verification solve per removal.
func BenchmarkGenerate(b *testing.B) {
	opts := generator.DefaultOptions()
	g := generator.New(deduceFn, opts)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(5, 5); err != nil {
			b.Fatal(err)
		}
	}
}
