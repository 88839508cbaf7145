package generator

import (
	"math/rand"

	"github.com/katalvlaran/slants/rules"
	"github.com/katalvlaran/slants/solver"
)

// SolveFunc is the solver every generated puzzle is verified against.
type SolveFunc func(givens string, width, height, maxTier int) solver.Result

// Options configure one Generator.
//
//   - Seed:            seed of the private random stream.
//   - ReductionPasses: independent clue-reduction passes per puzzle.
//   - Symmetry:        remove clues in 180-degree pairs.
//   - MaxTier:         tier cap for every verification solve.
type Options struct {
	Seed            int64
	ReductionPasses int
	Symmetry        bool
	MaxTier         int
}

// DefaultOptions returns the generation profile: three reduction passes
// under the medium tier cap, so every accepted puzzle stays solvable
// without branching.
func DefaultOptions() Options {
	return Options{ReductionPasses: 3, MaxTier: rules.TierMedium}
}

// Puzzle is one generated, verified puzzle. WorkScore and MaxTierUsed
// come from the final verification solve and grade its difficulty.
type Puzzle struct {
	Givens      string
	Solution    string
	Clues       int
	WorkScore   int
	MaxTierUsed int
}

// Generator produces puzzles against one solver and one seeded random
// stream. Not safe for concurrent use; the stream is stateful.
type Generator struct {
	solve SolveFunc
	rng   *rand.Rand
	opts  Options
}

// New returns a Generator bound to the given solve function.
func New(solve SolveFunc, opts Options) *Generator {
	return &Generator{
		solve: solve,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		opts:  opts,
	}
}
