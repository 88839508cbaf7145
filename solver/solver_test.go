package solver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/slants/rules"
	"github.com/katalvlaran/slants/solver"
)

// puzzle5x5 deduces completely at tier 2; answer5x5 is its unique
// completion.
const (
	puzzle5x5 = "g4a12b12a31113b113a12g"
	answer5x5 = `\//\\/\\\\\\\/\\/\\\\\\//`
)

// puzzle3x3Branching has a unique completion that the rule registry
// alone cannot reach; only the backtracking solver closes it.
const (
	puzzle3x3Branching = "a1b12a2d0a0a"
	answer3x3Branching = `\\\\\/\/\`
)

// DeduceSuite exercises the production-rule solver end to end.
type DeduceSuite struct {
	suite.Suite
}

// TestSolvesCluedPuzzle runs the full registry on a 5x5 puzzle that
// deduction alone completes.
func (s *DeduceSuite) TestSolvesCluedPuzzle() {
	res := solver.Deduce(puzzle5x5, 5, 5, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusSolved, res.Status)
	require.Equal(s.T(), answer5x5, res.Solution)
	require.Equal(s.T(), rules.TierMedium, res.MaxTierUsed)
	require.Positive(s.T(), res.WorkScore)
}

// TestTierCapLimitsRegistry verifies that MaxTier 1 admits only the
// cheap counting rules, which place the cells around the 4 clue and
// then stall.
func (s *DeduceSuite) TestTierCapLimitsRegistry() {
	res := solver.Deduce(puzzle5x5, 5, 5, solver.Options{MaxTier: rules.TierEasy})

	require.Equal(s.T(), solver.StatusUnsolved, res.Status)
	require.Equal(s.T(), rules.TierEasy, res.MaxTierUsed)
	require.Contains(s.T(), res.Solution, ".")
	require.Equal(s.T(), 2, res.WorkScore)
}

// TestCornerClueForcesSingleCell solves the smallest possible puzzle:
// a 1 clue in the corner of a 1x1 board.
func (s *DeduceSuite) TestCornerClueForcesSingleCell() {
	res := solver.Deduce("1c", 1, 1, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusSolved, res.Status)
	require.Equal(s.T(), `\`, res.Solution)
	require.Equal(s.T(), rules.TierEasy, res.MaxTierUsed)
	require.Equal(s.T(), 2, res.WorkScore)
}

// TestBranchingPuzzleStalls pins a puzzle whose unique solution is out
// of reach for every rule, lookahead included: deduction reports
// unsolved with a partial board.
func (s *DeduceSuite) TestBranchingPuzzleStalls() {
	res := solver.Deduce(puzzle3x3Branching, 3, 3, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusUnsolved, res.Status)
	require.Contains(s.T(), res.Solution, ".")
	require.Positive(s.T(), res.WorkScore)
}

// TestMalformedGivens verifies that undecodable input degrades to an
// empty unsolved result instead of a panic.
func (s *DeduceSuite) TestMalformedGivens() {
	cases := map[string]struct {
		givens        string
		width, height int
	}{
		"unexpected rune":   {"x999", 2, 2},
		"too few vertices":  {"1h", 5, 5},
		"too many vertices": {"g4b12b12a31113b113a12g", 5, 5},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			res := solver.Deduce(tc.givens, tc.width, tc.height, solver.DefaultOptions())

			require.Equal(s.T(), solver.StatusUnsolved, res.Status)
			require.Empty(s.T(), res.Solution)
			require.Zero(s.T(), res.WorkScore)
			require.Zero(s.T(), res.MaxTierUsed)
		})
	}
}

// TestDeterministic runs the same solve twice and demands identical
// results, partial boards included.
func (s *DeduceSuite) TestDeterministic() {
	first := solver.Deduce(puzzle3x3Branching, 3, 3, solver.DefaultOptions())
	second := solver.Deduce(puzzle3x3Branching, 3, 3, solver.DefaultOptions())

	require.Equal(s.T(), first, second)
}

// TestSolvedBoardHasNoGaps cross-checks the solved verdict against the
// solution encoding.
func (s *DeduceSuite) TestSolvedBoardHasNoGaps() {
	res := solver.Deduce(puzzle5x5, 5, 5, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusSolved, res.Status)
	require.False(s.T(), strings.Contains(res.Solution, "."))
	require.Len(s.T(), res.Solution, 25)
}

func TestDeduceSuite(t *testing.T) {
	suite.Run(t, new(DeduceSuite))
}
