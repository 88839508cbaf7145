package sat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/slants/board"
	"github.com/katalvlaran/slants/rules"
	"github.com/katalvlaran/slants/sat"
	"github.com/katalvlaran/slants/solver"
)

// 5x5 puzzle solvable by deduction alone, with its unique solution.
const (
	puzzle5x5 = "g4a12b12a31113b113a12g"
	answer5x5 = `\//\\/\\\\\\\/\\/\\\\\\//`
)

// 3x3 puzzle with a unique solution that stalls every deduction rule,
// so only the CNF phase can finish it.
const (
	puzzle3x3Branching = "a1b12a2d0a0a"
	answer3x3Branching = `\\\\\/\/\`
)

// replaySolution places a rendered solution on a fresh board, failing
// the test on any loop, and returns the board for clue checks.
func replaySolution(t *testing.T, givens string, width, height int, solution string) *board.Board {
	b, err := board.New(width, height, givens)
	require.NoError(t, err)
	for i, r := range solution {
		v := board.Slash
		if r == '\\' {
			v = board.Backslash
		}
		require.NoError(t, b.PlaceValue(b.CellAt(i%width, i/width), v))
	}
	return b
}

type SolveSuite struct {
	suite.Suite
}

func (s *SolveSuite) TestDeductionAloneSolves() {
	res := sat.Solve(puzzle5x5, 5, 5, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusSolved, res.Status)
	require.Equal(s.T(), answer5x5, res.Solution)
	require.Equal(s.T(), 20, res.WorkScore)
	require.Equal(s.T(), rules.TierMedium, res.MaxTierUsed)
}

func (s *SolveSuite) TestCNFFinishesStalledPuzzle() {
	res := sat.Solve(puzzle3x3Branching, 3, 3, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusSolved, res.Status)
	require.Equal(s.T(), answer3x3Branching, res.Solution)
	require.Equal(s.T(), rules.TierSearch, res.MaxTierUsed)
	require.Greater(s.T(), res.WorkScore, 50)
}

func (s *SolveSuite) TestTierCapSkipsCNF() {
	opts := solver.Options{MaxTier: rules.TierMedium}
	res := sat.Solve(puzzle3x3Branching, 3, 3, opts)

	require.Equal(s.T(), solver.StatusUnsolved, res.Status)
	require.Equal(s.T(), `..\../\/\`, res.Solution)
	require.Equal(s.T(), 21, res.WorkScore)
	require.Equal(s.T(), rules.TierMedium, res.MaxTierUsed)
}

func (s *SolveSuite) TestAmbiguousPuzzleReportsMult() {
	res := sat.Solve("1h", 2, 2, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusMult, res.Status)
	require.Equal(s.T(), rules.TierSearch, res.MaxTierUsed)
	require.Equal(s.T(), 71, res.WorkScore)

	// The reported solution is one of the valid completions.
	require.Len(s.T(), res.Solution, 4)
	require.NotContains(s.T(), res.Solution, ".")
	b := replaySolution(s.T(), "1h", 2, 2, res.Solution)
	require.True(s.T(), b.IsValidSolution())
}

func (s *SolveSuite) TestUnsatisfiableClue() {
	// A corner clue of 4 has a single incident cell; the instance is
	// unsatisfiable on the first call.
	res := sat.Solve("4c", 1, 1, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusUnsolved, res.Status)
	require.Equal(s.T(), ".", res.Solution)
	require.Equal(s.T(), 55, res.WorkScore)
	require.Equal(s.T(), rules.TierSearch, res.MaxTierUsed)
}

func (s *SolveSuite) TestMalformedGivens() {
	res := sat.Solve("x999", 2, 2, solver.DefaultOptions())

	require.Equal(s.T(), solver.StatusUnsolved, res.Status)
	require.Empty(s.T(), res.Solution)
	require.Zero(s.T(), res.WorkScore)
	require.Zero(s.T(), res.MaxTierUsed)
}

func (s *SolveSuite) TestAgreesWithSearch() {
	got := sat.Solve(puzzle3x3Branching, 3, 3, solver.DefaultOptions())
	want := solver.Search(puzzle3x3Branching, 3, 3, solver.DefaultOptions())

	require.Equal(s.T(), want.Status, got.Status)
	require.Equal(s.T(), want.Solution, got.Solution)
}

func (s *SolveSuite) TestDeterministic() {
	a := sat.Solve("1h", 2, 2, solver.DefaultOptions())
	b := sat.Solve("1h", 2, 2, solver.DefaultOptions())

	require.Equal(s.T(), a, b)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}
