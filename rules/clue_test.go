package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slants/board"
)

// TestClueFinishB_AvoidsSatisfiedVertex: a 0 clue is born satisfied, so
// its only incident cell must avoid it.
func TestClueFinishB_AvoidsSatisfiedVertex(t *testing.T) {
	b := mustBoard(t, 1, 1, "0c")

	require.True(t, ruleFn(t, "clue_finish_b")(b))
	require.Equal(t, board.Slash, b.CellAt(0, 0).Value)
	require.True(t, b.IsValidSolution())
}

// TestClueFinishA_CompletesNeedyVertex: the clue needs exactly as many
// touches as it has undecided neighbors, so all of them touch.
func TestClueFinishA_CompletesNeedyVertex(t *testing.T) {
	b := mustBoard(t, 1, 1, "1c")

	require.True(t, ruleFn(t, "clue_finish_a")(b))
	require.Equal(t, board.Backslash, b.CellAt(0, 0).Value)
	require.True(t, b.IsValidSolution())
}

// TestEdgeClueConstraints_SaturatedBorderVertex: an edge vertex whose
// clue equals its cell count forces every incident cell to touch.
func TestEdgeClueConstraints_SaturatedBorderVertex(t *testing.T) {
	b := mustBoard(t, 2, 1, "a2d")

	require.True(t, ruleFn(t, "edge_clue_constraints")(b))
	require.Equal(t, "/\\", b.Solution())
	require.True(t, b.IsValidSolution())
}

// TestEdgeClueConstraints_Unsaturated: a border clue below the cell
// count leaves the vertex alone.
func TestEdgeClueConstraints_Unsaturated(t *testing.T) {
	b := mustBoard(t, 2, 1, "a1d")

	require.False(t, ruleFn(t, "edge_clue_constraints")(b))
	require.Len(t, b.UnknownCells(), 2)
}
