package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slants/board"
)

// TestBorderTwoVShape covers the edge 2 whose two incident cells must
// both touch, from scratch and with one touch already banked.
func TestBorderTwoVShape(t *testing.T) {
	t.Run("both undecided", func(t *testing.T) {
		b := mustBoard(t, 3, 1, "a2f")

		require.True(t, ruleFn(t, "border_two_v_shape")(b))
		require.Equal(t, board.Slash, b.CellAt(0, 0).Value)
		require.Equal(t, board.Backslash, b.CellAt(1, 0).Value)
	})

	t.Run("one banked", func(t *testing.T) {
		b := mustBoard(t, 3, 1, "a2f")
		mustPlace(t, b, 0, 0, board.Slash)

		require.True(t, ruleFn(t, "border_two_v_shape")(b))
		require.Equal(t, board.Backslash, b.CellAt(1, 0).Value)
	})
}

// TestVPatternWithThree_NeedsBankedTouches: a fresh valley banks no
// touches on the vertex at its open side, so the trigger stays cold
// until other rules have fed it.
func TestVPatternWithThree_NeedsBankedTouches(t *testing.T) {
	b := mustBoard(t, 2, 2, "d3d")
	mustPlace(t, b, 0, 1, board.Backslash)
	mustPlace(t, b, 1, 1, board.Slash)

	require.False(t, ruleFn(t, "v_pattern_with_three")(b))
	require.Equal(t, "..\\/", b.Solution())
}

// TestAdjacentOnes_SharedCellAvoids: once one of two neighboring 1s is
// satisfied, the cell between them must avoid it.
func TestAdjacentOnes_SharedCellAvoids(t *testing.T) {
	b := mustBoard(t, 2, 2, "a1b1d")
	mustPlace(t, b, 0, 0, board.Slash)

	require.True(t, ruleFn(t, "adjacent_ones")(b))
	require.Equal(t, board.Slash, b.CellAt(1, 0).Value)
	require.Len(t, b.UnknownCells(), 2)
}

// TestAdjacentThrees_OuterCellTouches: between two neighboring 3s the
// shared column is banked as suppliers; an outer cell avoiding one 3
// forces its remaining outer cell to touch.
func TestAdjacentThrees_OuterCellTouches(t *testing.T) {
	b := mustBoard(t, 3, 2, "e33e")
	mustPlace(t, b, 0, 0, board.Slash)

	require.True(t, ruleFn(t, "adjacent_threes")(b))
	require.Equal(t, board.Slash, b.CellAt(0, 1).Value)
	require.Len(t, b.UnknownCells(), 4)
}
