package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slants/board"
	"github.com/katalvlaran/slants/rules"
)

// mustBoard builds a board or fails the test.
func mustBoard(tb testing.TB, width, height int, givens string) *board.Board {
	tb.Helper()
	b, err := board.New(width, height, givens)
	require.NoError(tb, err)
	return b
}

// mustPlace commits a value or fails the test.
func mustPlace(tb testing.TB, b *board.Board, x, y int, v board.Value) {
	tb.Helper()
	require.NoError(tb, b.PlaceValue(b.CellAt(x, y), v))
}

// ruleFn looks a deduction up by registry name.
func ruleFn(tb testing.TB, name string) rules.Func {
	tb.Helper()
	for _, r := range rules.List() {
		if r.Name == name {
			return r.Fn
		}
	}
	tb.Fatalf("rule %q not registered", name)
	return nil
}

// TestList_CostAscendingOrder pins the registry: cheapest first, the
// lookahead pair last, every entry callable.
func TestList_CostAscendingOrder(t *testing.T) {
	rs := rules.List()
	require.Len(t, rs, 15)
	require.Equal(t, "clue_finish_b", rs[0].Name)
	require.Equal(t, "one_step_lookahead", rs[len(rs)-1].Name)

	for i, r := range rs {
		require.NotNil(t, r.Fn, "rule %q has no function", r.Name)
		require.GreaterOrEqual(t, r.Tier, rules.TierEasy)
		require.LessOrEqual(t, r.Tier, rules.TierSearch)
		if i > 0 {
			require.GreaterOrEqual(t, r.Score, rs[i-1].Score,
				"rule %q breaks cost order", r.Name)
		}
	}
}

// TestList_ReturnsFreshCopy guards against callers mutating the shared
// registry through the returned slice.
func TestList_ReturnsFreshCopy(t *testing.T) {
	rs := rules.List()
	rs[0].Name = "clobbered"
	rs[0].Fn = nil

	again := rules.List()
	require.Equal(t, "clue_finish_b", again[0].Name)
	require.NotNil(t, again[0].Fn)
}

// TestFilterTier_Boundaries checks the tier cut points and that
// filtering preserves relative order.
func TestFilterTier_Boundaries(t *testing.T) {
	all := rules.List()

	easy := rules.FilterTier(all, rules.TierEasy)
	require.Len(t, easy, 3)
	require.Equal(t, "clue_finish_b", easy[0].Name)
	require.Equal(t, "no_loops", easy[2].Name)

	medium := rules.FilterTier(all, rules.TierMedium)
	require.Len(t, medium, 13)
	require.Equal(t, "simon_unified", medium[len(medium)-1].Name)

	require.Len(t, rules.FilterTier(all, rules.TierSearch), len(all))
}

// TestSearchList_OmitsLookahead verifies the between-branches registry:
// no trial rules, and the clue-2 loop probe regraded to the easy tier.
func TestSearchList_OmitsLookahead(t *testing.T) {
	rs := rules.SearchList()
	require.Len(t, rs, 13)

	for _, r := range rs {
		require.NotEqual(t, "trial_clue_violation", r.Name)
		require.NotEqual(t, "one_step_lookahead", r.Name)
		if r.Name == "loop_avoidance_2" {
			require.Equal(t, rules.TierEasy, r.Tier)
		}
	}
}
