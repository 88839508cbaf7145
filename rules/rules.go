package rules

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/slants/board"
)

// List returns the deduction registry in cost-ascending order. The
// slice is a fresh copy on every call; callers may filter or truncate
// it without affecting other solves.
func List() []Rule {
	return []Rule{
		{"clue_finish_b", 1, TierEasy, ruleClueFinishB},
		{"clue_finish_a", 2, TierEasy, ruleClueFinishA},
		{"no_loops", 2, TierEasy, ruleNoLoops},
		{"edge_clue_constraints", 2, TierMedium, ruleEdgeClueConstraints},
		{"border_two_v_shape", 3, TierMedium, ruleBorderTwoVShape},
		{"loop_avoidance_2", 5, TierMedium, ruleLoopAvoidance2},
		{"v_pattern_with_three", 6, TierMedium, ruleVPatternWithThree},
		{"adjacent_ones", 8, TierMedium, ruleAdjacentOnes},
		{"adjacent_threes", 8, TierMedium, ruleAdjacentThrees},
		{"dead_end_avoidance", 9, TierMedium, ruleDeadEndAvoidance},
		{"equivalence_classes", 9, TierMedium, ruleEquivalenceClasses},
		{"vbitmap_propagation", 9, TierMedium, ruleVBitmapPropagation},
		{"simon_unified", 9, TierMedium, ruleSimonUnified},
		{"trial_clue_violation", 10, TierSearch, ruleTrialClueViolation},
		{"one_step_lookahead", 15, TierSearch, ruleOneStepLookahead},
	}
}

// SearchList returns the registry applied between search branches. The
// lookahead rules are absent (branching subsumes them), and the clue-2
// loop probe is graded easy because search pays for its own trials.
func SearchList() []Rule {
	return []Rule{
		{"clue_finish_b", 1, TierEasy, ruleClueFinishB},
		{"clue_finish_a", 2, TierEasy, ruleClueFinishA},
		{"no_loops", 2, TierEasy, ruleNoLoops},
		{"edge_clue_constraints", 2, TierMedium, ruleEdgeClueConstraints},
		{"border_two_v_shape", 3, TierMedium, ruleBorderTwoVShape},
		{"loop_avoidance_2", 5, TierEasy, ruleLoopAvoidance2},
		{"v_pattern_with_three", 6, TierMedium, ruleVPatternWithThree},
		{"adjacent_ones", 8, TierMedium, ruleAdjacentOnes},
		{"adjacent_threes", 8, TierMedium, ruleAdjacentThrees},
		{"dead_end_avoidance", 9, TierMedium, ruleDeadEndAvoidance},
		{"equivalence_classes", 9, TierMedium, ruleEquivalenceClasses},
		{"vbitmap_propagation", 9, TierMedium, ruleVBitmapPropagation},
		{"simon_unified", 9, TierMedium, ruleSimonUnified},
	}
}

// FilterTier returns the rules at or below maxTier, preserving order.
func FilterTier(rs []Rule, maxTier int) []Rule {
	return lo.Filter(rs, func(r Rule, _ int) bool {
		return r.Tier <= maxTier
	})
}

// touchValue is the orientation whose diagonal touches the vertex this
// adjacency came from.
func touchValue(adj board.AdjacentCell) board.Value {
	if adj.SlashTouches {
		return board.Slash
	}
	return board.Backslash
}

// avoidValue is the orientation whose diagonal avoids the vertex this
// adjacency came from.
func avoidValue(adj board.AdjacentCell) board.Value {
	if adj.SlashTouches {
		return board.Backslash
	}
	return board.Slash
}

// unknownNeighbors returns the still-undecided cells incident to the
// vertex, each with its touching orientation.
func unknownNeighbors(b *board.Board, v *board.Vertex) []board.AdjacentCell {
	var out []board.AdjacentCell
	for _, adj := range b.AdjacentCells(v) {
		if adj.Cell.Value == board.Unknown {
			out = append(out, adj)
		}
	}
	return out
}

// place commits the orientation when it does not close a loop and
// reports whether a value was actually written.
func place(b *board.Board, c *board.Cell, v board.Value) bool {
	if b.WouldFormLoop(c, v) {
		return false
	}
	return b.PlaceValue(c, v) == nil
}
