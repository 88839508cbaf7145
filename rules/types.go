package rules

import "github.com/katalvlaran/slants/board"

// Func is one deduction pass: it inspects the board, commits every
// placement or equivalence merge it can justify, and reports whether
// anything changed. A Func that finds nothing to do must leave the
// board untouched.
type Func func(*board.Board) bool

// Rule couples a deduction function with its registry metadata. Name
// is stable across releases and appears in debug traces and difficulty
// reports; Score is the work charged each time the rule fires; Tier
// grades how hard the deduction is for a human.
type Rule struct {
	Name  string
	Score int
	Tier  int
	Fn    Func
}

// Difficulty tiers of the registry.
const (
	// TierEasy deductions are immediately obvious on sight.
	TierEasy = 1
	// TierMedium deductions are human-findable but take recognition.
	TierMedium = 2
	// TierSearch deductions need trial placements or lookahead.
	TierSearch = 3
)
