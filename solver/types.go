package solver

// Status classifies the outcome of one solve run.
type Status string

const (
	// StatusSolved means every cell is placed and every clue checks out.
	StatusSolved Status = "solved"
	// StatusUnsolved means deduction stalled, the search drained without
	// a valid completion, or the givens did not produce a board.
	StatusUnsolved Status = "unsolved"
	// StatusMult means the search found at least two distinct solutions.
	StatusMult Status = "mult"
)

// Result is the outcome of one solve run.
type Result struct {
	Status Status

	// Solution renders the board row-major, one rune per cell: '/',
	// '\\', or '.' for a cell never decided. Empty when the givens did
	// not decode into a board.
	Solution string

	// WorkScore accumulates the score of every fired rule; the
	// backtracking solver adds two points per stack operation on top.
	WorkScore int

	// MaxTierUsed is the highest rule tier that fired, forced to
	// rules.TierSearch whenever the search branched at all.
	MaxTierUsed int
}

// Options tune a solve run.
type Options struct {
	// MaxTier caps the registry: only rules at or below this tier
	// participate. Tiers run 1 to 3; any larger value admits them all.
	MaxTier int
}

// DefaultOptions returns an Options struct with:
//   - MaxTier 10, admitting the whole registry including the
//     lookahead rules.
func DefaultOptions() Options {
	return Options{MaxTier: 10}
}
