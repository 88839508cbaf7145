package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/slants/board"
	"github.com/katalvlaran/slants/rules"
)

var log = logrus.StandardLogger()

// maxRuleIterations caps one fixpoint run. Each iteration scans the
// registry up to its first firing rule, so the cap bounds the number
// of firings, not the number of rule calls.
const maxRuleIterations = 1000

// Deduce solves by production rules alone. The registry is filtered by
// opts.MaxTier once, then driven to a fixpoint; the verdict is
// StatusSolved only when the board is both complete and clue-valid.
// Givens that do not decode into a board yield StatusUnsolved with an
// empty solution.
func Deduce(givens string, width, height int, opts Options) Result {
	b, err := board.New(width, height, givens)
	if err != nil {
		log.WithError(err).Debug("board construction failed")
		return Result{Status: StatusUnsolved}
	}

	registry := rules.FilterTier(rules.List(), opts.MaxTier)
	workScore, maxTierUsed := runRules(b, registry)

	res := Result{
		Status:      StatusUnsolved,
		Solution:    b.Solution(),
		WorkScore:   workScore,
		MaxTierUsed: maxTierUsed,
	}
	if b.IsSolved() && b.IsValidSolution() {
		res.Status = StatusSolved
	}
	return res
}

// runRules drives the registry to a fixpoint: the first firing rule
// restarts the scan from the cheapest rule, and a full silent scan, a
// solved board, or an invalid board ends the run. Returns the
// accumulated work score and the highest tier that fired.
func runRules(b *board.Board, registry []rules.Rule) (workScore, maxTierUsed int) {
	for i := 0; i < maxRuleIterations; i++ {
		if b.IsSolved() || !b.IsValid() {
			break
		}

		fired := false
		for _, r := range registry {
			if !r.Fn(b) {
				continue
			}
			workScore += r.Score
			if r.Tier > maxTierUsed {
				maxTierUsed = r.Tier
			}
			log.WithFields(logrus.Fields{
				"rule":  r.Name,
				"score": r.Score,
			}).Debug("rule fired")
			fired = true
			break
		}
		if !fired {
			break
		}
	}
	return workScore, maxTierUsed
}
