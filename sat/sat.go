package sat

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/slants/board"
	"github.com/katalvlaran/slants/rules"
	"github.com/katalvlaran/slants/solver"
)

var log = logrus.StandardLogger()

// Iteration caps of the two model-search phases. The first phase hunts
// the initial loop-free model, the second hunts a distinct one to tell
// a unique solution from an ambiguous puzzle.
const (
	maxFirstPhaseModels  = 5000
	maxSecondPhaseModels = 2000
)

// deductionTier caps the registry ahead of the CNF phase; everything
// the cheap tiers decide enters the encoding as a unit clause.
const deductionTier = rules.TierMedium

// maxRuleIterations caps the pre-encoding fixpoint, counted in rule
// firings.
const maxRuleIterations = 1000

// Solve runs cheap deduction and finishes the board with a CNF solver.
// The result mirrors the solver package: StatusSolved with the full
// board when exactly one loop-free model exists, StatusMult when a
// second one does, StatusUnsolved on malformed givens, unsatisfiable
// clues, a tier cap below TierSearch, or exhausted model budgets.
// MaxTierUsed reports rules.TierSearch whenever the CNF phase ran.
func Solve(givens string, width, height int, opts solver.Options) solver.Result {
	b, err := board.New(width, height, givens)
	if err != nil {
		log.WithError(err).Debug("board construction failed")
		return solver.Result{Status: solver.StatusUnsolved}
	}

	tierCap := deductionTier
	if opts.MaxTier < tierCap {
		tierCap = opts.MaxTier
	}
	registry := rules.FilterTier(rules.List(), tierCap)
	workScore, maxTierUsed := runRules(b, registry)

	if b.IsSolved() {
		res := solver.Result{
			Status:      solver.StatusUnsolved,
			Solution:    b.Solution(),
			WorkScore:   workScore,
			MaxTierUsed: maxTierUsed,
		}
		if b.IsValidSolution() {
			res.Status = solver.StatusSolved
		}
		return res
	}

	if opts.MaxTier < rules.TierSearch {
		return solver.Result{
			Status:      solver.StatusUnsolved,
			Solution:    b.Solution(),
			WorkScore:   workScore,
			MaxTierUsed: maxTierUsed,
		}
	}

	log.WithFields(logrus.Fields{
		"unknown": len(b.UnknownCells()),
	}).Debug("deduction stalled, encoding remainder as CNF")

	enc := newEncoder(b)
	status, solution, iterations, loopBlocks := enc.searchModels()

	return solver.Result{
		Status:      status,
		Solution:    solution,
		WorkScore:   workScore + 50 + 5*iterations + 10*loopBlocks,
		MaxTierUsed: rules.TierSearch,
	}
}

// runRules drives the registry to a fixpoint, cheapest firing rule
// first; restated here rather than shared with the solver package so
// each solver owns its engine loop end to end.
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
