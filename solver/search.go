package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/slants/board"
	"github.com/katalvlaran/slants/rules"
)

// searchFrame is one pending branch: a full board snapshot with the
// branching candidate already placed, plus that candidate's value for
// the trace. The root frame carries board.Unknown.
type searchFrame struct {
	state *board.State
	value board.Value
}

// searchEngine groups the stack, the filtered registry, and the running
// totals of a single Search call, instead of anonymous closures, to
// keep dependencies explicit.
type searchEngine struct {
	b        *board.Board
	registry []rules.Rule

	stack     []searchFrame
	solutions []string

	workScore   int
	maxTierUsed int
	pushPops    int
	branched    bool
}

// Search solves by backtracking with deduction between branches. Frames
// pop off an explicit stack; each restores its snapshot, runs the
// search registry to a fixpoint, and either dies invalid, records a
// completed solution, or branches on the most constrained undecided
// cell. Two recorded solutions end the run as StatusMult. Every stack
// push or pop adds two points to the work score, and any branching at
// all reports MaxTierUsed as rules.TierSearch.
func Search(givens string, width, height int, opts Options) Result {
	b, err := board.New(width, height, givens)
	if err != nil {
		log.WithError(err).Debug("board construction failed")
		return Result{Status: StatusUnsolved}
	}

	e := &searchEngine{
		b:        b,
		registry: rules.FilterTier(rules.SearchList(), opts.MaxTier),
	}
	e.stack = append(e.stack, searchFrame{state: b.SaveState(), value: board.Unknown})
	e.run()

	res := Result{
		Status:      StatusUnsolved,
		Solution:    b.Solution(),
		WorkScore:   e.workScore + 2*e.pushPops,
		MaxTierUsed: e.maxTierUsed,
	}
	if e.branched {
		res.MaxTierUsed = rules.TierSearch
	}
	switch {
	case len(e.solutions) >= 2:
		res.Status = StatusMult
	case len(e.solutions) == 1:
		res.Status = StatusSolved
		res.Solution = e.solutions[0]
	}
	return res
}

// run pops frames until the stack drains or a second solution appears.
func (e *searchEngine) run() {
	for len(e.stack) > 0 && len(e.solutions) < 2 {
		frame := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.b.RestoreState(frame.state)
		e.pushPops++

		log.WithFields(logrus.Fields{
			"depth": len(e.stack),
			"value": frame.value,
		}).Debug("branch popped")

		work, tier := runRules(e.b, e.registry)
		e.workScore += work
		if tier > e.maxTierUsed {
			e.maxTierUsed = tier
		}

		if !e.b.IsValid() {
			continue
		}
		if e.b.IsSolved() {
			if e.b.IsValidSolution() {
				e.solutions = append(e.solutions, e.b.Solution())
			}
			continue
		}
		e.branch()
	}
}

// branch pushes one frame per viable orientation of the best cell,
// reversed so the highest-priority candidate pops first. Each frame
// snapshots the board with the candidate already placed.
func (e *searchEngine) branch() {
	cell := e.pickBestCell()
	if cell == nil {
		return
	}
	candidates := e.candidateValues(cell)
	if len(candidates) == 0 {
		return
	}

	saved := e.b.SaveState()
	for i := len(candidates) - 1; i >= 0; i-- {
		e.b.RestoreState(saved)
		if e.b.PlaceValue(cell, candidates[i]) != nil {
			continue
		}
		e.stack = append(e.stack, searchFrame{state: e.b.SaveState(), value: candidates[i]})
		e.pushPops++
		e.branched = true
	}
	e.b.RestoreState(saved)
}

// pickBestCell scores every undecided cell by how constrained its
// clued corners are: a corner needing all of its free slots, or none
// of them, adds 100; otherwise the score grows as slots shrink. Ties
// keep the first cell in row-major order so branching is
// deterministic.
func (e *searchEngine) pickBestCell() *board.Cell {
	var best *board.Cell
	bestScore := -1

	for _, c := range e.b.UnknownCells() {
		score := 0
		tl, tr, bl, br := e.b.Corners(c)
		for _, corner := range []*board.Vertex{tl, tr, bl, br} {
			if !corner.HasClue {
				continue
			}
			current, unknown := e.b.CountTouches(corner)
			needed := corner.Clue - current
			switch {
			case needed == unknown, needed == 0:
				score += 100
			case unknown > 0:
				score += 50 / unknown
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// candidateValues returns the orientations worth branching on:
// loop-closing ones are dropped, as is any orientation that would
// overfeed a touched clued corner. A candidate earns ten points per
// clued corner it feeds, and the higher-priority one comes first.
func (e *searchEngine) candidateValues(c *board.Cell) []board.Value {
	tl, tr, bl, br := e.b.Corners(c)

	type scored struct {
		value    board.Value
		priority int
	}
	var valid []scored

	for _, v := range []board.Value{board.Slash, board.Backslash} {
		if e.b.WouldFormLoop(c, v) {
			continue
		}

		touched := [2]*board.Vertex{bl, tr}
		if v == board.Backslash {
			touched = [2]*board.Vertex{tl, br}
		}

		ok := true
		priority := 0
		for _, corner := range touched {
			if !corner.HasClue {
				continue
			}
			current, _ := e.b.CountTouches(corner)
			if current >= corner.Clue {
				ok = false
				break
			}
			priority += 10
		}
		if ok {
			valid = append(valid, scored{v, priority})
		}
	}

	if len(valid) == 2 && valid[1].priority > valid[0].priority {
		valid[0], valid[1] = valid[1], valid[0]
	}

	out := make([]board.Value, len(valid))
	for i, s := range valid {
		out[i] = s.value
	}
	return out
}
