package rules

import "github.com/katalvlaran/slants/board"

// Connectivity rules built on the vertex union-find: loop refusal and
// the exits/border dead-end aggregates.

// ruleNoLoops places the surviving orientation wherever exactly one of
// the two would close a cycle.
func ruleNoLoops(b *board.Board) bool {
	progress := false

	for _, c := range b.UnknownCells() {
		slashLoops := b.WouldFormLoop(c, board.Slash)
		backLoops := b.WouldFormLoop(c, board.Backslash)

		switch {
		case slashLoops && !backLoops:
			if b.PlaceValue(c, board.Backslash) == nil {
				progress = true
			}
		case backLoops && !slashLoops:
			if b.PlaceValue(c, board.Slash) == nil {
				progress = true
			}
		}
	}

	return progress
}

// ruleLoopAvoidance2 probes untouched clue-2 vertices with exactly two
// undecided neighbors: both would have to touch, so it trials the pair
// and watches for a forced loop. Detection only; no placement yet.
//
// TODO: surface the probed contradiction to the engine so the current
// branch can be failed instead of discarding the result here.
func ruleLoopAvoidance2(b *board.Board) bool {
	for _, v := range b.CluedVertices() {
		if v.Clue != 2 {
			continue
		}
		current, _ := b.CountTouches(v)
		unknowns := unknownNeighbors(b, v)
		if current != 0 || len(unknowns) != 2 {
			continue
		}

		first := touchValue(unknowns[0])
		second := touchValue(unknowns[1])

		snap := b.SaveState()
		if b.WouldFormLoop(unknowns[0].Cell, first) {
			b.RestoreState(snap)
			continue
		}
		_ = b.PlaceValue(unknowns[0].Cell, first)
		if b.WouldFormLoop(unknowns[1].Cell, second) {
			// Completing the pair would close a cycle; the branch is
			// contradictory but nothing consumes that fact yet.
			b.RestoreState(snap)
			continue
		}
		b.RestoreState(snap)
	}

	return false
}

// ruleDeadEndAvoidance forbids an orientation that would strand a
// vertex group: both endpoint groups landlocked (no border vertex) and
// down to at most one exit each means the union could never reconnect
// outward. The surviving orientation is placed.
func ruleDeadEndAvoidance(b *board.Board) bool {
	progress := false

	for _, c := range b.UnknownCells() {
		x, y := c.X, c.Y

		// Backslash joins (x,y) and (x+1,y+1).
		backForbidden := !b.GroupBorder(x, y) && !b.GroupBorder(x+1, y+1) &&
			b.GroupExits(x, y) <= 1 && b.GroupExits(x+1, y+1) <= 1

		// Slash joins (x+1,y) and (x,y+1).
		slashForbidden := !b.GroupBorder(x+1, y) && !b.GroupBorder(x, y+1) &&
			b.GroupExits(x+1, y) <= 1 && b.GroupExits(x, y+1) <= 1

		switch {
		case backForbidden && !slashForbidden:
			if place(b, c, board.Slash) {
				progress = true
			}
		case slashForbidden && !backForbidden:
			if place(b, c, board.Backslash) {
				progress = true
			}
		}
	}

	return progress
}
