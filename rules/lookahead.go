package rules

import "github.com/katalvlaran/slants/board"

// Lookahead rules. Both probe hypothetical placements instead of
// reading static patterns, which makes them the most expensive entries
// in the registry and the last resort before branching.

// orientationValid reports whether v could be placed in c right now
// without closing a loop or making a corner clue of c unsatisfiable.
// A touched corner gains one diagonal, an avoided one loses one
// undecided candidate.
func orientationValid(b *board.Board, c *board.Cell, v board.Value) bool {
	if b.WouldFormLoop(c, v) {
		return false
	}

	tl, tr, bl, br := b.Corners(c)
	touched := [2]*board.Vertex{bl, tr}
	avoided := [2]*board.Vertex{tl, br}
	if v == board.Backslash {
		touched, avoided = avoided, touched
	}

	for _, corner := range touched {
		if !corner.HasClue {
			continue
		}
		current, _ := b.CountTouches(corner)
		if current+1 > corner.Clue {
			return false
		}
	}
	for _, corner := range avoided {
		if !corner.HasClue {
			continue
		}
		current, unknown := b.CountTouches(corner)
		if current+unknown-1 < corner.Clue {
			return false
		}
	}
	return true
}

// ruleTrialClueViolation tries both orientations in every undecided
// cell and keeps the only one that survives the immediate loop and
// clue checks.
func ruleTrialClueViolation(b *board.Board) bool {
	progress := false

	for _, c := range b.UnknownCells() {
		slashOK := orientationValid(b, c, board.Slash)
		backOK := orientationValid(b, c, board.Backslash)

		switch {
		case slashOK && !backOK:
			if b.PlaceValue(c, board.Slash) == nil {
				progress = true
			}
		case backOK && !slashOK:
			if b.PlaceValue(c, board.Backslash) == nil {
				progress = true
			}
		}
	}

	return progress
}

// ruleOneStepLookahead commits each orientation of each undecided cell
// one ply deep: if the trial strands any other cell with no viable
// orientation at all, the opposite diagonal is forced.
func ruleOneStepLookahead(b *board.Board) bool {
	progress := false

	for _, c := range b.UnknownCells() {
		slashContra := probeContradiction(b, c, board.Slash)
		backContra := probeContradiction(b, c, board.Backslash)

		switch {
		case slashContra && !backContra:
			if b.PlaceValue(c, board.Backslash) == nil {
				progress = true
			}
		case backContra && !slashContra:
			if b.PlaceValue(c, board.Slash) == nil {
				progress = true
			}
		}
	}

	return progress
}

// probeContradiction places v in c on a saved state and reports
// whether some still-undecided cell is left with both orientations
// invalid. The board is restored before returning.
func probeContradiction(b *board.Board, c *board.Cell, v board.Value) bool {
	if b.WouldFormLoop(c, v) {
		return true
	}

	state := b.SaveState()
	defer b.RestoreState(state)

	if b.PlaceValue(c, v) != nil {
		return true
	}
	for _, other := range b.UnknownCells() {
		if !orientationValid(b, other, board.Slash) && !orientationValid(b, other, board.Backslash) {
			return true
		}
	}
	return false
}
