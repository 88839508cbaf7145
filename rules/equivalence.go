package rules

import "github.com/katalvlaran/slants/board"

// ruleEquivalenceClasses records and exploits "same orientation" pairs.
// A clue needing exactly one more touch from exactly two undecided,
// orthogonally adjacent cells merges them into one class: whichever
// way one resolves, the other matches. Once a class value is known,
// every undecided member is placed, falling back to the opposite
// orientation when the class value alone would close a loop.
func ruleEquivalenceClasses(b *board.Board) bool {
	progress := false

	for _, v := range b.CluedVertices() {
		current, _ := b.CountTouches(v)
		unknowns := unknownNeighbors(b, v)
		if v.Clue-current != 1 || len(unknowns) != 2 {
			continue
		}

		c1, c2 := unknowns[0].Cell, unknowns[1].Cell
		dx, dy := abs(c1.X-c2.X), abs(c1.Y-c2.Y)
		if (dx == 1 && dy == 0) || (dx == 0 && dy == 1) {
			if b.MarkCellsEquivalent(c1, c2) {
				progress = true
			}
		}
	}

	for _, c := range b.UnknownCells() {
		v := b.EquivalenceValue(c)
		if v == board.Unknown {
			continue
		}
		if !b.WouldFormLoop(c, v) {
			if b.PlaceValue(c, v) == nil {
				progress = true
			}
		} else if !b.WouldFormLoop(c, v.Opposite()) {
			if b.PlaceValue(c, v.Opposite()) == nil {
				progress = true
			}
		}
	}

	return progress
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
