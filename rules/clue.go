package rules

import "github.com/katalvlaran/slants/board"

// Counting rules around a single clued vertex. These carry most of the
// deductive load on easy puzzles: a clue compared against its current
// touches and remaining undecided neighbors often forces all of them
// at once.

// ruleClueFinishA fires when a clue needs every remaining undecided
// neighbor to touch it: each one is placed with its touching
// orientation.
func ruleClueFinishA(b *board.Board) bool {
	progress := false

	for _, v := range b.CluedVertices() {
		current, _ := b.CountTouches(v)
		unknowns := unknownNeighbors(b, v)

		needed := v.Clue - current
		if needed <= 0 || needed != len(unknowns) {
			continue
		}
		for _, adj := range unknowns {
			if place(b, adj.Cell, touchValue(adj)) {
				progress = true
			}
		}
	}

	return progress
}

// ruleClueFinishB fires when a clue already has its full count of
// touches: every remaining undecided neighbor must avoid it.
func ruleClueFinishB(b *board.Board) bool {
	progress := false

	for _, v := range b.CluedVertices() {
		current, _ := b.CountTouches(v)
		if current != v.Clue {
			continue
		}
		for _, adj := range unknownNeighbors(b, v) {
			if place(b, adj.Cell, avoidValue(adj)) {
				progress = true
			}
		}
	}

	return progress
}

// ruleEdgeClueConstraints handles border and corner vertices: with
// fewer than four incident cells, a clue equal to that count saturates
// the vertex and every neighbor must touch.
func ruleEdgeClueConstraints(b *board.Board) bool {
	progress := false

	for _, v := range b.CluedVertices() {
		adjacent := b.AdjacentCells(v)
		if v.Clue != len(adjacent) {
			continue
		}
		for _, adj := range adjacent {
			if adj.Cell.Value != board.Unknown {
				continue
			}
			if place(b, adj.Cell, touchValue(adj)) {
				progress = true
			}
		}
	}

	return progress
}
