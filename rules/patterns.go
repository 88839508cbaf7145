package rules

import "github.com/katalvlaran/slants/board"

// Local pattern rules: each recognizes a small fixed geometry of clues
// and placed diagonals and forces specific neighbors.

// ruleBorderTwoVShape handles a 2 on the grid edge with exactly two
// incident cells: both must touch, forming a V around the vertex.
func ruleBorderTwoVShape(b *board.Board) bool {
	progress := false

	for _, v := range b.CluedVertices() {
		if v.Clue != 2 {
			continue
		}
		adjacent := b.AdjacentCells(v)
		if len(adjacent) != 2 {
			continue
		}
		current, unknown := b.CountTouches(v)
		if current+unknown != 2 || unknown == 0 {
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

// ruleVPatternWithThree completes a 3 sitting one vertex beyond the
// open side of a placed V: with two touches already banked, the
// remaining touches must come from the cells on the far side.
func ruleVPatternWithThree(b *board.Board) bool {
	progress := false

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width-1; x++ {
			left := b.CellAt(x, y)
			right := b.CellAt(x+1, y)

			// Valley \/ with a 3 at the vertex above its tip.
			if left.Value == board.Backslash && right.Value == board.Slash {
				if v := b.VertexAt(x+1, y); v.HasClue && v.Clue == 3 {
					if current, unknown := b.CountTouches(v); current == 2 && unknown > 0 {
						for _, adj := range b.AdjacentCells(v) {
							if adj.Cell.Value != board.Unknown || adj.Cell.Y >= y {
								continue
							}
							if place(b, adj.Cell, touchValue(adj)) {
								progress = true
							}
						}
					}
				}
			}

			// Peak /\ with a 3 at the vertex below its tip.
			if left.Value == board.Slash && right.Value == board.Backslash {
				if v := b.VertexAt(x+1, y+1); v.HasClue && v.Clue == 3 {
					if current, unknown := b.CountTouches(v); current == 2 && unknown > 0 {
						for _, adj := range b.AdjacentCells(v) {
							if adj.Cell.Value != board.Unknown || adj.Cell.Y <= y {
								continue
							}
							if place(b, adj.Cell, touchValue(adj)) {
								progress = true
							}
						}
					}
				}
			}
		}
	}

	return progress
}

// vertexDirections are the four orthogonal vertex-grid neighbors.
var vertexDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// ruleAdjacentOnes handles two orthogonally adjacent 1s where one is
// already satisfied: any undecided cell the two vertices share must
// avoid the satisfied vertex.
func ruleAdjacentOnes(b *board.Board) bool {
	progress := false

	for _, v := range b.CluedVertices() {
		if v.Clue != 1 {
			continue
		}
		current, _ := b.CountTouches(v)
		if current != 1 {
			continue
		}

		for _, dir := range vertexDirections {
			neighbor := b.VertexAt(v.VX+dir[0], v.VY+dir[1])
			if neighbor == nil || !neighbor.HasClue || neighbor.Clue != 1 {
				continue
			}

			shared := make(map[*board.Cell]bool)
			for _, adj := range b.AdjacentCells(neighbor) {
				shared[adj.Cell] = true
			}

			for _, adj := range b.AdjacentCells(v) {
				if adj.Cell.Value != board.Unknown || !shared[adj.Cell] {
					continue
				}
				if place(b, adj.Cell, avoidValue(adj)) {
					progress = true
				}
			}
		}
	}

	return progress
}

// ruleAdjacentThrees handles two orthogonally adjacent 3s: counting
// the shared cells as guaranteed suppliers, when current touches plus
// shared cells plus unshared undecided cells exactly cover the clue,
// every unshared undecided cell must touch.
func ruleAdjacentThrees(b *board.Board) bool {
	progress := false

	for _, v := range b.CluedVertices() {
		if v.Clue != 3 {
			continue
		}
		current, _ := b.CountTouches(v)

		for _, dir := range vertexDirections {
			neighbor := b.VertexAt(v.VX+dir[0], v.VY+dir[1])
			if neighbor == nil || !neighbor.HasClue || neighbor.Clue != 3 {
				continue
			}

			sharedWith := make(map[*board.Cell]bool)
			for _, adj := range b.AdjacentCells(neighbor) {
				sharedWith[adj.Cell] = true
			}

			shared := 0
			var unsharedUnknown []board.AdjacentCell
			for _, adj := range b.AdjacentCells(v) {
				switch {
				case sharedWith[adj.Cell]:
					shared++
				case adj.Cell.Value == board.Unknown:
					unsharedUnknown = append(unsharedUnknown, adj)
				}
			}

			if current+len(unsharedUnknown)+shared != 3 || len(unsharedUnknown) == 0 {
				continue
			}
			for _, adj := range unsharedUnknown {
				if place(b, adj.Cell, touchValue(adj)) {
					progress = true
				}
			}
		}
	}

	return progress
}
