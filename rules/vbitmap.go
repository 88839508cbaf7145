package rules

import "github.com/katalvlaran/slants/board"

// Pair masks over the V-shape bits: the two shapes a cell can form
// with its right neighbor, and the two with its lower neighbor.
const (
	hPair = board.VShapeVee | board.VShapeHat
	vPair = board.VShapeGT | board.VShapeLT
)

// ruleVBitmapPropagation reruns shape elimination from scratch: a local
// bitmap starts fully open, placed cells and surrounding 1/2/3 clues
// knock shapes out to a fixpoint, and any cell pair left with no
// differing shape is merged into one equivalence class. Only the
// merges persist; the scratch bitmap is rebuilt on every call.
// Complexity: O(W×H) per inner pass.
func ruleVBitmapPropagation(b *board.Board) bool {
	progress := false
	w, h := b.Width, b.Height

	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = board.VShapeAll
		}
	}

	changed := true
	clear := func(y, x, bits int) {
		if old := grid[y][x]; old&bits != 0 {
			grid[y][x] = old &^ bits
			changed = true
		}
	}

	for changed {
		changed = false

		// Placed cells rule out every shape needing the other value,
		// both as left/top member and, on the neighbors behind them,
		// as right/bottom member.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				switch b.CellAt(x, y).Value {
				case board.Slash:
					clear(y, x, board.VShapeVee|board.VShapeGT)
					if x > 0 {
						clear(y, x-1, board.VShapeHat)
					}
					if y > 0 {
						clear(y-1, x, board.VShapeLT)
					}
				case board.Backslash:
					clear(y, x, board.VShapeHat|board.VShapeLT)
					if x > 0 {
						clear(y, x-1, board.VShapeVee)
					}
					if y > 0 {
						clear(y-1, x, board.VShapeGT)
					}
				}
			}
		}

		// Interior clues: a 1 forbids shape tips at it (two touches), a
		// 3 forbids tips pointing away (two avoids), a 2 ties each pair
		// of flanking cells to the same surviving shapes.
		for vy := 1; vy < h; vy++ {
			for vx := 1; vx < w; vx++ {
				v := b.VertexAt(vx, vy)
				if !v.HasClue {
					continue
				}
				switch v.Clue {
				case 1:
					clear(vy-1, vx-1, board.VShapeVee|board.VShapeGT)
					clear(vy, vx-1, board.VShapeHat)
					clear(vy-1, vx, board.VShapeLT)
				case 3:
					clear(vy-1, vx-1, board.VShapeHat|board.VShapeLT)
					clear(vy, vx-1, board.VShapeVee)
					clear(vy-1, vx, board.VShapeGT)
				case 2:
					top := grid[vy-1][vx-1] & hPair
					bot := grid[vy][vx-1] & hPair
					clear(vy-1, vx-1, hPair^bot)
					clear(vy, vx-1, hPair^top)

					left := grid[vy-1][vx-1] & vPair
					right := grid[vy-1][vx] & vPair
					clear(vy-1, vx-1, vPair^right)
					clear(vy-1, vx, vPair^left)
				}
			}
		}

		// Collapsed pairs must hold equal values.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x+1 < w && grid[y][x]&hPair == 0 {
					if b.MarkCellsEquivalent(b.CellAt(x, y), b.CellAt(x+1, y)) {
						progress = true
						changed = true
					}
				}
				if y+1 < h && grid[y][x]&vPair == 0 {
					if b.MarkCellsEquivalent(b.CellAt(x, y), b.CellAt(x, y+1)) {
						progress = true
						changed = true
					}
				}
			}
		}
	}

	return progress
}
