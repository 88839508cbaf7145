package rules

import "github.com/katalvlaran/slants/board"

// ringNeighbor is one cell incident to a vertex, walked in ring order
// (top-left, bottom-left, bottom-right, top-right), with the
// orientation that touches the vertex.
type ringNeighbor struct {
	cell  *board.Cell
	touch board.Value
}

// vertexRing returns the incident cells of (vx, vy) in ring order, so
// that consecutive entries (wrapping) are geometrically adjacent.
func vertexRing(b *board.Board, vx, vy int) []ringNeighbor {
	ring := make([]ringNeighbor, 0, 4)
	if c := b.CellAt(vx-1, vy-1); c != nil {
		ring = append(ring, ringNeighbor{c, board.Backslash})
	}
	if c := b.CellAt(vx-1, vy); c != nil {
		ring = append(ring, ringNeighbor{c, board.Slash})
	}
	if c := b.CellAt(vx, vy); c != nil {
		ring = append(ring, ringNeighbor{c, board.Backslash})
	}
	if c := b.CellAt(vx, vy-1); c != nil {
		ring = append(ring, ringNeighbor{c, board.Slash})
	}
	return ring
}

// ruleSimonUnified is the heavyweight pass combining equivalence-aware
// clue counting, loop and dead-end forcing, and persistent V-shape
// elimination, iterated to its own fixpoint before yielding to the
// outer scan. Two undecided neighbors of a vertex that share an
// equivalence class count as a single slot supplying exactly one
// touch, which lets a clue complete earlier than plain counting would.
// Complexity: O(W×H) per inner pass, O(α) union-find lookups.
func ruleSimonUnified(b *board.Board) bool {
	progress := false
	w, h := b.Width, b.Height

	done := true
	for done {
		done = false

		// Phase 1: clue completion with ring-adjacent class tracking.
		for vy := 0; vy <= h; vy++ {
			for vx := 0; vx <= w; vx++ {
				v := b.VertexAt(vx, vy)
				if !v.HasClue {
					continue
				}
				ring := vertexRing(b, vx, vy)
				if len(ring) == 0 {
					continue
				}

				// nu undecided slots, nl touches still needed; a
				// ring-adjacent equivalent pair collapses to one slot
				// worth exactly one touch (mj1/mj2 mark its cells).
				nu, nl := 0, v.Clue
				last := ring[len(ring)-1].cell
				lastEq := -1
				if last.Value == board.Unknown {
					lastEq = b.EquivRoot(last)
				}
				meq := -1
				var mj1, mj2 *board.Cell

				lastCell := last
				for _, n := range ring {
					if n.cell.Value == board.Unknown {
						nu++
						if meq < 0 {
							eq := b.EquivRoot(n.cell)
							if eq == lastEq && lastCell != n.cell {
								meq = eq
								mj1, mj2 = lastCell, n.cell
								nl--
								nu -= 2
							} else {
								lastEq = eq
							}
						}
					} else {
						lastEq = -1
						if n.cell.Value == n.touch {
							nl--
						}
					}
					lastCell = n.cell
				}

				if nl < 0 || nl > nu {
					continue
				}

				if nu > 0 && (nl == 0 || nl == nu) {
					// Every free slot resolves the same way: touch all
					// or avoid all.
					for _, n := range ring {
						if n.cell == mj1 || n.cell == mj2 || n.cell.Value != board.Unknown {
							continue
						}
						value := n.touch
						if nl == 0 {
							value = value.Opposite()
						}
						if place(b, n.cell, value) {
							done = true
							progress = true
						}
					}
				} else if nu == 2 && nl == 1 {
					// Two free slots supplying one touch: if they are
					// ring-adjacent they form a new equivalent pair.
					lastIdx := -1
					for i, n := range ring {
						if n.cell.Value != board.Unknown || n.cell == mj1 || n.cell == mj2 {
							continue
						}
						if lastIdx < 0 {
							lastIdx = i
						} else if lastIdx == i-1 || (lastIdx == 0 && i == len(ring)-1) {
							if b.MarkCellsEquivalent(ring[lastIdx].cell, n.cell) {
								done = true
								progress = true
							}
							break
						}
					}
				}
			}
		}

		if done {
			continue
		}

		// Phase 2: per-cell forcing from equivalence values, loop
		// closure, and dead-end aggregates. Both orientations forced
		// at once is a contradiction left for the validity checks.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := b.CellAt(x, y)
				if c.Value != board.Unknown {
					continue
				}

				forceSlash, forceBack := false, false
				switch b.EquivalenceValue(c) {
				case board.Slash:
					forceSlash = true
				case board.Backslash:
					forceBack = true
				}

				if b.VertexRoot(x, y) == b.VertexRoot(x+1, y+1) {
					forceSlash = true
				}
				if !forceSlash &&
					!b.GroupBorder(x, y) && !b.GroupBorder(x+1, y+1) &&
					b.GroupExits(x, y) <= 1 && b.GroupExits(x+1, y+1) <= 1 {
					forceSlash = true
				}

				if b.VertexRoot(x+1, y) == b.VertexRoot(x, y+1) {
					forceBack = true
				}
				if !forceBack &&
					!b.GroupBorder(x+1, y) && !b.GroupBorder(x, y+1) &&
					b.GroupExits(x+1, y) <= 1 && b.GroupExits(x, y+1) <= 1 {
					forceBack = true
				}

				if forceSlash && forceBack {
					continue
				}
				if forceSlash {
					if b.PlaceValue(c, board.Slash) == nil {
						done = true
						progress = true
					}
				} else if forceBack {
					if b.PlaceValue(c, board.Backslash) == nil {
						done = true
						progress = true
					}
				}
			}
		}

		if done {
			continue
		}

		// Phase 3: persistent V-shape elimination. Unlike the scratch
		// pass, these clears survive on the board and are rolled back
		// only by state restore.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := b.CellAt(x, y)
				if s := c.Value; s != board.Unknown {
					if x > 0 {
						bits := board.VShapeVee
						if s == board.Slash {
							bits = board.VShapeHat
						}
						if b.VBitmapClear(b.CellAt(x-1, y), bits) {
							done = true
							progress = true
						}
					}
					if x+1 < w {
						bits := board.VShapeHat
						if s == board.Slash {
							bits = board.VShapeVee
						}
						if b.VBitmapClear(c, bits) {
							done = true
							progress = true
						}
					}
					if y > 0 {
						bits := board.VShapeGT
						if s == board.Slash {
							bits = board.VShapeLT
						}
						if b.VBitmapClear(b.CellAt(x, y-1), bits) {
							done = true
							progress = true
						}
					}
					if y+1 < h {
						bits := board.VShapeLT
						if s == board.Slash {
							bits = board.VShapeGT
						}
						if b.VBitmapClear(c, bits) {
							done = true
							progress = true
						}
					}
				}

				if x+1 < w && b.VBitmap(c)&hPair == 0 {
					if b.MarkCellsEquivalent(c, b.CellAt(x+1, y)) {
						done = true
						progress = true
					}
				}
				if y+1 < h && b.VBitmap(c)&vPair == 0 {
					if b.MarkCellsEquivalent(c, b.CellAt(x, y+1)) {
						done = true
						progress = true
					}
				}
			}
		}

		for vy := 1; vy < h; vy++ {
			for vx := 1; vx < w; vx++ {
				v := b.VertexAt(vx, vy)
				if !v.HasClue {
					continue
				}
				tl := b.CellAt(vx-1, vy-1)
				bl := b.CellAt(vx-1, vy)
				tr := b.CellAt(vx, vy-1)

				switch v.Clue {
				case 1:
					if b.VBitmapClear(tl, board.VShapeVee|board.VShapeGT) {
						done = true
						progress = true
					}
					if b.VBitmapClear(bl, board.VShapeHat) {
						done = true
						progress = true
					}
					if b.VBitmapClear(tr, board.VShapeLT) {
						done = true
						progress = true
					}
				case 3:
					if b.VBitmapClear(tl, board.VShapeHat|board.VShapeLT) {
						done = true
						progress = true
					}
					if b.VBitmapClear(bl, board.VShapeVee) {
						done = true
						progress = true
					}
					if b.VBitmapClear(tr, board.VShapeGT) {
						done = true
						progress = true
					}
				case 2:
					tlH := b.VBitmap(tl) & hPair
					blH := b.VBitmap(bl) & hPair
					if b.VBitmapClear(tl, hPair^blH) {
						done = true
						progress = true
					}
					if b.VBitmapClear(bl, hPair^tlH) {
						done = true
						progress = true
					}

					tlV := b.VBitmap(tl) & vPair
					trV := b.VBitmap(tr) & vPair
					if b.VBitmapClear(tl, vPair^trV) {
						done = true
						progress = true
					}
					if b.VBitmapClear(tr, vPair^tlV) {
						done = true
						progress = true
					}
				}
			}
		}
	}

	return progress
}
