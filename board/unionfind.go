package board

// Disjoint-set primitives over vertices (loop detection) and over cells
// (equivalence classes). Both use iterative find with path compression
// and union by rank; the vertex structure additionally rolls up exits
// and border aggregates at merge time, the cell structure a determined
// class value.

// find returns the root of the vertex group containing index x.
// Iterative with path compression to avoid deep recursion.
// Complexity: O(α(V)) amortized.
func (b *Board) find(x int) int {
	for b.parent[x] != x {
		b.parent[x] = b.parent[b.parent[x]]
		x = b.parent[x]
	}
	return x
}

// union merges the vertex groups of x and y. Returns false without
// mutation when both share a root already, which means the connecting
// diagonal would close a loop. On success the surviving root carries
// exits(x)+exits(y)-2 (the merge consumes one exit on each side) and
// the OR of the border flags.
// Complexity: O(α(V)) amortized.
func (b *Board) union(x, y int) bool {
	rx, ry := b.find(x), b.find(y)
	if rx == ry {
		return false
	}

	mergedExits := b.exits[rx] + b.exits[ry] - 2
	mergedBorder := b.border[rx] || b.border[ry]

	if b.rank[rx] < b.rank[ry] {
		rx, ry = ry, rx
	}
	b.parent[ry] = rx
	if b.rank[rx] == b.rank[ry] {
		b.rank[rx]++
	}

	b.exits[rx] = mergedExits
	b.border[rx] = mergedBorder
	return true
}

// decrExits removes one remaining exit from the group of the vertex at
// (vx, vy). Clued vertices keep a fixed exit budget equal to their clue
// and are never decremented here; their avoidance is accounted for by
// the clue itself.
func (b *Board) decrExits(vx, vy int) {
	if b.vertices[b.vertexIndex(vx, vy)].HasClue {
		return
	}
	root := b.find(b.vertexIndex(vx, vy))
	b.exits[root]--
}

// equivFind returns the root of the equivalence class containing cell
// index x. Same traversal as find, over the cell structure.
func (b *Board) equivFind(x int) int {
	for b.equivParent[x] != x {
		b.equivParent[x] = b.equivParent[b.equivParent[x]]
		x = b.equivParent[x]
	}
	return x
}

// EquivRoot returns the equivalence-class root index of a cell.
// Roots are stable only until the next merge; compare two cells' roots
// immediately rather than caching them across mutations.
func (b *Board) EquivRoot(c *Cell) int {
	return b.equivFind(b.cellIndex(c))
}

// MarkCellsEquivalent records that two cells must end with the same
// orientation by merging their classes. Returns false without mutation
// when the cells are already equivalent, or when the two classes carry
// conflicting determined values (a deduction conflict the caller must
// interpret as a contradictory board state).
// Complexity: O(α(cells)) amortized.
func (b *Board) MarkCellsEquivalent(c1, c2 *Cell) bool {
	r1 := b.equivFind(b.cellIndex(c1))
	r2 := b.equivFind(b.cellIndex(c2))
	if r1 == r2 {
		return false
	}

	sv1, sv2 := b.slashval[r1], b.slashval[r2]
	if sv1 != Unknown && sv2 != Unknown && sv1 != sv2 {
		return false
	}
	merged := sv1
	if merged == Unknown {
		merged = sv2
	}

	if b.equivRank[r1] < b.equivRank[r2] {
		r1, r2 = r2, r1
	}
	b.equivParent[r2] = r1
	if b.equivRank[r1] == b.equivRank[r2] {
		b.equivRank[r1]++
	}

	b.slashval[r1] = merged
	return true
}

// EquivalenceValue returns the determined orientation of the cell's
// equivalence class, or Unknown when no member has been placed yet.
func (b *Board) EquivalenceValue(c *Cell) Value {
	return b.slashval[b.equivFind(b.cellIndex(c))]
}

// VBitmap returns the remaining V-shape bits of a cell.
func (b *Board) VBitmap(c *Cell) int {
	return b.vbitmap[b.cellIndex(c)]
}

// VBitmapClear clears the given V-shape bits on a cell and reports
// whether any bit actually changed, so rules can detect progress.
func (b *Board) VBitmapClear(c *Cell, bits int) bool {
	idx := b.cellIndex(c)
	old := b.vbitmap[idx]
	cleared := old &^ bits
	if cleared == old {
		return false
	}
	b.vbitmap[idx] = cleared
	return true
}

// VertexRoot returns the loop-detection root of the vertex at (vx, vy).
func (b *Board) VertexRoot(vx, vy int) int {
	return b.find(b.vertexIndex(vx, vy))
}

// GroupExits returns the remaining exit count of the vertex group
// containing (vx, vy). Meaningful for dead-end detection on groups that
// do not reach the border.
func (b *Board) GroupExits(vx, vy int) int {
	return b.exits[b.find(b.vertexIndex(vx, vy))]
}

// GroupBorder reports whether the vertex group containing (vx, vy)
// includes at least one border vertex. Border groups can always escape
// along the grid edge and are exempt from dead-end forcing.
func (b *Board) GroupBorder(vx, vy int) bool {
	return b.border[b.find(b.vertexIndex(vx, vy))]
}
