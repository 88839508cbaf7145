// Package board owns the mutable state of one Slants (Gokigen Naname)
// puzzle: the cell grid, the clued vertices, and the incremental
// structures every deduction and search step relies on.
package board

import (
	"fmt"
	"strings"
)

// New constructs a Board from grid dimensions and an encoded givens
// string. The givens must decode to exactly (width+1)*(height+1)
// vertex entries; anything else is ErrMalformedGivens.
// Complexity: O(W×H) time and memory.
func New(width, height int, givens string) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	clues, err := DecodeGivens(givens)
	if err != nil {
		return nil, err
	}
	wantVertices := (width + 1) * (height + 1)
	if len(clues) != wantVertices {
		return nil, fmt.Errorf("%w: decoded %d, expected %d",
			ErrMalformedGivens, len(clues), wantVertices)
	}

	b := &Board{Width: width, Height: height}

	b.cells = make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.cells[y*width+x] = Cell{X: x, Y: y, Value: Unknown}
		}
	}

	b.vertices = make([]Vertex, wantVertices)
	for i, clue := range clues {
		b.vertices[i] = Vertex{
			VX:      i % (width + 1),
			VY:      i / (width + 1),
			Clue:    clue,
			HasClue: clue != NoClue,
		}
	}

	b.initUnionFind()
	b.initEquivalence()
	b.initVBitmap()
	b.initExitsBorder()

	return b, nil
}

func (b *Board) initUnionFind() {
	n := (b.Width + 1) * (b.Height + 1)
	b.parent = make([]int, n)
	b.rank = make([]int, n)
	for i := range b.parent {
		b.parent[i] = i
	}
}

func (b *Board) initEquivalence() {
	n := b.Width * b.Height
	b.equivParent = make([]int, n)
	b.equivRank = make([]int, n)
	b.slashval = make([]Value, n)
	for i := range b.equivParent {
		b.equivParent[i] = i
	}
}

func (b *Board) initVBitmap() {
	b.vbitmap = make([]int, b.Width*b.Height)
	for i := range b.vbitmap {
		b.vbitmap[i] = VShapeAll
	}
}

// initExitsBorder seeds the per-vertex aggregates: a clued vertex has a
// fixed exit budget equal to its clue, an unclued one starts at 4; a
// vertex on the grid edge is a border vertex.
func (b *Board) initExitsBorder() {
	w, h := b.Width+1, b.Height+1
	b.exits = make([]int, w*h)
	b.border = make([]bool, w*h)

	for vy := 0; vy < h; vy++ {
		for vx := 0; vx < w; vx++ {
			idx := vy*w + vx
			if vx == 0 || vy == 0 || vx == w-1 || vy == h-1 {
				b.border[idx] = true
			}
			if v := &b.vertices[idx]; v.HasClue {
				b.exits[idx] = v.Clue
			} else {
				b.exits[idx] = 4
			}
		}
	}
}

// vertexIndex maps vertex coordinates to the row-major vertex index.
func (b *Board) vertexIndex(vx, vy int) int {
	return vy*(b.Width+1) + vx
}

// cellIndex maps a cell to its row-major index.
func (b *Board) cellIndex(c *Cell) int {
	return c.Y*b.Width + c.X
}

// CellAt returns the cell at (x, y), or nil when out of bounds.
// The pointer stays valid for the Board's lifetime.
func (b *Board) CellAt(x, y int) *Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return nil
	}
	return &b.cells[y*b.Width+x]
}

// VertexAt returns the vertex at (vx, vy), or nil when out of bounds.
func (b *Board) VertexAt(vx, vy int) *Vertex {
	if vx < 0 || vx > b.Width || vy < 0 || vy > b.Height {
		return nil
	}
	return &b.vertices[vy*(b.Width+1)+vx]
}

// CluedVertices returns every vertex carrying a clue, in row-major order.
func (b *Board) CluedVertices() []*Vertex {
	var out []*Vertex
	for i := range b.vertices {
		if b.vertices[i].HasClue {
			out = append(out, &b.vertices[i])
		}
	}
	return out
}

// UnknownCells returns every cell still holding Unknown, in row-major
// order. The result reflects the moment of the call only.
func (b *Board) UnknownCells() []*Cell {
	var out []*Cell
	for i := range b.cells {
		if b.cells[i].Value == Unknown {
			out = append(out, &b.cells[i])
		}
	}
	return out
}

// Corners returns the four corner vertices of a cell as
// (top-left, top-right, bottom-left, bottom-right).
func (b *Board) Corners(c *Cell) (tl, tr, bl, br *Vertex) {
	return b.VertexAt(c.X, c.Y), b.VertexAt(c.X+1, c.Y),
		b.VertexAt(c.X, c.Y+1), b.VertexAt(c.X+1, c.Y+1)
}

// AdjacentCells returns the at most four cells incident to a vertex,
// each with the orientation whose diagonal touches the vertex. Corner
// vertices see one cell, edge vertices two, interior vertices four.
func (b *Board) AdjacentCells(v *Vertex) []AdjacentCell {
	vx, vy := v.VX, v.VY
	out := make([]AdjacentCell, 0, 4)

	// Top-left cell: the vertex is its bottom-right corner.
	if c := b.CellAt(vx-1, vy-1); c != nil {
		out = append(out, AdjacentCell{Cell: c, BackslashTouches: true})
	}
	// Top-right cell: the vertex is its bottom-left corner.
	if c := b.CellAt(vx, vy-1); c != nil {
		out = append(out, AdjacentCell{Cell: c, SlashTouches: true})
	}
	// Bottom-left cell: the vertex is its top-right corner.
	if c := b.CellAt(vx-1, vy); c != nil {
		out = append(out, AdjacentCell{Cell: c, SlashTouches: true})
	}
	// Bottom-right cell: the vertex is its top-left corner.
	if c := b.CellAt(vx, vy); c != nil {
		out = append(out, AdjacentCell{Cell: c, BackslashTouches: true})
	}

	return out
}

// CountTouches reports how many placed diagonals currently touch the
// vertex and how many incident cells are still undecided.
// Complexity: O(1), at most four incident cells.
func (b *Board) CountTouches(v *Vertex) (current, unknown int) {
	for _, adj := range b.AdjacentCells(v) {
		switch {
		case adj.Cell.Value == Unknown:
			unknown++
		case adj.Cell.Value == Slash && adj.SlashTouches:
			current++
		case adj.Cell.Value == Backslash && adj.BackslashTouches:
			current++
		}
	}
	return current, unknown
}

// endpoints returns the vertex indices a value's diagonal would connect
// in the given cell, plus the two corner coordinates it avoids.
func (b *Board) endpoints(c *Cell, v Value) (v1, v2, offX1, offY1, offX2, offY2 int) {
	x, y := c.X, c.Y
	if v == Slash {
		// Bottom-left to top-right; avoids top-left and bottom-right.
		return b.vertexIndex(x, y+1), b.vertexIndex(x+1, y), x, y, x + 1, y + 1
	}
	// Top-left to bottom-right; avoids top-right and bottom-left.
	return b.vertexIndex(x, y), b.vertexIndex(x+1, y+1), x + 1, y, x, y + 1
}

// WouldFormLoop reports whether placing value in the cell would connect
// two vertices already in the same group. Pure query, no mutation.
// Complexity: O(α(V)) amortized.
func (b *Board) WouldFormLoop(c *Cell, v Value) bool {
	v1, v2, _, _, _, _ := b.endpoints(c, v)
	return b.find(v1) == b.find(v2)
}

// PlaceValue commits an orientation to a cell: unites the two touched
// vertices, decrements the exit budgets of the two avoided corners
// (unclued corners only), and records the value on the cell's
// equivalence class. A cell that already holds a value is a successful
// no-op. Returns ErrLoopFormed, without mutation, when the diagonal
// would close a cycle.
// Complexity: O(α(V)) amortized.
func (b *Board) PlaceValue(c *Cell, v Value) error {
	if c.Value != Unknown {
		return nil
	}

	v1, v2, offX1, offY1, offX2, offY2 := b.endpoints(c, v)
	if !b.union(v1, v2) {
		return fmt.Errorf("%w: %v at (%d,%d)", ErrLoopFormed, v, c.X, c.Y)
	}

	b.decrExits(offX1, offY1)
	b.decrExits(offX2, offY2)

	c.Value = v
	b.slashval[b.equivFind(b.cellIndex(c))] = v
	return nil
}

// IsSolved reports whether every cell holds a value. It does not check
// clue satisfaction; see IsValidSolution.
func (b *Board) IsSolved() bool {
	for i := range b.cells {
		if b.cells[i].Value == Unknown {
			return false
		}
	}
	return true
}

// IsValid reports whether no clued vertex is over-touched. Exceeding a
// clue can only happen through a wrong branch and is always fatal to
// the current line of search.
// Complexity: O(V).
func (b *Board) IsValid() bool {
	for i := range b.vertices {
		v := &b.vertices[i]
		if !v.HasClue {
			continue
		}
		if current, _ := b.CountTouches(v); current > v.Clue {
			return false
		}
	}
	return true
}

// IsValidSolution reports whether the board is fully placed and every
// clued vertex is touched exactly its clue's worth of times.
func (b *Board) IsValidSolution() bool {
	if !b.IsSolved() {
		return false
	}
	for i := range b.vertices {
		v := &b.vertices[i]
		if !v.HasClue {
			continue
		}
		if current, _ := b.CountTouches(v); current != v.Clue {
			return false
		}
	}
	return true
}

// Solution returns the row-major solution encoding: one of "/", "\" or
// "." per cell, "." only while cells remain undecided.
func (b *Board) Solution() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for i := range b.cells {
		sb.WriteString(b.cells[i].Value.String())
	}
	return sb.String()
}

// String renders the board for humans: vertex rows (clue digit or ".",
// joined by "-") interleaved with cell rows ("|" separated values).
func (b *Board) String() string {
	lines := make([]string, 0, 2*b.Height+1)
	lines = append(lines, b.vertexLine(0))

	for y := 0; y < b.Height; y++ {
		var row strings.Builder
		row.WriteByte('|')
		for x := 0; x < b.Width; x++ {
			row.WriteString(b.cells[y*b.Width+x].Value.String())
			row.WriteByte('|')
		}
		lines = append(lines, row.String())
		lines = append(lines, b.vertexLine(y+1))
	}

	return strings.Join(lines, "\n")
}

func (b *Board) vertexLine(vy int) string {
	var sb strings.Builder
	for vx := 0; vx <= b.Width; vx++ {
		if v := &b.vertices[b.vertexIndex(vx, vy)]; v.HasClue {
			sb.WriteByte(byte('0' + v.Clue))
		} else {
			sb.WriteByte('.')
		}
		if vx < b.Width {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
