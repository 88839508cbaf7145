// Package board defines core types, options, and sentinel errors
// for the board subpackage of github.com/katalvlaran/slants.
package board

// Value is the orientation stored in a single cell.
type Value uint8

const (
	// Unknown marks a cell whose diagonal has not been determined yet.
	Unknown Value = iota
	// Slash is the "/" diagonal: it connects the cell's bottom-left
	// vertex to its top-right vertex.
	Slash
	// Backslash is the "\" diagonal: it connects the cell's top-left
	// vertex to its bottom-right vertex.
	Backslash
)

// String renders the value as its solution-encoding character.
func (v Value) String() string {
	switch v {
	case Slash:
		return "/"
	case Backslash:
		return "\\"
	default:
		return "."
	}
}

// Opposite returns the other orientation; Unknown maps to itself.
func (v Value) Opposite() Value {
	switch v {
	case Slash:
		return Backslash
	case Backslash:
		return Slash
	default:
		return Unknown
	}
}

// NoClue marks a vertex without a numeric constraint in decoded givens.
const NoClue = -1

// V-shape bits of the per-cell orientation bitmap. A set bit means the
// two-cell shape is still possible between this cell and its right
// neighbor (VShapeVee, VShapeHat) or its lower neighbor (VShapeGT,
// VShapeLT). Each shape's two diagonals meet at one shared vertex, the
// shape's tip. Bits are only ever cleared, never set back; once both
// bits of a pair are gone the two cells must hold equal values.
const (
	// VShapeVee is "v": this cell Backslash, right neighbor Slash,
	// tip at the shared bottom vertex.
	VShapeVee = 0x1
	// VShapeHat is "^": this cell Slash, right neighbor Backslash,
	// tip at the shared top vertex.
	VShapeHat = 0x2
	// VShapeGT is ">": this cell Backslash, lower neighbor Slash,
	// tip at the shared right vertex.
	VShapeGT = 0x4
	// VShapeLT is "<": this cell Slash, lower neighbor Backslash,
	// tip at the shared left vertex.
	VShapeLT = 0x8
	// VShapeAll is the fresh-cell mask with every shape still possible.
	VShapeAll = 0xF
)

// Cell is one grid square. Value transitions exactly once from Unknown
// to Slash or Backslash via Board.PlaceValue; it is never written back
// to Unknown except through Board.RestoreState.
type Cell struct {
	X, Y  int
	Value Value
}

// Vertex is one grid intersection. Immutable after construction.
// Clue is NoClue when HasClue is false.
type Vertex struct {
	VX, VY  int
	Clue    int
	HasClue bool
}

// AdjacentCell pairs a cell incident to a vertex with the orientation
// that makes the cell's diagonal touch that vertex. Exactly one of
// SlashTouches and BackslashTouches is true per entry.
type AdjacentCell struct {
	Cell             *Cell
	SlashTouches     bool
	BackslashTouches bool
}

// Board is the full mutable puzzle state: cells, vertices, the vertex
// union-find used for loop detection (with per-group exits/border
// aggregates), the cell union-find used for equivalence classes (with
// per-class determined value), and the per-cell orientation bitmap.
//
// A Board is not safe for concurrent use; each solve owns its own.
type Board struct {
	Width, Height int

	cells    []Cell
	vertices []Vertex

	// Vertex connectivity for loop detection.
	parent []int
	rank   []int

	// Cell equivalence classes with the class value at each root.
	equivParent []int
	equivRank   []int
	slashval    []Value

	// Remaining V shapes per cell.
	vbitmap []int

	// Dead-end aggregates, valid at union-find roots only.
	exits  []int
	border []bool
}

// State is a full snapshot of every mutable Board structure, produced
// by SaveState and consumed by RestoreState. Snapshots share nothing
// with the live Board.
type State struct {
	cellValues  []Value
	parent      []int
	rank        []int
	equivParent []int
	equivRank   []int
	slashval    []Value
	vbitmap     []int
	exits       []int
	border      []bool
}
