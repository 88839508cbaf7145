package board

// Full-copy snapshots are the only rollback mechanism. Rule application
// touches many scattered structures, so copying everything out is far
// simpler to keep correct under frequent restore than inverse-operation
// undo logs; search depth stays shallow in practice because deduction
// runs to fixpoint before every branch.

// SaveState copies every mutable structure into a fresh State that
// shares no memory with the Board.
// Complexity: O(W×H) time and memory.
func (b *Board) SaveState() *State {
	s := &State{
		cellValues:  make([]Value, len(b.cells)),
		parent:      make([]int, len(b.parent)),
		rank:        make([]int, len(b.rank)),
		equivParent: make([]int, len(b.equivParent)),
		equivRank:   make([]int, len(b.equivRank)),
		slashval:    make([]Value, len(b.slashval)),
		vbitmap:     make([]int, len(b.vbitmap)),
		exits:       make([]int, len(b.exits)),
		border:      make([]bool, len(b.border)),
	}

	for i := range b.cells {
		s.cellValues[i] = b.cells[i].Value
	}
	copy(s.parent, b.parent)
	copy(s.rank, b.rank)
	copy(s.equivParent, b.equivParent)
	copy(s.equivRank, b.equivRank)
	copy(s.slashval, b.slashval)
	copy(s.vbitmap, b.vbitmap)
	copy(s.exits, b.exits)
	copy(s.border, b.border)

	return s
}

// RestoreState writes a snapshot back verbatim. The State must come
// from SaveState on the same Board; it stays reusable afterwards.
// Complexity: O(W×H) time.
func (b *Board) RestoreState(s *State) {
	for i := range b.cells {
		b.cells[i].Value = s.cellValues[i]
	}
	copy(b.parent, s.parent)
	copy(b.rank, s.rank)
	copy(b.equivParent, s.equivParent)
	copy(b.equivRank, s.equivRank)
	copy(b.slashval, s.slashval)
	copy(b.vbitmap, s.vbitmap)
	copy(b.exits, s.exits)
	copy(b.border, s.border)
}
