package sat

import (
	"math/bits"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/slants/board"
	"github.com/katalvlaran/slants/solver"
)

// encoder owns the CNF instance built from one partially deduced board.
// One boolean variable per cell, true meaning Slash.
type encoder struct {
	g       *gini.Gini
	b       *board.Board
	unknown []*board.Cell
}

// newEncoder builds the instance: a unit clause per decided cell and an
// exactly-clue cardinality constraint over the touch literals of every
// clued vertex. Loop freedom is not encoded; searchModels enforces it
// lazily with blocking clauses.
func newEncoder(b *board.Board) *encoder {
	e := &encoder{g: gini.New(), b: b, unknown: b.UnknownCells()}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.CellAt(x, y)
			if c.Value == board.Unknown {
				continue
			}
			lit := e.cellLit(c)
			if c.Value == board.Backslash {
				lit = lit.Not()
			}
			e.g.Add(lit)
			e.g.Add(0)
		}
	}

	for _, v := range b.CluedVertices() {
		var touch []z.Lit
		for _, adj := range b.AdjacentCells(v) {
			lit := e.cellLit(adj.Cell)
			if adj.BackslashTouches {
				lit = lit.Not()
			}
			touch = append(touch, lit)
		}
		e.addExactly(touch, v.Clue)
	}

	return e
}

// cellLit maps a cell to its positive literal, variables numbered
// row-major from 1.
func (e *encoder) cellLit(c *board.Cell) z.Lit {
	return z.Var(c.Y*e.b.Width + c.X + 1).Pos()
}

// addExactly constrains exactly k of the literals to be true: at most k
// as the negation of every (k+1)-subset, at least k as the disjunction
// of every (n-k+1)-subset. A vertex has at most four incident cells, so
// the binomial form stays tiny and needs no auxiliary variables.
func (e *encoder) addExactly(lits []z.Lit, k int) {
	forEachSubset(lits, k+1, func(sub []z.Lit) {
		for _, m := range sub {
			e.g.Add(m.Not())
		}
		e.g.Add(0)
	})
	forEachSubset(lits, len(lits)-k+1, func(sub []z.Lit) {
		for _, m := range sub {
			e.g.Add(m)
		}
		e.g.Add(0)
	})
}

// forEachSubset calls fn for every subset of the given size, in mask
// order. A size of zero or less yields the single empty subset, which
// as a clause is unsatisfiable; this is exactly right for a clue larger
// than its incident cell count. A size beyond len(lits) yields nothing.
func forEachSubset(lits []z.Lit, size int, fn func([]z.Lit)) {
	if size <= 0 {
		fn(nil)
		return
	}
	n := len(lits)
	if size > n {
		return
	}
	for mask := 1; mask < 1<<n; mask++ {
		if bits.OnesCount(uint(mask)) != size {
			continue
		}
		sub := make([]z.Lit, 0, size)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sub = append(sub, lits[i])
			}
		}
		fn(sub)
	}
}

// searchModels drives the model loop: pull a model, block it while it
// closes a cycle, then hunt a second distinct loop-free model to tell a
// unique solution from an ambiguous puzzle. Iteration counts include
// the final unsatisfiable call of each phase; loopBlocks counts only
// first-phase cycle rejections.
func (e *encoder) searchModels() (status solver.Status, solution string, iterations, loopBlocks int) {
	for iterations < maxFirstPhaseModels {
		iterations++

		if e.g.Solve() != 1 {
			return solver.StatusUnsolved, e.b.Solution(), iterations, loopBlocks
		}

		vals := e.model()
		if !e.loopFree(vals) {
			e.blockModel(vals)
			loopBlocks++
			log.WithFields(logrus.Fields{
				"iteration": iterations,
				"blocks":    loopBlocks,
			}).Debug("model closes a cycle, blocking it")
			continue
		}

		first := e.render(vals)
		e.blockModel(vals)

		second := 0
		hasSecond := false
		for second < maxSecondPhaseModels {
			second++
			if e.g.Solve() != 1 {
				break
			}
			vals2 := e.model()
			if e.loopFree(vals2) {
				hasSecond = true
				break
			}
			e.blockModel(vals2)
		}

		iterations += second
		if hasSecond {
			return solver.StatusMult, first, iterations, loopBlocks
		}
		return solver.StatusSolved, first, iterations, loopBlocks
	}

	return solver.StatusUnsolved, e.b.Solution(), iterations, loopBlocks
}

// model reads the current satisfying assignment as one value per cell
// in row-major order. Decided cells keep their board value, open cells
// take the solver's.
func (e *encoder) model() []board.Value {
	vals := make([]board.Value, e.b.Width*e.b.Height)
	for y := 0; y < e.b.Height; y++ {
		for x := 0; x < e.b.Width; x++ {
			c := e.b.CellAt(x, y)
			v := c.Value
			if v == board.Unknown {
				v = board.Backslash
				if e.g.Value(e.cellLit(c)) {
					v = board.Slash
				}
			}
			vals[y*e.b.Width+x] = v
		}
	}
	return vals
}

// loopFree reports whether the assignment closes no cycle. A scratch
// union-find over the vertices is seeded with the already placed
// diagonals, then every solver-assigned diagonal must bridge two
// distinct groups.
func (e *encoder) loopFree(vals []board.Value) bool {
	w, h := e.b.Width, e.b.Height
	parent := make([]int, (w+1)*(h+1))
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) bool {
		ra, rb := find(a), find(b)
		if ra == rb {
			return false
		}
		parent[rb] = ra
		return true
	}
	endpoints := func(x, y int, v board.Value) (int, int) {
		if v == board.Slash {
			return (y+1)*(w+1) + x, y*(w+1) + x + 1
		}
		return y*(w+1) + x, (y+1)*(w+1) + x + 1
	}

	// Placed diagonals were loop-checked at placement time and only
	// seed the groups.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if e.b.CellAt(x, y).Value == board.Unknown {
				continue
			}
			union(endpoints(x, y, vals[y*w+x]))
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if e.b.CellAt(x, y).Value != board.Unknown {
				continue
			}
			if !union(endpoints(x, y, vals[y*w+x])) {
				return false
			}
		}
	}
	return true
}

// blockModel forbids the assignment's values on the still open cells.
// Decided cells are pinned by unit clauses and never need blocking.
func (e *encoder) blockModel(vals []board.Value) {
	for _, c := range e.unknown {
		lit := e.cellLit(c)
		if vals[c.Y*e.b.Width+c.X] == board.Slash {
			lit = lit.Not()
		}
		e.g.Add(lit)
	}
	e.g.Add(0)
}

// render encodes the assignment as a solution string without touching
// the board.
func (e *encoder) render(vals []board.Value) string {
	var sb strings.Builder
	sb.Grow(len(vals))
	for _, v := range vals {
		sb.WriteString(v.String())
	}
	return sb.String()
}
