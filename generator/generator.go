package generator

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/slants/board"
	"github.com/katalvlaran/slants/solver"
)

var log = logrus.StandardLogger()

// RandomSolution fills a width x height grid with random diagonals,
// loop-free by construction, returned in row-major order. Backtracking
// over a scratch vertex union-find: each frame snapshots connectivity,
// tries both orientations in random order, and pushes the continuation
// of the first one that closes no cycle.
func (g *Generator) RandomSolution(width, height int) []board.Value {
	total := width * height
	solution := make([]board.Value, total)

	vertices := (width + 1) * (height + 1)
	parent := make([]int, vertices)
	rank := make([]int, vertices)
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
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
	}
	endpoints := func(idx int, v board.Value) (int, int) {
		x, y := idx%width, idx/width
		if v == board.Slash {
			return (y+1)*(width+1) + x, y*(width+1) + x + 1
		}
		return y*(width+1) + x, (y+1)*(width+1) + x + 1
	}

	type frame struct {
		cell   int
		parent []int
		rank   []int
	}
	stack := []frame{{
		cell:   0,
		parent: append([]int(nil), parent...),
		rank:   append([]int(nil), rank...),
	}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.cell == total {
			return solution
		}
		copy(parent, f.parent)
		copy(rank, f.rank)

		options := [2]board.Value{board.Slash, board.Backslash}
		if g.rng.Intn(2) == 1 {
			options[0], options[1] = options[1], options[0]
		}

		placed := false
		for _, v := range options {
			v1, v2 := endpoints(f.cell, v)
			if find(v1) == find(v2) {
				continue
			}
			solution[f.cell] = v
			union(v1, v2)
			stack = append(stack, frame{
				cell:   f.cell + 1,
				parent: append([]int(nil), parent...),
				rank:   append([]int(nil), rank...),
			})
			placed = true
			break
		}
		if !placed {
			solution[f.cell] = board.Unknown
		}
	}
	return nil
}

// VertexClues counts, for every vertex in row-major order, how many of
// the solution's diagonals touch it. The result is a full clue set:
// encoding it yields a puzzle with no unclued vertices.
func VertexClues(width, height int, solution []board.Value) []int {
	clues := make([]int, 0, (width+1)*(height+1))
	at := func(x, y int) board.Value {
		return solution[y*width+x]
	}
	for vy := 0; vy <= height; vy++ {
		for vx := 0; vx <= width; vx++ {
			count := 0
			if vx > 0 && vy > 0 && at(vx-1, vy-1) == board.Backslash {
				count++
			}
			if vx < width && vy > 0 && at(vx, vy-1) == board.Slash {
				count++
			}
			if vx > 0 && vy < height && at(vx-1, vy) == board.Slash {
				count++
			}
			if vx < width && vy < height && at(vx, vy) == board.Backslash {
				count++
			}
			clues = append(clues, count)
		}
	}
	return clues
}

// Reduce blanks clues in random order, keeping each removal only when
// the puzzle still deduces to the known solution under the tier cap.
// With Symmetry on, a clue and its 180-degree partner leave together.
// The slice is edited in place; the remaining clue count is returned.
func (g *Generator) Reduce(width, height int, clues []int, solution string) int {
	for _, idx := range g.rng.Perm(len(clues)) {
		if clues[idx] == board.NoClue {
			continue
		}

		symIdx := -1
		if g.opts.Symmetry {
			vx, vy := idx%(width+1), idx/(width+1)
			symIdx = (height-vy)*(width+1) + (width - vx)
		}

		oldVal := clues[idx]
		oldSym := board.NoClue
		clues[idx] = board.NoClue
		if symIdx >= 0 && symIdx != idx {
			oldSym = clues[symIdx]
			clues[symIdx] = board.NoClue
		}

		res := g.solve(board.EncodeGivens(clues), width, height, g.opts.MaxTier)
		if res.Status == solver.StatusSolved && res.Solution == solution {
			continue
		}

		clues[idx] = oldVal
		if symIdx >= 0 && symIdx != idx && oldSym != board.NoClue {
			clues[symIdx] = oldSym
		}
	}

	return lo.CountBy(clues, func(c int) bool { return c != board.NoClue })
}

// Generate builds one verified puzzle: a random loop-free solution, its
// full clue set, then ReductionPasses independent reductions from the
// full set, keeping the fewest-clue outcome. The reduced puzzle is
// solved once more and must reproduce the solution exactly.
func (g *Generator) Generate(width, height int) (Puzzle, error) {
	values := g.RandomSolution(width, height)
	if values == nil {
		return Puzzle{}, fmt.Errorf("generator: %dx%d solution: %w", width, height, ErrVerifyFailed)
	}
	solution := renderValues(values)

	allClues := VertexClues(width, height, values)
	res := g.solve(board.EncodeGivens(allClues), width, height, g.opts.MaxTier)
	if res.Status != solver.StatusSolved {
		return Puzzle{}, fmt.Errorf("generator: full clue set: %w", ErrVerifyFailed)
	}

	best := append([]int(nil), allClues...)
	bestCount := lo.CountBy(best, func(c int) bool { return c != board.NoClue })

	for pass := 0; pass < g.opts.ReductionPasses; pass++ {
		clues := append([]int(nil), allClues...)
		count := g.Reduce(width, height, clues, solution)
		log.WithFields(logrus.Fields{
			"pass":  pass + 1,
			"clues": count,
		}).Debug("reduction pass done")
		if count < bestCount {
			best = clues
			bestCount = count
		}
	}

	givens := board.EncodeGivens(best)
	res = g.solve(givens, width, height, g.opts.MaxTier)
	if res.Status != solver.StatusSolved || res.Solution != solution {
		return Puzzle{}, fmt.Errorf("generator: reduced puzzle: %w", ErrVerifyFailed)
	}

	return Puzzle{
		Givens:      givens,
		Solution:    solution,
		Clues:       bestCount,
		WorkScore:   res.WorkScore,
		MaxTierUsed: res.MaxTierUsed,
	}, nil
}

// renderValues encodes a full value slice as a solution string.
func renderValues(values []board.Value) string {
	var sb strings.Builder
	sb.Grow(len(values))
	for _, v := range values {
		sb.WriteString(v.String())
	}
	return sb.String()
}
