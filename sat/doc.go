// Package sat solves Slants boards that stall under cheap deduction by
// handing the remainder to a CNF solver.
//
// What:
//
//   - Solve runs the tier-1/2 production registry to a fixpoint, then
//     encodes the still-undecided cells as one boolean variable each
//     (true = Slash) with exactly-clue cardinality constraints around
//     every clued vertex.
//   - Models come back from gini one at a time; a model whose diagonals
//     close a cycle is excluded with a blocking clause and the solve
//     repeats. The first loop-free model is the candidate answer, and
//     one more search round distinguishes StatusSolved from StatusMult.
//
// Why:
//
//   - Clue constraints are pure cardinality over at most four literals,
//     which CNF handles natively; only the global no-loop condition
//     resists direct encoding, so it is enforced lazily, model by
//     model.
//   - Running the rule fixpoint first keeps the CNF small: every
//     deduced cell enters as a unit clause.
//
// Complexity:
//
//   - Encoding: O(V) clauses, at most a few dozen literals per vertex.
//   - Solving: NP-hard in principle, bounded by iteration caps of 5000
//     models in the first phase and 2000 in the second.
//
// Errors:
//
//   - None. Malformed givens, unsatisfiable clues, and exhausted caps
//     all surface as StatusUnsolved on the Result.
package sat
