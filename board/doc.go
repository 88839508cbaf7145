// Package board models one Slants (Gokigen Naname) puzzle and the
// incremental structures that make deduction and search cheap.
//
// What:
//
//   - Board holds the cell grid, the clued vertices, a vertex union-find
//     for loop detection, a cell union-find for equivalence classes, and
//     a per-cell orientation bitmap.
//   - DecodeGivens/EncodeGivens translate the wire encoding of vertex
//     clues (digits 0-4, letter-coded runs of unclued vertices).
//   - PlaceValue, WouldFormLoop, CountTouches, MarkCellsEquivalent and
//     the bitmap operations are the mutation/query surface the rule
//     engine and the solvers are built on.
//   - SaveState/RestoreState snapshot everything for backtracking.
//
// Why:
//
//   - A diagonal is an edge between two grid vertices; the no-loop
//     constraint is exactly "the placed diagonals form a forest", so a
//     union-find with refusal on same-root unions detects violations in
//     near-constant time instead of walking the diagonal graph.
//   - Each union-find root also aggregates remaining exits and border
//     contact, which the dead-end rules read without any traversal.
//
// Complexity:
//
//   - PlaceValue / WouldFormLoop: O(α(V)) amortized.
//   - IsValid / IsValidSolution:  O(V).
//   - SaveState / RestoreState:   O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below one.
//   - ErrMalformedGivens: givens decode to the wrong vertex count or
//     contain an unexpected rune.
//   - ErrLoopFormed: a placement would close a cycle; callers either
//     pick the other orientation or abandon the branch.
package board
