// Package solver turns a Slants puzzle into a verdict by production
// rule deduction, optionally wrapped in backtracking search.
//
// What:
//
//   - Deduce runs the rule registry to a fixpoint: cheapest rule first,
//     any firing restarts the scan, stop on solved, invalid, or a full
//     silent pass.
//   - Search interleaves the same fixpoint with an explicit-stack
//     backtracking loop: a stalled board branches on its most
//     constrained cell, and a second recorded solution downgrades the
//     verdict to StatusMult.
//   - Result carries the verdict, the row-major solution string, the
//     accumulated rule work, and the highest rule tier that fired.
//
// Why:
//
//   - Running the full registry between branches keeps the search tree
//     tiny; most frames collapse by deduction alone.
//   - Frames hold board snapshots instead of recursion state, so
//     abandoning a contradictory branch is a single restore.
//
// Complexity:
//
//   - Deduce: O(iterations × registry scan), capped at 1000 iterations.
//   - Search: exponential worst case, bounded in practice by the rule
//     fixpoint between branches; each frame costs one O(W×H) snapshot.
//
// Errors:
//
//   - None. Malformed givens and contradictory boards surface as
//     StatusUnsolved on the Result, never as an error value or a panic.
package solver
