// Package slants is an engine for Slants (Gokigen Naname) puzzles:
// boards, deduction rules, three solvers and a puzzle generator.
//
// 🚀 What is slants?
//
//	A puzzle engine that brings together:
//		• Board primitives: cells, vertex clues, loop detection via union-find
//		• A scored rule registry: counting, loop avoidance, V shapes, equivalence
//		• Solvers: production rules (PR), backtracking search (BF), CNF over SAT
//		• A generator: random loop-free solutions + clue reduction
//		• A suite file format shared by the CLI and the test harness
//
// ✨ Why slants?
//
//   - Deterministic – same givens, same trace, same work score
//   - Graded – every solve reports its work score and hardest rule tier
//   - Small surface – solvers are plain functions over one Options struct
//
// Under the hood, everything is organized under these subpackages:
//
//	board/     — grid state, givens codec, union-find loop detection
//	rules/     — the scored deduction registry
//	solver/    — Deduce (rules to a fixpoint) and Search (backtracking)
//	sat/       — CNF finishing over a SAT solver
//	generator/ — random solutions and clue reduction
//	suite/     — the tab-delimited puzzle-file format
//	cmd/       — the solve/generate CLI
//
// Quick ASCII example:
//
//	1-.-.
//	|\| |
//	.-.-.     a 2x2 board: the corner clue 1 is satisfied by the
//	| | |     one backslash touching it
//	.-.-.
//
// Dive into the examples/ directory for runnable demos of solving,
// ambiguity detection, SAT finishing and generation.
//
//	go get github.com/katalvlaran/slants
package slants
