// Package generator builds Slants puzzles: a random loop-free solution,
// the full clue set it induces, and a clue reduction that keeps the
// puzzle solvable by deduction alone.
//
// What:
//
//   - RandomSolution fills a grid with random diagonals, loop-free by
//     construction.
//   - VertexClues derives the full clue set of a solution.
//   - Reduce blanks clues while the bound solver still reproduces the
//     known solution; Generate chains the three steps and re-verifies
//     the result.
//
// Why:
//
//   - A full clue set always deduces: the top-left vertex of the first
//     undecided cell has every other incident cell decided, so one of
//     the counting rules pins it. Generation therefore never retries;
//     difficulty comes from how far the reduction gets.
//   - Removal order decides which clues survive. Each pass shuffles the
//     order independently and the fewest-clue outcome wins.
//
// Complexity:
//
//   - RandomSolution: O(W×H) frames, each with an O(V) snapshot.
//   - Reduce: one verification solve per clued vertex and pass.
//
// Errors:
//
//   - ErrVerifyFailed: the puzzle did not solve back to its own
//     solution under the configured tier cap.
package generator
