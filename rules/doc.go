// Package rules holds the deduction registry of the Slants solver: a
// fixed, cost-ordered list of production rules, each inspecting a board
// and committing every placement it can justify.
//
// What:
//
//   - Rule couples a deduction function with a stable name, a work
//     score charged per firing, and a human-difficulty tier.
//   - List returns the full registry in cost-ascending order;
//     SearchList returns the variant applied between search branches.
//   - FilterTier narrows a registry to the tiers a caller allows.
//   - The registry spans single-vertex clue counting, loop and
//     dead-end forcing, local clue patterns, equivalence classes,
//     V-shape bitmaps, a unified fixed-point pass, and two
//     trial-placement lookaheads.
//
// Why:
//
//   - Cheap-first ordering keeps solve cost low and doubles as a
//     difficulty grade: the most expensive tier a puzzle needs.
//   - Registries are plain values, never package-level mutable state,
//     so concurrent solves can filter different tiers independently.
//
// Complexity:
//
//   - Counting rules: O(V) per scan.
//   - Structure rules (dead ends, equivalence, bitmaps, unified):
//     O(W×H) per scan, union-find lookups O(α) each.
//   - Lookahead rules: O((W×H)²) worst case per scan.
//
// Errors: none. Rules only commit placements proven loop-free;
// contradictions surface through the board's own validity checks.
package rules
