// Package bfs solves the sliding-tile puzzle by plain breadth-first
// search, with no heuristic guidance.
//
// Its job is to be the independent yardstick: BFS over a unit-cost graph
// is trivially optimal, so the astar package's results are certified
// against it in tests. It is also a usable fallback solver for small
// grids and shallow scrambles.
//
// Unlike astar.Solve, this package performs no parity pre-check — it
// terminates by exhausting the reachable component, which keeps it a
// genuinely independent oracle. On a 3×3 grid that component holds
// 9!/2 = 181 440 states, so exhaustion is affordable; prefer astar for
// anything larger.
//
// The Result shape and the rule that the start board is omitted from the
// returned path match the astar package exactly, so the two solvers are
// drop-in comparable.
package bfs
