// Package astar finds a provably shortest move sequence between two
// sliding-tile boards using best-first (A*) search over the puzzle's
// implicit state graph.
//
// Overview:
//
//   - States are board.Board values generated on demand; no graph is ever
//     materialized. Each expansion derives at most 4 neighbor boards.
//   - The frontier is a min-heap keyed by f = g + h, where g is the move
//     count from start and h an admissible heuristic estimate of the
//     remaining moves. With a consistent heuristic, the first time the
//     goal is popped its g is the optimal solution length.
//   - Unsolvable pairs are rejected up front by the inversion-parity test
//     in O(n²) (board.Solvable), so the search never burns effort on the
//     unreachable half of the permutation space. Should the frontier ever
//     drain anyway, ErrNoPath is returned rather than looping.
//
// Heuristics:
//
//	– Manhattan (default): sum over non-blank tiles of the row+column
//	  distance to the tile's goal cell. Admissible and consistent.
//	– Misplaced: count of non-blank tiles off their goal cell. Also
//	  admissible, strictly weaker; kept for comparison runs.
//
// Determinism:
//
//	Frontier ties on f break by smaller h, then by discovery order, so
//	repeated runs over the same input pop states in the same sequence and
//	return the same path.
//
// Result shape:
//
//	Result.Path lists the boards from the first post-move state through
//	the goal, one entry per move; the start board is deliberately omitted,
//	so Solve(b, b) yields an empty path and len(Path) always equals the
//	number of moves (Result.Cost).
//
// Errors (sentinel):
//
//	– ErrZeroBoard       if either board is the zero value.
//	– ErrSizeMismatch    if start and goal use different grid sizes.
//	– ErrNoPath          if goal is unreachable from start.
//	– ErrBudgetExhausted if WithMaxExpansions ran out before the goal.
//	– ErrOptionViolation if an invalid Option was supplied.
//
// Complexity:
//
//	– Time:  O(S log S) for S states actually discovered; Manhattan keeps
//	  S far below the N²!/2 reachable states on practical scrambles.
//	– Space: O(S) for the g-score map, predecessor map, closed set and
//	  frontier, all owned by the one Solve call and released on return.
//
// Example usage:
//
//	res, err := astar.Solve(start, board.Goal(3),
//	    astar.WithMaxExpansions(200_000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("solved in %d moves, %d expansions\n", res.Cost, res.Expanded)
package astar
