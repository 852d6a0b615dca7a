// Package npuzzle solves the classic N×N sliding-tile puzzle: given a
// scrambled board and a goal board, it finds a provably shortest sequence
// of blank-slide moves between them and exposes that sequence as ordered
// playback frames.
//
// 🧩 What is npuzzle?
//
//	A small, correctness-first solver toolkit built from four pieces:
//		• board/    — the immutable Board value type, legal moves, neighbor
//		              generation, and the inversion-parity solvability test
//		• astar/    — A* best-first search with admissible heuristics
//		              (Manhattan, Misplaced) and a deterministic frontier
//		• bfs/      — brute-force breadth-first optimum, the independent
//		              yardstick the A* results are certified against
//		• scramble/ — solvable scramble generation (uniform shuffle with a
//		              parity filter, or a random walk from the goal)
//
// Around the engine:
//
//	playback/    — a WebSocket hub plus a small REST API that stream
//	               solution frames to external renderers at a fixed
//	               frame interval
//	cmd/npuzzle/ — command-line front end: check, solve, scramble, serve
//
// Design points:
//
//   - Board is a comparable value type (cells packed into a string), so it
//     keys the g-score and predecessor maps directly — no hashing glue.
//   - The state graph is implicit: neighbors are derived on demand, never
//     materialized. The frontier, score maps, and closed set are owned by
//     a single Solve call; nothing is process-wide and calls are reentrant.
//   - Unsolvable pairs are rejected by the parity invariant in O(n²) before
//     any search effort is spent.
//
// Quick taste:
//
//	start, _ := board.New(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8})
//	goal := board.Goal(3)
//	res, err := astar.Solve(start, goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, frame := range res.Path {
//	    fmt.Println(frame)
//	}
package npuzzle
