package astar_test

import (
	"fmt"

	"github.com/karalvik/npuzzle/astar"
	"github.com/karalvik/npuzzle/board"
)

// ExampleSolve solves a two-move scramble and prints the playback frames
// the renderer would show, one per move.
func ExampleSolve() {
	start, _ := board.New(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	goal := board.Goal(3)

	res, err := astar.Solve(start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("moves:", res.Cost)
	for _, frame := range res.Path {
		fmt.Println(frame)
	}
	// Output:
	// moves: 2
	// 1,2,3|4,5,6|7,_,8
	// 1,2,3|4,5,6|7,8,_
}

// ExampleSolve_unsolvable shows the parity short-circuit: a single
// adjacent transposition is rejected without any search.
func ExampleSolve_unsolvable() {
	start, _ := board.New(3, []int{2, 1, 3, 4, 5, 6, 7, 8, 0})
	_, err := astar.Solve(start, board.Goal(3))
	fmt.Println(err)
	// Output:
	// astar: goal is not reachable from start
}
