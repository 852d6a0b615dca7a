package astar

import "github.com/karalvik/npuzzle/board"

// estimator evaluates the configured heuristic against a fixed goal.
// The goal cell of every tile is resolved once at construction so each
// estimate runs in O(n) with no lookups into the goal board.
type estimator struct {
	size    int
	kind    Heuristic
	goalPos []int // tile identifier → linear index in the goal board
}

func newEstimator(goal board.Board, kind Heuristic) *estimator {
	n := goal.Cells()
	pos := make([]int, n)
	for i := 0; i < n; i++ {
		pos[goal.Cell(i)] = i
	}

	return &estimator{size: goal.Size(), kind: kind, goalPos: pos}
}

// estimate returns the heuristic value of b relative to the goal.
// Both variants ignore the blank, which keeps them admissible: every
// misplaced tile needs at least one move (Misplaced), and at least its
// Manhattan distance in moves (Manhattan), to reach its goal cell.
func (e *estimator) estimate(b board.Board) int {
	n := b.Cells()
	sum := 0
	for i := 0; i < n; i++ {
		t := b.Cell(i)
		if t == board.Blank {
			continue
		}
		g := e.goalPos[t]
		switch e.kind {
		case Misplaced:
			if g != i {
				sum++
			}
		default: // Manhattan
			dr := i/e.size - g/e.size
			if dr < 0 {
				dr = -dr
			}
			dc := i%e.size - g%e.size
			if dc < 0 {
				dc = -dc
			}
			sum += dr + dc
		}
	}

	return sum
}
