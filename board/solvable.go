package board

import "fmt"

// Solvable reports whether goal is reachable from b by legal blank slides.
//
// The test is the classic inversion-parity invariant, phrased relative to
// an arbitrary goal ordering rather than only the canonical one: tiles are
// ranked by their position in goal, the blank is stripped, and inversions
// are counted among the ranks. A horizontal blank slide changes neither
// the inversion count nor the blank's row. A vertical slide shifts a tile
// past N−1 others, flipping the inversion parity exactly when N is even,
// and moves the blank one row. Hence:
//
//	odd N:  reachable iff inversions are even
//	even N: reachable iff inversions + blank row distance is even
//
// Runs in O(n²) for n = N² cells, with no side effects.
func Solvable(b, goal Board) (bool, error) {
	if b.size == 0 || goal.size == 0 {
		return false, fmt.Errorf("%w: zero-value board", ErrInvalidBoard)
	}
	if b.size != goal.size {
		return false, fmt.Errorf("%w: %d×%d vs %d×%d", ErrSizeMismatch, b.size, b.size, goal.size, goal.size)
	}

	n := b.size * b.size

	// Rank each tile by its position in the goal ordering, blank excluded.
	rank := make([]int, n)
	next := 0
	for i := 0; i < n; i++ {
		if t := goal.cells[i]; t != Blank {
			rank[t] = next
			next++
		}
	}

	// Project b onto goal ranks, in b's linear order.
	seq := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if t := b.cells[i]; t != Blank {
			seq = append(seq, rank[t])
		}
	}

	inversions := 0
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				inversions++
			}
		}
	}

	if b.size%2 == 1 {
		return inversions%2 == 0, nil
	}

	rowDist := b.BlankIndex()/b.size - goal.BlankIndex()/goal.size
	if rowDist < 0 {
		rowDist = -rowDist
	}

	return (inversions+rowDist)%2 == 0, nil
}
