// Package board models one configuration of the N×N sliding-tile puzzle
// and answers the one question every solver must ask first: can this
// configuration reach that one at all?
//
// Core type:
//
//   - Board — an immutable, comparable value type. The cells are packed
//     row-major into a string (one byte per cell), so two Boards compare
//     equal exactly when they describe the same configuration, and a Board
//     can key a map directly. Tiles are 1..N²−1 plus the Blank sentinel (0).
//
// Operations:
//
//   - New(size, tiles) validates and builds a Board; Goal(size) builds the
//     canonical solved ordering 1..N²−1 followed by the blank.
//   - Apply(move) slides the blank one cell and returns a fresh Board;
//     Neighbors() returns the up-to-4 boards one legal move away. Both are
//     pure: the receiver is never mutated.
//   - Solvable(b, goal) decides reachability in O(n²) via inversion parity.
//
// Solvability rule:
//
//	Strip the blank and rank the remaining tiles by their position in the
//	goal ordering. Count inversions among the ranks. For odd N the pair is
//	mutually reachable iff the inversion count is even. For even N a
//	vertical blank move flips the inversion parity, so the rule becomes:
//	reachable iff inversions plus the blank's row distance between the two
//	boards is even. The rule is relative to an arbitrary goal, not just the
//	canonical one.
//
// Errors (sentinel):
//
//   - ErrInvalidBoard — malformed input: bad size, wrong tile count, or a
//     duplicate/missing identifier.
//   - ErrIllegalMove  — Apply would push the blank off the grid.
//   - ErrSizeMismatch — two boards of different sizes were compared.
//
// Complexity:
//
//	– New:        O(n)   (n = N² cells)
//	– Apply:      O(n)   (one copy of the packed cells)
//	– Neighbors:  O(n)   per neighbor, at most 4 neighbors
//	– Solvable:   O(n²)  (inversion count)
package board
