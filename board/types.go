// Package board defines the Board value type, legal moves, and sentinel
// errors for the sliding-tile puzzle.
package board

import "errors"

// Blank is the identifier of the empty cell. Every Board contains it
// exactly once; all other cells hold the tiles 1..N²−1.
const Blank = 0

// MinSize and MaxSize bound the supported grid widths. The lower bound is
// the smallest grid with a legal move; the upper bound keeps every tile
// identifier within the one byte a packed cell occupies.
const (
	MinSize = 2
	MaxSize = 16
)

// Sentinel errors for board construction and manipulation.
var (
	// ErrInvalidBoard indicates a malformed configuration: unsupported
	// size, wrong number of tiles, or a duplicate/missing identifier.
	ErrInvalidBoard = errors.New("board: invalid configuration")

	// ErrIllegalMove indicates that applying a move would push the blank
	// outside the grid.
	ErrIllegalMove = errors.New("board: move leaves the grid")

	// ErrSizeMismatch indicates that two boards of different grid sizes
	// were combined in one operation.
	ErrSizeMismatch = errors.New("board: boards differ in size")
)

// Move is one of the four blank slides. Up moves the blank one row up
// (the tile above slides down into the gap), and so on.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

// moveOffsets maps each Move to its (row, col) delta for the blank cell.
var moveOffsets = [...][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Moves lists all four directions in a stable order, handy for iterating
// over candidate blank slides.
var Moves = [...]Move{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Board is one arrangement of tiles on an N×N grid. The zero value is not
// a valid board; use New or Goal. Boards are immutable and comparable:
// b1 == b2 holds exactly when both describe the same configuration, which
// lets a Board key g-score and predecessor maps directly.
type Board struct {
	size  int
	cells string // row-major, one byte per cell, Blank included
}
