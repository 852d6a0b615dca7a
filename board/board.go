package board

import (
	"fmt"
	"strings"
)

// New builds a Board from tiles listed in row-major order. The slice must
// hold size² entries covering every identifier in {Blank, 1..size²−1}
// exactly once; violations are reported as ErrInvalidBoard.
func New(size int, tiles []int) (Board, error) {
	if size < MinSize || size > MaxSize {
		return Board{}, fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidBoard, size, MinSize, MaxSize)
	}
	n := size * size
	if len(tiles) != n {
		return Board{}, fmt.Errorf("%w: got %d tiles, want %d", ErrInvalidBoard, len(tiles), n)
	}

	// Every identifier 0..n−1 must appear exactly once.
	seen := make([]bool, n)
	packed := make([]byte, n)
	for i, t := range tiles {
		if t < 0 || t >= n {
			return Board{}, fmt.Errorf("%w: tile %d out of range at cell %d", ErrInvalidBoard, t, i)
		}
		if seen[t] {
			return Board{}, fmt.Errorf("%w: duplicate tile %d at cell %d", ErrInvalidBoard, t, i)
		}
		seen[t] = true
		packed[i] = byte(t)
	}

	return Board{size: size, cells: string(packed)}, nil
}

// Goal returns the canonical solved ordering for the given grid size:
// tiles 1..size²−1 in row-major order followed by the blank.
// Goal panics on an unsupported size; it exists to be a safe literal in
// callers that already hold a validated size, so a failure here is a
// programming error, not input.
func Goal(size int) Board {
	if size < MinSize || size > MaxSize {
		panic(fmt.Sprintf("board: Goal size %d outside [%d, %d]", size, MinSize, MaxSize))
	}
	n := size * size
	packed := make([]byte, n)
	for i := 0; i < n-1; i++ {
		packed[i] = byte(i + 1)
	}
	packed[n-1] = Blank

	return Board{size: size, cells: string(packed)}
}

// Size returns the grid width N. A zero-value Board reports 0.
func (b Board) Size() int { return b.size }

// Cells returns the number of grid cells, N².
func (b Board) Cells() int { return b.size * b.size }

// Cell returns the tile at linear (row-major) index i.
func (b Board) Cell(i int) int { return int(b.cells[i]) }

// At returns the tile at the given row and column.
func (b Board) At(row, col int) int { return int(b.cells[row*b.size+col]) }

// Tiles returns a fresh row-major copy of the configuration. Mutating the
// returned slice does not affect the board.
func (b Board) Tiles() []int {
	out := make([]int, len(b.cells))
	for i := 0; i < len(b.cells); i++ {
		out[i] = int(b.cells[i])
	}

	return out
}

// BlankIndex returns the linear index of the blank cell.
func (b Board) BlankIndex() int {
	return strings.IndexByte(b.cells, Blank)
}

// Apply slides the blank one cell in the given direction and returns the
// resulting Board. The receiver is left untouched. Returns ErrIllegalMove
// when the blank would leave the grid.
func (b Board) Apply(m Move) (Board, error) {
	if m < Up || m > Right {
		return Board{}, fmt.Errorf("%w: unknown direction %d", ErrIllegalMove, m)
	}
	blank := b.BlankIndex()
	row, col := blank/b.size, blank%b.size
	row += moveOffsets[m][0]
	col += moveOffsets[m][1]
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return Board{}, fmt.Errorf("%w: %s from cell %d on a %d×%d grid", ErrIllegalMove, m, blank, b.size, b.size)
	}

	return b.swap(blank, row*b.size+col), nil
}

// Neighbors returns every board one legal blank slide away: 2 when the
// blank sits in a corner, 3 on an edge, 4 in the interior. Each neighbor
// is a fresh value; the receiver is never mutated.
func (b Board) Neighbors() []Board {
	blank := b.BlankIndex()
	row, col := blank/b.size, blank%b.size

	out := make([]Board, 0, 4)
	for _, m := range Moves {
		nr, nc := row+moveOffsets[m][0], col+moveOffsets[m][1]
		if nr < 0 || nr >= b.size || nc < 0 || nc >= b.size {
			continue
		}
		out = append(out, b.swap(blank, nr*b.size+nc))
	}

	return out
}

// swap exchanges two cells and returns the derived board.
func (b Board) swap(i, j int) Board {
	packed := []byte(b.cells)
	packed[i], packed[j] = packed[j], packed[i]

	return Board{size: b.size, cells: string(packed)}
}

// String renders the board on one line, rows separated by '|' and the
// blank shown as '_', e.g. "1,2,3|4,_,6|7,5,8" for a 3×3 board.
func (b Board) String() string {
	if b.size == 0 {
		return "<zero board>"
	}
	var sb strings.Builder
	for i := 0; i < len(b.cells); i++ {
		if i > 0 {
			if i%b.size == 0 {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(',')
			}
		}
		if b.cells[i] == Blank {
			sb.WriteByte('_')
		} else {
			fmt.Fprintf(&sb, "%d", b.cells[i])
		}
	}

	return sb.String()
}
