package board_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/karalvik/npuzzle/board"
)

// TestNew_Errors verifies that malformed configurations are rejected.
func TestNew_Errors(t *testing.T) {
	// wrong length for the declared size
	if _, err := board.New(3, []int{1, 2, 3, 4, 5, 6, 7, 0}); !errors.Is(err, board.ErrInvalidBoard) {
		t.Errorf("short slice: want ErrInvalidBoard, got %v", err)
	}
	// duplicate identifier
	if _, err := board.New(3, []int{1, 2, 3, 4, 4, 6, 7, 5, 0}); !errors.Is(err, board.ErrInvalidBoard) {
		t.Errorf("duplicate tile: want ErrInvalidBoard, got %v", err)
	}
	// identifier out of range
	if _, err := board.New(3, []int{1, 2, 3, 4, 9, 6, 7, 5, 0}); !errors.Is(err, board.ErrInvalidBoard) {
		t.Errorf("out-of-range tile: want ErrInvalidBoard, got %v", err)
	}
	// missing blank
	if _, err := board.New(2, []int{1, 2, 3, 4}); !errors.Is(err, board.ErrInvalidBoard) {
		t.Errorf("missing blank: want ErrInvalidBoard, got %v", err)
	}
	// unsupported sizes
	if _, err := board.New(1, []int{0}); !errors.Is(err, board.ErrInvalidBoard) {
		t.Errorf("size 1: want ErrInvalidBoard, got %v", err)
	}
	if _, err := board.New(17, make([]int, 17*17)); !errors.Is(err, board.ErrInvalidBoard) {
		t.Errorf("size 17: want ErrInvalidBoard, got %v", err)
	}
}

// TestGoal checks the canonical ordering and value equality.
func TestGoal(t *testing.T) {
	g := board.Goal(3)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 0}
	if got := g.Tiles(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Goal(3).Tiles() = %v; want %v", got, want)
	}
	if g.BlankIndex() != 8 {
		t.Errorf("BlankIndex = %d; want 8", g.BlankIndex())
	}

	same, err := board.New(3, want)
	if err != nil {
		t.Fatal(err)
	}
	if same != g {
		t.Error("New over the canonical ordering must equal Goal")
	}
}

// TestApply covers a legal slide, immutability, and the grid boundary.
func TestApply(t *testing.T) {
	g := board.Goal(3) // blank in the bottom-right corner

	up, err := g.Apply(board.Up)
	if err != nil {
		t.Fatalf("Apply(Up): %v", err)
	}
	if want := []int{1, 2, 3, 4, 5, 0, 7, 8, 6}; !reflect.DeepEqual(up.Tiles(), want) {
		t.Errorf("Apply(Up) = %v; want %v", up.Tiles(), want)
	}
	// receiver untouched
	if g != board.Goal(3) {
		t.Error("Apply mutated the receiver")
	}

	// blank is on the bottom row and the right column
	if _, err := g.Apply(board.Down); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("Apply(Down): want ErrIllegalMove, got %v", err)
	}
	if _, err := g.Apply(board.Right); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("Apply(Right): want ErrIllegalMove, got %v", err)
	}
	if _, err := g.Apply(board.Move(9)); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("Apply(bogus): want ErrIllegalMove, got %v", err)
	}
}

// TestNeighbors_Counts checks corner/edge/center neighbor counts on 3×3.
func TestNeighbors_Counts(t *testing.T) {
	cases := []struct {
		name  string
		tiles []int // blank position varies
		want  int
	}{
		{"corner", []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, 2},
		{"edge", []int{1, 0, 2, 3, 4, 5, 6, 7, 8}, 3},
		{"center", []int{1, 2, 3, 4, 0, 5, 6, 7, 8}, 4},
	}
	for _, tc := range cases {
		b, err := board.New(3, tc.tiles)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		nbs := b.Neighbors()
		if len(nbs) != tc.want {
			t.Errorf("%s: %d neighbors; want %d", tc.name, len(nbs), tc.want)
		}
		// each neighbor is one legal move away and distinct from b
		for _, nb := range nbs {
			if nb == b {
				t.Errorf("%s: neighbor equals origin", tc.name)
			}
			if !oneMoveApart(b, nb) {
				t.Errorf("%s: neighbor %v not one blank slide from %v", tc.name, nb, b)
			}
		}
	}
}

// TestTiles_Copy ensures the accessor hands out an independent slice.
func TestTiles_Copy(t *testing.T) {
	g := board.Goal(2)
	tiles := g.Tiles()
	tiles[0] = 99
	if got := g.Tiles()[0]; got != 1 {
		t.Errorf("board mutated through Tiles(): cell 0 = %d", got)
	}
}

// TestString renders blank as underscore and rows with pipes.
func TestString(t *testing.T) {
	b, err := board.New(3, []int{1, 2, 3, 4, 0, 6, 7, 5, 8})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "1,2,3|4,_,6|7,5,8"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// oneMoveApart reports whether a and b differ by exactly one blank swap
// with an orthogonally adjacent cell.
func oneMoveApart(a, b board.Board) bool {
	for _, nb := range a.Neighbors() {
		if nb == b {
			return true
		}
	}
	return false
}
