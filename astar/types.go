// Package astar defines configuration options, result types, and sentinel
// errors for the A* sliding-tile solver.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/karalvik/npuzzle/board"
)

// Sentinel errors for A* execution.
var (
	// ErrZeroBoard indicates a zero-value board.Board was supplied.
	ErrZeroBoard = errors.New("astar: zero-value board supplied")

	// ErrSizeMismatch indicates start and goal use different grid sizes.
	ErrSizeMismatch = errors.New("astar: start and goal differ in size")

	// ErrNoPath indicates the goal is not reachable from the start.
	ErrNoPath = errors.New("astar: goal is not reachable from start")

	// ErrBudgetExhausted indicates the expansion budget ran out before
	// the goal was reached.
	ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic selects the admissible estimate used to order the frontier.
type Heuristic int

const (
	// Manhattan sums, over all non-blank tiles, the row plus column
	// distance between the tile's current and goal cells. Consistent,
	// and the strongest estimate this package offers.
	Manhattan Heuristic = iota

	// Misplaced counts the non-blank tiles that sit off their goal cell.
	// Admissible but weak; useful as a baseline in comparison runs.
	Misplaced
)

// String returns the heuristic's display name.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Misplaced:
		return "misplaced"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// Option configures Solve via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Solve runs.
type Option func(*Options)

// Options holds the tunable parameters of one Solve call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Heur selects the frontier ordering estimate.
	Heur Heuristic

	// MaxExpansions, if > 0, aborts the search with ErrBudgetExhausted
	// after that many state expansions. 0 disables the budget.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// Manhattan heuristic, no expansion budget.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heur:          Manhattan,
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the frontier estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h < Manhattan || h > Misplaced {
			o.err = fmt.Errorf("%w: unknown heuristic %d", ErrOptionViolation, int(h))
			return
		}
		o.Heur = h
	}
}

// WithMaxExpansions caps the number of state expansions.
//
//	n > 0:  abort with ErrBudgetExhausted after n expansions
//	n == 0: explicit no budget
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a successful Solve:
//   - Path: boards from the first post-move state through the goal, one
//     entry per move. Empty when start already equals goal.
//   - Cost: number of moves, always len(Path).
//   - Expanded: states popped and expanded during the search.
type Result struct {
	Path     []board.Board
	Cost     int
	Expanded int
}
