// Package bfs defines options and sentinel errors for the brute-force
// breadth-first sliding-tile solver.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/karalvik/npuzzle/board"
)

// Sentinel errors for BFS execution.
var (
	// ErrZeroBoard indicates a zero-value board.Board was supplied.
	ErrZeroBoard = errors.New("bfs: zero-value board supplied")

	// ErrSizeMismatch indicates start and goal use different grid sizes.
	ErrSizeMismatch = errors.New("bfs: start and goal differ in size")

	// ErrNoPath indicates the goal was not reached: either it is
	// unreachable or WithMaxDepth cut the search off first.
	ErrNoPath = errors.New("bfs: goal not reached")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of one Solve call.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many moves.
	// 0 explicitly disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no depth
// limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
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

// WithMaxDepth stops the search at the given move depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a successful Solve, shaped identically to
// astar.Result: one board per move ending at the goal, the start omitted.
type Result struct {
	Path     []board.Board
	Cost     int
	Expanded int
}
