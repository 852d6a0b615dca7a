// Package scramble defines options and sentinel errors for scramble
// generation.
package scramble

import (
	"errors"
	"fmt"
)

// Sentinel errors for scramble generation.
var (
	// ErrZeroBoard indicates a zero-value goal board was supplied.
	ErrZeroBoard = errors.New("scramble: zero-value board supplied")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("scramble: invalid option supplied")
)

// Mode selects the generation strategy.
type Mode int

const (
	// Uniform shuffles the tiles until the parity test accepts the
	// permutation.
	Uniform Mode = iota

	// Walk performs a random walk of legal moves from the goal.
	Walk
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Walk:
		return "walk"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures Scramble via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of one Scramble call.
type Options struct {
	// Mode selects Uniform or Walk generation.
	Mode Mode

	// Seed makes the scramble reproducible. 0 seeds from the clock.
	Seed int64

	// WalkLength is the number of random moves in Walk mode.
	// 0 picks a default proportional to the board area.
	WalkLength int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Uniform mode, a clock seed, and an
// area-derived walk length.
func DefaultOptions() Options {
	return Options{
		Mode:       Uniform,
		Seed:       0,
		WalkLength: 0,
	}
}

// WithMode selects the generation strategy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m < Uniform || m > Walk {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithSeed fixes the random source for reproducible scrambles.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWalkLength sets the number of moves in Walk mode.
//
//	n > 0:  walk exactly n moves
//	n == 0: default, 10·N² moves
//	n < 0:  invalid option → ErrOptionViolation
func WithWalkLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: WalkLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.WalkLength = n
	}
}
