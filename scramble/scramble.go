package scramble

import (
	"math/rand"
	"time"

	"github.com/karalvik/npuzzle/board"
)

// walkFactor scales the default Walk length by the board area, enough to
// mix even a 4×4 board well past its diameter.
const walkFactor = 10

// Scramble returns a board reachable from goal by legal moves, distinct
// from goal itself. See the package documentation for the two modes.
func Scramble(goal board.Board, opts ...Option) (board.Board, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return board.Board{}, cfg.err
	}
	if goal.Size() == 0 {
		return board.Board{}, ErrZeroBoard
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.Mode == Walk {
		return randomWalk(goal, cfg.WalkLength, rng), nil
	}

	return uniform(goal, rng)
}

// uniform shuffles the tile multiset until the parity test accepts the
// permutation. Half of all permutations are solvable, so this converges
// in two draws on average.
func uniform(goal board.Board, rng *rand.Rand) (board.Board, error) {
	tiles := goal.Tiles()
	for {
		rng.Shuffle(len(tiles), func(i, j int) {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		})
		b, err := board.New(goal.Size(), tiles)
		if err != nil {
			return board.Board{}, err
		}
		if b == goal {
			continue
		}
		ok, err := board.Solvable(b, goal)
		if err != nil {
			return board.Board{}, err
		}
		if ok {
			return b, nil
		}
	}
}

// randomWalk slides the blank randomly for the configured number of
// moves. Every intermediate state is reachable by construction; if the
// walk happens to end back on the goal, it is nudged one more move.
func randomWalk(goal board.Board, steps int, rng *rand.Rand) board.Board {
	if steps == 0 {
		steps = walkFactor * goal.Cells()
	}
	b := goal
	for i := 0; i < steps; i++ {
		nbs := b.Neighbors()
		b = nbs[rng.Intn(len(nbs))]
	}
	for b == goal {
		nbs := b.Neighbors()
		b = nbs[rng.Intn(len(nbs))]
	}

	return b
}
