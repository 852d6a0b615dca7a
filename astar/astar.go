// Package astar implements best-first shortest-path search over the
// sliding-tile state graph. See doc.go for the full contract.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/karalvik/npuzzle/board"
)

// Solve finds a shortest move sequence from start to goal.
//
// Validation (in order):
//  1. Options must be well-formed (ErrOptionViolation).
//  2. Both boards must be non-zero (ErrZeroBoard).
//  3. Both boards must share one grid size (ErrSizeMismatch).
//  4. start == goal short-circuits to an empty path before any search.
//  5. The parity invariant must admit a path (ErrNoPath).
//
// On success the returned Result lists one board per move, ending at
// goal; the start board is omitted. All search state is local to the
// call, so Solve is reentrant and safe to run concurrently on separate
// inputs.
func Solve(start, goal board.Board, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Reject zero-value boards.
	if start.Size() == 0 || goal.Size() == 0 {
		return nil, ErrZeroBoard
	}

	// 3) Boards must agree on the grid size. Equal sizes plus the Board
	//    construction invariant guarantee equal tile multisets.
	if start.Size() != goal.Size() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, start.Size(), goal.Size())
	}

	// 4) Zero moves needed: return before the loop so reconstruction can
	//    never emit the start as a spurious first frame.
	if start == goal {
		return &Result{Path: []board.Board{}}, nil
	}

	// 5) Parity short-circuit: unsolvable pairs fail in O(n²) instead of
	//    exhausting half the permutation space.
	ok, err := board.Solvable(start, goal)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPath
	}

	r := &searcher{
		start:    start,
		goal:     goal,
		opts:     cfg,
		est:      newEstimator(goal, cfg.Heur),
		gScore:   map[board.Board]int{start: 0},
		cameFrom: make(map[board.Board]board.Board),
		closed:   make(map[board.Board]bool),
	}
	r.init()

	return r.run()
}

// searcher holds the mutable state of a single Solve call. Nothing here
// escapes the call; the maps and heap are garbage once run returns.
type searcher struct {
	start, goal board.Board
	opts        Options
	est         *estimator

	gScore   map[board.Board]int         // best-known move count from start
	cameFrom map[board.Board]board.Board // predecessor on the best path
	closed   map[board.Board]bool        // finalized states
	pq       nodePQ                      // frontier, min f
	seq      int                         // discovery counter for tie-breaks
	expanded int
}

// init seeds the frontier with the start state.
func (r *searcher) init() {
	heap.Init(&r.pq)
	h := r.est.estimate(r.start)
	heap.Push(&r.pq, &nodeItem{b: r.start, f: h, h: h})
}

// run is the main A* loop: pop the minimum-f state, finish if it is the
// goal, otherwise relax its neighbors. Stale heap entries (already
// closed) are skipped on pop: the lazy decrease-key pattern.
func (r *searcher) run() (*Result, error) {
	for r.pq.Len() > 0 {
		// cancellation check, once per pop
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		cur := item.b
		if r.closed[cur] {
			continue // stale entry from a superseded g-score
		}

		// First pop of the goal is optimal: Manhattan and Misplaced are
		// both consistent for the blank-slide move model.
		if cur == r.goal {
			return r.reconstruct(), nil
		}

		r.closed[cur] = true
		r.expanded++
		if r.opts.MaxExpansions > 0 && r.expanded > r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: budget %d", ErrBudgetExhausted, r.opts.MaxExpansions)
		}

		r.relax(cur)
	}

	// Cannot happen for inputs that passed the parity check, but the
	// contract is termination, not faith.
	return nil, ErrNoPath
}

// relax offers cur's neighbors an improved g-score and (re)inserts the
// improved ones into the frontier.
func (r *searcher) relax(cur board.Board) {
	tentative := r.gScore[cur] + 1
	for _, nb := range cur.Neighbors() {
		if r.closed[nb] {
			continue
		}
		if best, seen := r.gScore[nb]; seen && tentative >= best {
			continue
		}
		r.gScore[nb] = tentative
		r.cameFrom[nb] = cur

		h := r.est.estimate(nb)
		r.seq++
		heap.Push(&r.pq, &nodeItem{b: nb, f: tentative + h, h: h, seq: r.seq})
	}
}

// reconstruct walks predecessor links from the goal back to the start and
// reverses the walk. The start has no predecessor entry, so it is never
// included in the path.
func (r *searcher) reconstruct() *Result {
	path := make([]board.Board, 0, r.gScore[r.goal])
	for cur := r.goal; cur != r.start; cur = r.cameFrom[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Cost: len(path), Expanded: r.expanded}
}

// nodeItem is one frontier entry: a board plus its f and h scores and a
// discovery sequence number for deterministic tie-breaking.
type nodeItem struct {
	b   board.Board
	f   int
	h   int
	seq int
}

// nodePQ is a min-heap of *nodeItem ordered by f, then h, then discovery
// order. Superseded entries are left in place and skipped on pop via the
// closed set (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
