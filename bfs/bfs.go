// Package bfs implements brute-force breadth-first search over the
// sliding-tile state graph. See doc.go for when to prefer it.
package bfs

import (
	"fmt"

	"github.com/karalvik/npuzzle/board"
)

// Solve finds a shortest move sequence from start to goal by exhaustive
// breadth-first exploration. Returns ErrNoPath if the reachable
// component (or the WithMaxDepth horizon) does not contain the goal.
func Solve(start, goal board.Board, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if start.Size() == 0 || goal.Size() == 0 {
		return nil, ErrZeroBoard
	}
	if start.Size() != goal.Size() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, start.Size(), goal.Size())
	}
	if start == goal {
		return &Result{Path: []board.Board{}}, nil
	}

	w := &walker{
		goal:   goal,
		opts:   cfg,
		queue:  []queueItem{{b: start}},
		depth:  map[board.Board]int{start: 0},
		parent: make(map[board.Board]board.Board),
	}

	return w.run(start)
}

// queueItem pairs a board with its distance from the start.
type queueItem struct {
	b     board.Board
	depth int
}

// walker encapsulates mutable BFS state for one Solve call.
type walker struct {
	goal     board.Board
	opts     Options
	queue    []queueItem
	depth    map[board.Board]int
	parent   map[board.Board]board.Board
	expanded int
}

// run processes the queue in FIFO order until the goal is dequeued, the
// queue drains, or the context is cancelled.
func (w *walker) run(start board.Board) (*Result, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.b == w.goal {
			return w.reconstruct(start), nil
		}

		w.expanded++
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range item.b.Neighbors() {
			if _, seen := w.depth[nb]; seen {
				continue
			}
			w.depth[nb] = next
			w.parent[nb] = item.b
			w.queue = append(w.queue, queueItem{b: nb, depth: next})
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks parent links from the goal back to the start and
// reverses the walk; the start carries no parent entry and stays out of
// the path.
func (w *walker) reconstruct(start board.Board) *Result {
	path := make([]board.Board, 0, w.depth[w.goal])
	for cur := w.goal; cur != start; cur = w.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Cost: len(path), Expanded: w.expanded}
}
