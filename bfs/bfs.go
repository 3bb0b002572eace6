// SPDX-License-Identifier: MIT
// Package: snarkcover/bfs
//
// bfs.go — the walker behind BFS.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/snarkcover/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   [][]int
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrStartVertexNotFound or ErrOptionViolation for invalid input,
// or the context error on cancellation, in which case the partial Result is
// still returned.
func BFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartVertexNotFound, start, g.Order())
	}

	n := g.Order()
	w := &walker{
		adj:   g.Adjacency(),
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = NoParent
	}

	w.enqueue(start, 0, NoParent)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor unless MaxDepth forbids it.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.adj[item.v] {
		if w.res.Depth[nbr] == Unreached {
			w.enqueue(nbr, next, item.v)
		}
	}
}
