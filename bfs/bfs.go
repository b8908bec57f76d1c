package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dcjcycles/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	root, ok := g.Vertex(start)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	w.enqueue(root, 0, nil)
	return w.res, w.loop()
}

// enqueue marks v seen at depth d and records its parent.
func (w *walker) enqueue(v *core.Vertex, d int, parent *core.Vertex) {
	w.res.Depth[v.ID()] = d
	if parent != nil {
		w.res.Parent[v.ID()] = parent.ID()
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v.ID())
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.v.ID(), err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// far end of the half-edges stored at item.v.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range item.v.Edges() {
		if !w.opts.FilterEdge(e) {
			continue
		}
		nbr := e.Adj()
		if _, seen := w.res.Depth[nbr.ID()]; !seen {
			w.enqueue(nbr, next, item.v)
		}
	}
}
