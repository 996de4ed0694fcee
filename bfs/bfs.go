// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop count from a start vertex,
// with an optional visit hook, depth limiting and cancellation.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/isomap/core"
)

// walker encapsulates mutable BFS state. A walker can run several searches
// over the same graph: Components reuses one to label every vertex.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or any user-supplied hook error.
//
// Edge weights are ignored: depth counts hops.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Order() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, g.Order())
	}

	w := newWalker(g, o)
	w.enqueue(start, 0, unreached)

	return w.res, w.loop()
}

// ConnectedComponents labels every vertex of g with its connected component.
// Components are discovered by repeated BFS seeded at the lowest unlabelled
// vertex, which makes labels deterministic.
//
// Complexity: O(V + E) time, O(V) memory.
func ConnectedComponents(g *core.Graph) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, DefaultOptions())
	n := g.Order()
	comps := &Components{Labels: make([]int, n)}

	var v, id, seen int
	for v = 0; v < n; v++ {
		if w.res.Depth[v] != unreached {
			continue
		}
		id = len(comps.Sizes)
		seen = len(w.res.Order)
		w.enqueue(v, 0, unreached)
		if err := w.loop(); err != nil {
			return nil, err
		}
		for _, u := range w.res.Order[seen:] {
			comps.Labels[u] = id
		}
		comps.Sizes = append(comps.Sizes, len(w.res.Order)-seen)
	}

	return comps, nil
}

// newWalker allocates a walker whose Depth and Parent slots start unreached.
func newWalker(g *core.Graph, o Options) *walker {
	n := g.Order()
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = unreached
		res.Parent[i] = unreached
	}

	return &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res:   res,
	}
}

// enqueue marks v reached at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of v, honoring MaxDepth.
// Neighbors come sorted by index, so the visit order is reproducible.
func (w *walker) enqueueNeighbors(v int) error {
	neighbors, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %d: %w", v, err)
	}
	nextDepth := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range neighbors {
		if w.res.Depth[e.To] == unreached {
			w.enqueue(e.To, nextDepth, v)
		}
	}

	return nil
}
