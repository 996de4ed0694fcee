package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/isomap/core"
)

// Dijkstra computes shortest-path distances from the configured Source to
// every vertex of g.
//
// Returns:
//   - dist: dist[v] = minimal distance from Source to v, +Inf if unreachable.
//   - prev: prev[v] = predecessor of v on one shortest path, -1 for the source
//     and unreachable vertices. Nil unless WithReturnPath() was given.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions(0)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	n := g.Order()
	dist := make([]float64, n)
	ws := NewWorkspace(n)
	if cfg.ReturnPath {
		ws.prev = make([]int, n)
	}
	if err := ws.run(g, cfg, dist); err != nil {
		return nil, nil, err
	}

	return dist, ws.prev, nil
}

// Distances writes the shortest-path distances from src into row, which
// must have exactly g.Order() slots. It allocates a temporary Workspace;
// use Workspace.Distances in loops.
func Distances(g *core.Graph, src int, row []float64) error {
	if g == nil {
		return ErrNilGraph
	}

	return NewWorkspace(g.Order()).Distances(g, src, row)
}

// Path reconstructs the vertex sequence source → … → target from a
// predecessor slice returned by Dijkstra. It returns nil when target is out
// of range or unreachable (and target is not the source itself).
//
// Complexity: O(path length).
func Path(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) {
		return nil
	}
	var rev []int
	for v := target; v != noPredecessor; v = prev[v] {
		rev = append(rev, v)
		if v == source {
			break
		}
		if len(rev) > len(prev) {
			return nil
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Workspace holds the reusable buffers of one Dijkstra worker.
// It is not safe for concurrent use.
type Workspace struct {
	visited []bool // finalized flags, reset per run
	prev    []int  // predecessor slice; nil when paths are not requested
	pq      nodePQ // min-heap of pending (vertex, distance) entries
}

// NewWorkspace allocates buffers for graphs of n vertices.
func NewWorkspace(n int) *Workspace {
	if n < 0 {
		n = 0
	}

	return &Workspace{
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// Distances writes the shortest-path distances from src into row.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrBadRowLength, ErrNegativeWeight.
func (ws *Workspace) Distances(g *core.Graph, src int, row []float64) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(row) != g.Order() {
		return fmt.Errorf("%w: got %d, want %d", ErrBadRowLength, len(row), g.Order())
	}
	ws.prev = nil

	return ws.run(g, DefaultOptions(src), row)
}

// run executes one single-source search writing into dist.
func (ws *Workspace) run(g *core.Graph, cfg Options, dist []float64) error {
	n := g.Order()
	if cfg.Source < 0 || cfg.Source >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexNotFound, cfg.Source, n)
	}
	if cap(ws.visited) < n {
		ws.visited = make([]bool, n)
	}
	ws.visited = ws.visited[:n]

	ws.init(cfg.Source, dist)

	return ws.process(g, cfg, dist)
}

// init resets distances, flags and the heap, then seeds the source.
func (ws *Workspace) init(src int, dist []float64) {
	inf := math.Inf(1)
	var v int
	for v = range dist {
		dist[v] = inf
		ws.visited[v] = false
		if ws.prev != nil {
			ws.prev[v] = noPredecessor
		}
	}
	dist[src] = 0

	ws.pq = ws.pq[:0]
	heap.Push(&ws.pq, nodeItem{id: src, dist: 0})
}

// process pops the closest unsettled vertex, settles it and relaxes its edges.
// Stale heap entries (already visited) are skipped: lazy decrease-key.
func (ws *Workspace) process(g *core.Graph, cfg Options, dist []float64) error {
	var item nodeItem
	for ws.pq.Len() > 0 {
		item = heap.Pop(&ws.pq).(nodeItem)
		if ws.visited[item.id] {
			continue
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		ws.visited[item.id] = true

		if err := ws.relax(g, cfg, item.id, dist); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve dist[v] through u for every neighbor v of u.
func (ws *Workspace) relax(g *core.Graph, cfg Options, u int, dist []float64) error {
	neighbors, err := g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var e core.Edge
	var cand float64
	for _, e = range neighbors {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
		}
		if ws.visited[e.To] {
			continue
		}
		cand = dist[u] + e.Weight
		if cand > cfg.MaxDistance || cand >= dist[e.To] {
			continue
		}
		dist[e.To] = cand
		if ws.prev != nil {
			ws.prev[e.To] = u
		}
		heap.Push(&ws.pq, nodeItem{id: e.To, dist: cand})
	}

	return nil
}

// nodeItem is one heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source at push time
}

// nodePQ is a min-heap ordered by (dist, id).
type nodePQ []nodeItem

// Len implements heap.Interface.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; equal distances settle the lower index first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap implements heap.Interface.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push implements heap.Interface.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop implements heap.Interface.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
