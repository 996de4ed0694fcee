// File: methods.go
// Role: Graph construction and read APIs (AddEdge, HasEdge, Weight, Neighbors, Edges).
// Determinism:
//   - adjacency lists stay sorted by neighbor index after every insertion.
//   - Edges() lists each undirected edge once with From < To, ordered by (From, To).

package core

import (
	"math"
	"sort"
)

// NewGraph creates an edgeless graph over n vertices (indices 0..n-1).
//
// Errors:
//   - ErrEmptyInput if n == 0.
//   - ErrInvalidParameter if n < 0.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n < 0 {
		return nil, invalidf("negative vertex count %d", n)
	}

	return &Graph{
		n:   n,
		adj: make([][]Edge, n),
	}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.size }

// TotalWeight returns the sum of all undirected edge weights.
func (g *Graph) TotalWeight() float64 { return g.total }

// AddEdge inserts the undirected edge {u,v} with weight w into both
// adjacency lists.
//
// Implementation:
//   - Stage 1: validate indices, reject self-loops and non-finite/negative weights.
//   - Stage 2: locate the insertion slot in adj[u] by binary search.
//   - Stage 3: if the edge exists, accept only an identical weight (idempotent);
//     otherwise insert into adj[u] and the mirror into adj[v].
//
// Errors:
//   - ErrInvalidParameter for out-of-range indices, u == v, w < 0, NaN/Inf w,
//     or a second insertion of {u,v} with a different weight.
//
// Complexity: O(deg(u) + deg(v)) due to sorted insertion.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return invalidf("self-loop on vertex %d", u)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return invalidf("edge {%d,%d} weight %v must be finite and non-negative", u, v, w)
	}

	pos, found := g.find(u, v)
	if found {
		// Same unordered pair seen from the other endpoint: weights must agree.
		if g.adj[u][pos].Weight != w {
			return invalidf("edge {%d,%d} re-added with weight %v (existing %v)", u, v, w, g.adj[u][pos].Weight)
		}

		return nil
	}

	g.adj[u] = insertAt(g.adj[u], pos, Edge{From: u, To: v, Weight: w})
	mirror, _ := g.find(v, u)
	g.adj[v] = insertAt(g.adj[v], mirror, Edge{From: v, To: u, Weight: w})
	g.size++
	g.total += w

	return nil
}

// HasEdge reports whether {u,v} is present. Out-of-range indices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return false
	}
	_, found := g.find(u, v)

	return found
}

// Weight returns the weight of {u,v} and whether the edge exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return 0, false
	}
	pos, found := g.find(u, v)
	if !found {
		return 0, false
	}

	return g.adj[u][pos].Weight, true
}

// Neighbors returns the adjacency list of u, sorted by neighbor index.
//
// The returned slice is the live internal list: treat it as read-only.
// This keeps the Dijkstra relaxation loop allocation-free.
//
// Errors:
//   - ErrInvalidParameter if u is out of range.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}

	return g.adj[u], nil
}

// Degree returns the number of neighbors of u (0 for out-of-range u).
func (g *Graph) Degree(u int) int {
	if g.checkVertex(u) != nil {
		return 0
	}

	return len(g.adj[u])
}

// Edges returns every undirected edge once, with From < To, ordered by (From, To).
// The result is a fresh slice independent of the graph.
//
// Complexity: O(N + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	var u int
	var e Edge
	for u = 0; u < g.n; u++ {
		for _, e = range g.adj[u] {
			if e.From < e.To {
				out = append(out, e)
			}
		}
	}

	return out
}

// checkVertex validates 0 ≤ u < n.
func (g *Graph) checkVertex(u int) error {
	if u < 0 || u >= g.n {
		return invalidf("vertex %d out of range [0,%d)", u, g.n)
	}

	return nil
}

// find returns the position of neighbor v in adj[u] (or its insertion slot)
// and whether it is present.
func (g *Graph) find(u, v int) (int, bool) {
	list := g.adj[u]
	pos := sort.Search(len(list), func(i int) bool { return list[i].To >= v })

	return pos, pos < len(list) && list[pos].To == v
}

// insertAt inserts e at index pos, shifting the tail right.
func insertAt(list []Edge, pos int, e Edge) []Edge {
	list = append(list, Edge{})
	copy(list[pos+1:], list[pos:])
	list[pos] = e

	return list
}
