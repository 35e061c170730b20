package metrics

import (
	"github.com/katalvlaran/gale/core"
)

// CountTriangles counts the triangles of an undirected graph with the
// forward (degree-ordered orientation) algorithm: every edge is oriented
// from its lower-ranked endpoint to its higher-ranked one, where rank
// orders vertices by degree with insertion-index tie-break, and each
// triangle is found exactly once as an intersection of two forward
// adjacency sets. Self-loops are ignored; parallel edges collapse.
//
// Errors: ErrNilGraph, ErrDirectedGraph.
//
// Complexity: O(E^1.5).
func CountTriangles[V comparable](g *core.Graph[V]) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if g.Directed() {
		return 0, ErrDirectedGraph
	}

	verts := g.Vertices()
	n := len(verts)
	pos := make(map[V]int, n)
	for i, v := range verts {
		pos[v] = i
	}

	// Deduplicated simple adjacency, loops dropped.
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	for _, e := range g.Edges() {
		u, w := pos[e.From], pos[e.To]
		if u == w {
			continue
		}
		adj[u][w] = struct{}{}
		adj[w][u] = struct{}{}
	}

	// Orientation order: by degree, ties by insertion index.
	less := func(a, b int) bool {
		if len(adj[a]) != len(adj[b]) {
			return len(adj[a]) < len(adj[b])
		}
		return a < b
	}

	// Forward adjacency: only neighbors of strictly higher rank.
	forward := make([]map[int]struct{}, n)
	for i := 0; i < n; i++ {
		forward[i] = make(map[int]struct{}, len(adj[i]))
		for w := range adj[i] {
			if less(i, w) {
				forward[i][w] = struct{}{}
			}
		}
	}

	var count int64
	for u := 0; u < n; u++ {
		for w := range forward[u] {
			// Intersect the smaller forward set against the larger.
			a, b := forward[u], forward[w]
			if len(b) < len(a) {
				a, b = b, a
			}
			for x := range a {
				if _, ok := b[x]; ok {
					count++
				}
			}
		}
	}

	return count, nil
}
