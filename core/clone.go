// File: clone.go
// Role: Deep and structural copies of a Graph.

package core

// CloneEmpty returns a new Graph with the same configuration flags and the
// same vertices (insertion order preserved) but no edges.
// Complexity: O(V).
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := &Graph[V]{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertexIdx:  make(map[V]int, len(g.vertexIdx)),
		edges:      make(map[int64]*Edge[V]),
		adjacency:  make(map[V]map[V]map[int64]struct{}, len(g.vertexSeq)),
	}
	out.vertexSeq = make([]V, len(g.vertexSeq))
	copy(out.vertexSeq, g.vertexSeq)
	for v, i := range g.vertexIdx {
		out.vertexIdx[v] = i
		out.adjacency[v] = make(map[V]map[int64]struct{})
	}

	return out
}

// Clone returns a deep copy of the graph: same flags, vertices, edges,
// edge IDs, and weights. Mutating the clone never affects the original.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	out := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out.nextEdgeID = g.nextEdgeID
	out.edgeSeq = make([]int64, len(g.edgeSeq))
	copy(out.edgeSeq, g.edgeSeq)
	for _, id := range g.edgeSeq {
		e := *g.edges[id]
		out.edges[id] = &e
		addAdjacency(out, e.From, e.To, id)
		if !out.directed && e.From != e.To {
			addAdjacency(out, e.To, e.From, id)
		}
	}

	return out
}
