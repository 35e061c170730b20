// File: vertices.go
// Role: Vertex lifecycle and queries.
//
// Determinism:
//   - Vertices() returns identifiers in insertion order.

package core

// AddVertex inserts a vertex if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertexIdx[v]; exists {
		return // no-op for existing vertex
	}
	g.vertexIdx[v] = len(g.vertexSeq)
	g.vertexSeq = append(g.vertexSeq, v)

	g.muEdgeAdj.Lock()
	if g.adjacency[v] == nil {
		g.adjacency[v] = make(map[V]map[int64]struct{})
	}
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertexIdx[v]

	return ok
}

// Vertices returns all vertex identifiers in insertion order.
// The returned slice is a copy; callers may retain or mutate it freely.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]V, len(g.vertexSeq))
	copy(out, g.vertexSeq)

	return out
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertexSeq)
}

// RemoveVertex deletes a vertex and all incident edges.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(V + E).
func (g *Graph[V]) RemoveVertex(v V) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	pos, exists := g.vertexIdx[v]
	if !exists {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// Drop incident edges from catalog and insertion sequence.
	keep := g.edgeSeq[:0]
	for _, id := range g.edgeSeq {
		e := g.edges[id]
		if e.From == v || e.To == v {
			removeAdjacency(g, e)
			delete(g.edges, id)
			continue
		}
		keep = append(keep, id)
	}
	g.edgeSeq = keep

	// Remove the vertex and re-index the tail of the insertion sequence.
	g.vertexSeq = append(g.vertexSeq[:pos], g.vertexSeq[pos+1:]...)
	delete(g.vertexIdx, v)
	for i := pos; i < len(g.vertexSeq); i++ {
		g.vertexIdx[g.vertexSeq[i]] = i
	}
	delete(g.adjacency, v)
	for _, bucket := range g.adjacency {
		delete(bucket, v)
	}

	return nil
}

// Degree returns the degree components of the given vertex:
//
//   - in:  number of incoming directed edges (e.To == v)
//   - out: number of outgoing directed edges (e.From == v)
//   - undirected: contribution from undirected edges
//
// Conventions (classic graph theory):
//   - A directed self-loop contributes +1 to both in and out.
//   - An undirected self-loop contributes +2 to undirected.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(E).
func (g *Graph[V]) Degree(v V) (in, out, undirected int, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if _, ok := g.vertexIdx[v]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	directed := g.directed
	for _, e := range g.edges {
		isFrom := e.From == v
		isTo := e.To == v
		if !isFrom && !isTo {
			continue
		}
		if directed {
			if isFrom {
				out++
			}
			if isTo {
				in++
			}
		} else {
			if isFrom && isTo {
				undirected += 2
			} else {
				undirected++
			}
		}
	}

	return in, out, undirected, nil
}
