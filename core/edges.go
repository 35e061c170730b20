// File: edges.go
// Role: Edge lifecycle, endpoint/weight queries, adjacency maintenance.
//
// Determinism:
//   - Edges() returns edges in insertion (ID ascending) order.
//   - Neighbors()/EdgesBetween() order incident edges by ID ascending.

package core

import (
	"math"
	"sort"
)

// AddEdge inserts an edge from -> to with the given weight and returns its
// engine-assigned ID. Missing endpoints are added automatically.
//
// Errors:
//   - ErrBadWeight if weight is NaN.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if an edge between the endpoints already
//     exists and multi-edges are disabled (for undirected graphs the check
//     covers both orientations).
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, weight float64) (int64, error) {
	if math.IsNaN(weight) {
		return 0, ErrBadWeight
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}

	// Ensure endpoints are registered (insertion order preserved).
	for _, v := range []V{from, to} {
		if _, ok := g.vertexIdx[v]; !ok {
			g.vertexIdx[v] = len(g.vertexSeq)
			g.vertexSeq = append(g.vertexSeq, v)
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return 0, ErrMultiEdgeNotAllowed
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	e := &Edge[V]{ID: id, From: from, To: to, Weight: weight}
	g.edges[id] = e
	g.edgeSeq = append(g.edgeSeq, id)
	addAdjacency(g, from, to, id)
	if !g.directed && from != to {
		addAdjacency(g, to, from, id)
	}

	return id, nil
}

// HasEdge reports whether at least one edge connects from -> to.
// For undirected graphs the orientation is irrelevant.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(from, to V) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// EdgeByID returns a copy of the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph[V]) EdgeByID(id int64) (Edge[V], error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		var zero Edge[V]
		return zero, ErrEdgeNotFound
	}

	return *e, nil
}

// Weight returns the weight of the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph[V]) Weight(id int64) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return e.Weight, nil
}

// SetWeight updates the weight of the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
//   - ErrBadWeight if weight is NaN.
//
// Complexity: O(1).
func (g *Graph[V]) SetWeight(id int64, weight float64) error {
	if math.IsNaN(weight) {
		return ErrBadWeight
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// Edges returns copies of all edges in insertion (ID ascending) order.
// Complexity: O(E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge[V], 0, len(g.edgeSeq))
	for _, id := range g.edgeSeq {
		out = append(out, *g.edges[id])
	}

	return out
}

// EdgeCount returns the current number of edges.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EdgesBetween returns copies of every edge connecting from -> to, ordered
// by ID ascending. For undirected graphs both orientations match.
// Complexity: O(k log k) for k matching edges.
func (g *Graph[V]) EdgesBetween(from, to V) []Edge[V] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]int64, 0, len(g.adjacency[from][to]))
	for id := range g.adjacency[from][to] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Edge[V], 0, len(ids))
	for _, id := range ids {
		out = append(out, *g.edges[id])
	}

	return out
}

// Neighbors returns copies of all edges incident to v that are traversable
// away from v, re-oriented so that From == v. For directed graphs these are
// the outgoing edges; for undirected graphs, every incident edge.
// Edges are ordered by ID ascending.
//
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v) log deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]Edge[V], error) {
	g.muVert.RLock()
	if _, ok := g.vertexIdx[v]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]int64, 0)
	for _, bucket := range g.adjacency[v] {
		for id := range bucket {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Edge[V], 0, len(ids))
	for _, id := range ids {
		e := *g.edges[id]
		if e.From != v {
			// Undirected edge stored with the opposite orientation.
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	return out, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(E) for the insertion-sequence compaction.
func (g *Graph[V]) RemoveEdge(id int64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, id)
	for i, sid := range g.edgeSeq {
		if sid == id {
			g.edgeSeq = append(g.edgeSeq[:i], g.edgeSeq[i+1:]...)
			break
		}
	}

	return nil
}

// addAdjacency registers edge id under from -> to. Caller holds muEdgeAdj.
func addAdjacency[V comparable](g *Graph[V], from, to V, id int64) {
	bucket := g.adjacency[from]
	if bucket == nil {
		bucket = make(map[V]map[int64]struct{})
		g.adjacency[from] = bucket
	}
	set := bucket[to]
	if set == nil {
		set = make(map[int64]struct{})
		bucket[to] = set
	}
	set[id] = struct{}{}
}

// removeAdjacency drops every adjacency reference to e. Caller holds muEdgeAdj.
func removeAdjacency[V comparable](g *Graph[V], e *Edge[V]) {
	if set := g.adjacency[e.From][e.To]; set != nil {
		delete(set, e.ID)
		if len(set) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if set := g.adjacency[e.To][e.From]; set != nil {
		delete(set, e.ID)
		if len(set) == 0 {
			delete(g.adjacency[e.To], e.From)
		}
	}
}
