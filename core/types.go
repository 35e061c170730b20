// File: types.go
// Role: Graph, Edge, GraphOption declarations, sentinel errors, constructor.
//
// Concurrency:
//   - muVert guards the vertex catalog and configuration flags.
//   - muEdgeAdj guards the edge catalog and adjacency index.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN weight was supplied.
	ErrBadWeight = errors.New("core: weight is NaN")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a weighted connection between two vertices.
//
// ID uniquely identifies the edge within its Graph and is assigned by
// AddEdge in increasing order. For undirected graphs (From, To) records the
// insertion orientation; the edge itself is traversable both ways.
type Edge[V comparable] struct {
	// ID uniquely identifies this edge in the Graph.
	ID int64

	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the cost or capacity of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed   bool
	allowMulti bool
	allowLoops bool
}

// WithDirected sets the directedness of every edge in the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Graph is the core in-memory graph data structure, generic over the
// vertex-identifier type V.
//
// It supports directed vs. undirected semantics, real-valued edge weights,
// and optional parallel edges and self-loops. Vertex and edge enumeration
// is stable (insertion order).
type Graph[V comparable] struct {
	muVert    sync.RWMutex // guards vertices and flags
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags, immutable after construction.
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage.
	nextEdgeID int64              // next edge ID to assign
	vertexSeq  []V                // vertices in insertion order
	vertexIdx  map[V]int          // vertex -> position in vertexSeq
	edgeSeq    []int64            // edge IDs in insertion order
	edges      map[int64]*Edge[V] // edge ID -> edge record

	// adjacency[from][to] = set of edge IDs connecting from -> to.
	// Undirected edges are indexed under both orientations.
	adjacency map[V]map[V]map[int64]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is undirected, with no loops and no multi-edges.
// Complexity: O(1).
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed:   cfg.directed,
		allowMulti: cfg.allowMulti,
		allowLoops: cfg.allowLoops,
		vertexIdx:  make(map[V]int),
		edges:      make(map[int64]*Edge[V]),
		adjacency:  make(map[V]map[V]map[int64]struct{}),
	}
}

// Directed reports whether edges in this graph are directed.
// Complexity: O(1).
func (g *Graph[V]) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from == to) are permitted by policy.
// If false, AddEdge(v, v, w) returns ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph[V]) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
// If false, a second edge between the same endpoints returns
// ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph[V]) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
