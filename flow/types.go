package flow

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by all max-flow algorithms.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSourceIsSink is returned when source and sink coincide.
	ErrSourceIsSink = errors.New("flow: source equals sink")

	// ErrNonSimpleGraph is returned by EdmondsKarp when the graph contains
	// self-loops or parallel edges.
	ErrNonSimpleGraph = errors.New("flow: graph must be simple (no loops, no multi-edges)")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To any
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %v->%v: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Epsilon: capacities and flows ≤ Epsilon are treated as zero (default 1e-9).
//   - Verbose: if true, logs each augmentation/push step.
type FlowOptions struct {
	Epsilon float64
	Verbose bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: defaultEpsilon}
}

const defaultEpsilon = 1e-9

// normalize fills zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
}

// Flow is a maximum s-t flow: its total value plus the per-edge breakdown.
//
// EdgeFlow maps edge ID to the net flow along the edge's stored
// (From, To) orientation. For directed edges the value lies in
// [0, capacity]. For undirected edges the value is signed: negative means
// the flow runs against the stored orientation; its magnitude never
// exceeds the capacity. Self-loops always carry zero.
//
// For every vertex other than Source and Sink, inbound flow equals
// outbound flow (conservation).
type Flow[V comparable] struct {
	// Value is the net flow shipped from Source to Sink.
	Value float64

	// Source and Sink are the distinguished terminals.
	Source, Sink V

	// EdgeFlow maps edge ID -> net flow along the stored orientation.
	EdgeFlow map[int64]float64
}

// Cut is an s-t (or global) cut: its weight plus the source-side vertex
// partition. The complement is implicit. The source partition is always a
// non-empty proper subset of the graph's vertices.
type Cut[V comparable] struct {
	// Weight is the sum of crossing-edge weights.
	Weight float64

	// SourcePartition lists the vertices on the source side, in graph
	// insertion order.
	SourcePartition []V

	members map[V]struct{}
}

// NewCut assembles a Cut from a weight and its source-side vertices.
// The partition slice is retained; callers must not mutate it afterwards.
func NewCut[V comparable](weight float64, sourcePartition []V) *Cut[V] {
	members := make(map[V]struct{}, len(sourcePartition))
	for _, v := range sourcePartition {
		members[v] = struct{}{}
	}

	return &Cut[V]{Weight: weight, SourcePartition: sourcePartition, members: members}
}

// Contains reports whether v lies on the source side of the cut.
// Complexity: O(1).
func (c *Cut[V]) Contains(v V) bool {
	_, ok := c.members[v]

	return ok
}
