// Package flow implements maximum-flow algorithms over a core.Graph,
// using edge weights as arc capacities.
//
// Three algorithms share one contract: given a graph, a source, and a
// sink, each returns a maximum s-t Flow together with a minimum s-t Cut of
// equal value (max-flow/min-cut duality).
//
//   - Dinic       - level graph (BFS layering) + blocking flows via DFS
//     with current-arc pointers. O(V^2 * E).
//   - PushRelabel - FIFO preflow-push with height labels and per-vertex
//     excess. O(V^3). This is the canonical algorithm behind the
//     convenience entry points: MaxSTFlow here and cut.MinSTCut.
//   - EdmondsKarp - shortest augmenting paths via BFS. O(V * E^2).
//     Checked precondition: the graph must be simple (no self-loops, no
//     parallel edges); violations return ErrNonSimpleGraph before any
//     computation.
//
// Graphs may be directed or undirected; an undirected edge behaves as two
// opposing capacitated arcs of equal capacity. Self-loops never carry s-t
// flow and are reported with zero flow (Dinic and PushRelabel tolerate
// them; EdmondsKarp rejects them). Parallel edges are aggregated by the
// flow network but reported per edge.
//
// All preconditions are validated eagerly: the engine fails fast with a
// typed error and never attempts partial computation. Algorithms run to
// completion; there is no cancellation mechanism - callers wanting bounded
// latency must bound their inputs.
//
// FlowOptions configures every algorithm:
//
//	opts := flow.DefaultOptions()
//	// opts.Epsilon = 1e-9  - capacities and flows ≤ Epsilon are treated as zero
//	// opts.Verbose = false - log augmentation steps
//
// Errors:
//
//	ErrNilGraph       - nil graph pointer.
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	ErrSourceIsSink   - source and sink are the same vertex.
//	ErrNonSimpleGraph - EdmondsKarp received loops or parallel edges.
//	EdgeError         - an edge has negative capacity.
package flow
