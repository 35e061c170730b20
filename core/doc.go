// Package core defines the central Graph type and the primitives for
// building, querying, and cloning weighted graphs.
//
// Graph is generic over its vertex-identifier type V, which only needs to
// be comparable. Small integers, 64-bit integers, strings, or any other
// hashable value type work through the single generic code path; there are
// no representation-specific branches anywhere in the engine.
//
// Edges carry an engine-assigned int64 identifier, ordered endpoints
// (From, To), and a float64 weight. Directedness, self-loop permission,
// and multi-edge permission are construction-time flags set via
// GraphOption values.
//
// Determinism: Vertices() and Edges() enumerate in insertion order, which
// is stable for a fixed build sequence. Algorithm packages rely on this
// order for reproducible output only, never for correctness.
//
// Concurrency: all core APIs use two sync.RWMutex locks internally
// (muVert for the vertex catalog, muEdgeAdj for edges and adjacency), so
// concurrent readers are safe; the algorithm packages treat a Graph as
// read-only for the duration of a call.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is NaN.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
