// Package metrics computes whole-graph distance and structure metrics over
// core graphs: diameter, radius, eccentricities (one shared Floyd-Warshall
// pass), girth (a BFS sweep), and triangle count (degree-ordered edge
// orientation with adjacency-set intersection).
//
// Conventions shared by the distance metrics:
//   - An empty graph has diameter 0 and radius 0.
//   - A disconnected graph (weakly, for directed inputs: any unreachable
//     ordered pair) has diameter and radius +Inf.
//   - Girth of an acyclic graph is +Inf.
//
// All routines treat the input graph as read-only and allocate fresh
// result values. Determinism: vertex enumeration follows insertion order,
// and the Floyd-Warshall loop order is fixed (k → i → j), so repeated
// invocations over the same graph return identical results.
package metrics
