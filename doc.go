// Package gale is a collection of classical graph-analysis algorithms over
// a generic, in-memory weighted graph model.
//
// The engine is organized as small, focused packages:
//
//   - core         - the Graph[V] model every algorithm reads.
//   - connectivity - weak and strong component decomposition.
//   - flow         - maximum-flow algorithms (Dinic, Push-Relabel,
//     Edmonds-Karp), each returning a flow and an equal-value cut.
//   - cut          - Stoer-Wagner global min-cut, Gomory-Hu and equivalent
//     flow trees, Padberg-Rao odd minimum cut-sets.
//   - metrics      - diameter, radius, girth, triangle count and the
//     bundled all-pairs Measure.
//   - gen          - deterministic topology generators for tests and demos.
//
// All algorithms treat their input graph as read-only, validate
// preconditions eagerly, and return newly allocated result values owned by
// the caller. There is no I/O, persistence, or rendering anywhere in the
// engine; those concerns belong to external collaborators.
package gale
