// Package connectivity provides weak and strong component decomposition
// over a core.Graph.
//
// The three decomposition routines share one contract: they return a
// boolean reporting whether the graph forms a single component, plus the
// ordered sequence of disjoint components covering every vertex. Each
// component lists its members in discovery order; the component sequence
// itself is ordered by the insertion index of each component's first
// discovered vertex, so repeated invocations on an unmodified graph yield
// identical output.
//
//   - WeaklyConnected: treats every edge as undirected and sweeps the
//     graph with BFS. O(V+E).
//   - StronglyConnectedGabow: path-based DFS maintaining two stacks,
//     identifying SCCs in a single pass. Directed graphs only. O(V+E).
//   - StronglyConnectedKosaraju: two-pass finish-order DFS plus a DFS over
//     the transposed graph. Directed graphs only. O(V+E).
//   - IsConnected: convenience dispatcher preserving the classic policy -
//     strong connectivity (Kosaraju) for directed graphs, weak
//     connectivity otherwise. The two notions differ; the dispatch is a
//     deliberate policy, not a generalization.
//
// Gabow and Kosaraju always produce the same partition (as sets of sets)
// for the same input; only traversal order differs internally.
//
// Errors:
//
//	ErrNilGraph         - nil graph pointer.
//	ErrGraphNotDirected - a strong-connectivity routine received an
//	                      undirected graph.
package connectivity
