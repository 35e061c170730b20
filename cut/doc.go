// Package cut builds minimum cuts and all-pairs flow trees over undirected
// networks, composing the max-flow engine where repeated min-cut
// computations are required.
//
//   - StoerWagner - global minimum cut via maximum-adjacency orderings and
//     vertex merging across n-1 phases. Undirected, non-negative weights.
//   - MinSTCut - the minimum s-t cut as computed by flow.PushRelabel (the
//     canonical algorithm behind this convenience entry point).
//   - GomoryHuGusfield - a Gomory-Hu tree built with n-1 push-relabel
//     min-cut calls on the original graph using Gusfield's tree-parent
//     bookkeeping (no explicit contraction). The minimum edge weight on
//     the tree path between two vertices equals their min-cut value.
//   - EquivalentFlowTreeGusfield - the same scaffold without the
//     parent-swap step, recording pairwise maximum-flow values.
//   - OddMinCutSetPadbergRao - the minimum-weight cut whose source side
//     contains an odd number of designated odd vertices, located among the
//     fundamental cuts of the Gomory-Hu tree; optional tree compression
//     prunes even-parity candidates first.
//
// Every routine validates its preconditions eagerly and fails fast with a
// typed error; no partial computation is attempted.
//
// Errors:
//
//	ErrNilGraph          - nil graph pointer.
//	ErrDirectedGraph     - an undirected-only routine received a directed graph.
//	ErrTooFewVertices    - StoerWagner needs at least two vertices.
//	ErrNegativeWeight    - StoerWagner requires non-negative weights.
//	ErrNonPositiveWeight - OddMinCutSetPadbergRao requires strictly positive weights.
//	ErrNonSimpleGraph    - OddMinCutSetPadbergRao requires a simple graph.
//	ErrOddVertices       - malformed odd-vertex set (empty or odd cardinality).
//	ErrVertexNotFound    - a referenced vertex is absent from the graph/tree.
package cut
