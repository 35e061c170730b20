package cut

import (
	"github.com/katalvlaran/gale/core"
	"github.com/katalvlaran/gale/flow"
)

// GomoryHuGusfield builds a Gomory-Hu tree of an undirected network using
// Gusfield's algorithm: n-1 minimum s-t cut computations (push-relabel) on
// the original graph, with tree-parent bookkeeping replacing explicit
// contraction. The minimum link weight on the tree path between any two
// vertices equals their min-cut value, so the tree answers all O(n^2)
// pairwise min-cut queries from n-1 flow computations.
//
// Errors: ErrNilGraph, ErrDirectedGraph; flow errors propagate (e.g.
// EdgeError on negative capacities).
//
// Complexity: O(V) push-relabel calls at O(V^3) each, O(V^4) total.
func GomoryHuGusfield[V comparable](g *core.Graph[V]) (*GomoryHuTree[V], error) {
	t, err := gusfield(g, true)
	if err != nil {
		return nil, err
	}

	return &GomoryHuTree[V]{tree: *t}, nil
}

// EquivalentFlowTreeGusfield builds an Equivalent Flow Tree of an
// undirected network: the same Gusfield scaffold as the Gomory-Hu builder
// minus the parent-swap step, recording maximum-flow values. The minimum
// link weight on the tree path between any two vertices equals their
// max-flow value.
//
// Errors: ErrNilGraph, ErrDirectedGraph; flow errors propagate.
//
// Complexity: O(V^4).
func EquivalentFlowTreeGusfield[V comparable](g *core.Graph[V]) (*EquivalentFlowTree[V], error) {
	t, err := gusfield(g, false)
	if err != nil {
		return nil, err
	}

	return &EquivalentFlowTree[V]{tree: *t}, nil
}

// gusfield runs the shared tree-building loop. When gomoryHu is true the
// parent-swap step keeps the structure a valid cut tree; without it the
// result is an equivalent flow tree.
func gusfield[V comparable](g *core.Graph[V], gomoryHu bool) (*flowTree[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	verts := g.Vertices()
	n := len(verts)
	t := &flowTree[V]{
		verts:  verts,
		pos:    make(map[V]int, n),
		parent: make([]int, n), // all start parented to the root (index 0)
		weight: make([]float64, n),
	}
	for i, v := range verts {
		t.pos[v] = i
	}

	opts := flow.DefaultOptions()
	for s := 1; s < n; s++ {
		sink := t.parent[s]
		c, err := MinSTCut(g, verts[s], verts[sink], opts)
		if err != nil {
			return nil, err
		}
		f := c.Weight
		t.weight[s] = f

		// Re-parent every sibling of s that fell on s's side of the cut.
		for j := 0; j < n; j++ {
			if j != s && t.parent[j] == sink && c.Contains(verts[j]) {
				t.parent[j] = s
			}
		}

		// Gomory-Hu adjustment: if the sink's own parent landed on s's
		// side, s splices in between them.
		if gomoryHu && c.Contains(verts[t.parent[sink]]) {
			t.parent[s] = t.parent[sink]
			t.parent[sink] = s
			t.weight[s] = t.weight[sink]
			t.weight[sink] = f
		}
	}

	// Finalize: root the tree and compute depths for path queries.
	if n > 0 {
		t.parent[0] = -1
	}
	t.depth = make([]int, n)
	for i := range t.depth {
		t.depth[i] = -1
	}
	if n > 0 {
		t.depth[0] = 0
	}
	var chain []int
	for i := 0; i < n; i++ {
		chain = chain[:0]
		j := i
		for t.depth[j] < 0 {
			chain = append(chain, j)
			j = t.parent[j]
		}
		for k := len(chain) - 1; k >= 0; k-- {
			c := chain[k]
			t.depth[c] = t.depth[t.parent[c]] + 1
		}
	}

	return t, nil
}
