package connectivity

import (
	"errors"

	"github.com/katalvlaran/gale/core"
)

// Sentinel errors for connectivity analysis.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("connectivity: graph is nil")

	// ErrGraphNotDirected is returned when a strong-connectivity routine
	// receives an undirected graph.
	ErrGraphNotDirected = errors.New("connectivity: graph must be directed")
)

// index assigns each vertex its insertion position and materializes
// successor lists from the edge catalog. Successors follow edge insertion
// order, giving every traversal a deterministic visit sequence.
//
// undirectedView additionally records the reverse of every directed edge,
// producing the edge-direction-blind adjacency used by WeaklyConnected.
type index[V comparable] struct {
	verts []V
	pos   map[V]int
	succ  [][]int // forward adjacency (or undirected view)
	pred  [][]int // reverse adjacency; filled only when requested
}

// newIndex builds the traversal index. Self-loops are kept (harmless for
// reachability); parallel edges collapse to repeated successor entries,
// which BFS/DFS visit-once logic tolerates.
// Complexity: O(V + E).
func newIndex[V comparable](g *core.Graph[V], undirectedView, withPred bool) *index[V] {
	verts := g.Vertices()
	ix := &index[V]{
		verts: verts,
		pos:   make(map[V]int, len(verts)),
		succ:  make([][]int, len(verts)),
	}
	for i, v := range verts {
		ix.pos[v] = i
	}
	if withPred {
		ix.pred = make([][]int, len(verts))
	}
	for _, e := range g.Edges() {
		u, w := ix.pos[e.From], ix.pos[e.To]
		ix.succ[u] = append(ix.succ[u], w)
		if undirectedView && u != w {
			ix.succ[w] = append(ix.succ[w], u)
		}
		if withPred {
			ix.pred[w] = append(ix.pred[w], u)
		}
	}

	return ix
}

// components converts a vertex->component-id labelling into the ordered
// component sequence. Components are renumbered by the insertion index of
// their first member, so Gabow and Kosaraju yield identical ordered output
// for the same partition regardless of internal traversal order.
func (ix *index[V]) components(label []int, count int) [][]V {
	renum := make([]int, count)
	for i := range renum {
		renum[i] = -1
	}
	next := 0
	comps := make([][]V, count)
	for i, c := range label {
		if renum[c] < 0 {
			renum[c] = next
			next++
		}
		comps[renum[c]] = append(comps[renum[c]], ix.verts[i])
	}

	return comps
}
