package cut

import (
	"math"

	"github.com/katalvlaran/gale/core"
	"github.com/katalvlaran/gale/flow"
)

// StoerWagner computes a global minimum cut of an undirected graph with
// non-negative edge weights.
//
// Each of the n-1 phases grows a maximum-adjacency ordering: starting from
// an arbitrary vertex, it repeatedly absorbs the vertex most strongly
// connected to the grown set. The connectivity of the last-added vertex is
// the cut-of-the-phase separating it from the rest; the two last-ranked
// vertices are then merged. The lightest cut-of-the-phase across all
// phases is a global minimum cut.
//
// Ties in the maximum-adjacency selection break toward the lowest vertex
// insertion index, making the returned partition deterministic.
//
// Parallel edges are aggregated; self-loops are ignored (they never cross
// a cut). A disconnected graph yields a zero-weight cut.
//
// Errors: ErrNilGraph, ErrDirectedGraph, ErrTooFewVertices,
// ErrNegativeWeight.
//
// Complexity: O(V^3) with the simple selection scan (a heap-based variant
// would be O(V*E*log E)). Memory: O(V^2).
func StoerWagner[V comparable](g *core.Graph[V]) (*flow.Cut[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	verts := g.Vertices()
	n := len(verts)
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	pos := make(map[V]int, n)
	for i, v := range verts {
		pos[v] = i
	}

	// Aggregated weight matrix over supervertices.
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		if e.From == e.To {
			continue
		}
		i, j := pos[e.From], pos[e.To]
		w[i][j] += e.Weight
		w[j][i] += e.Weight
	}

	// group[i] lists the original vertices merged into supervertex i.
	group := make([][]V, n)
	for i, v := range verts {
		group[i] = []V{v}
	}
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	bestWeight := math.Inf(1)
	var bestSide []V

	conn := make([]float64, n) // connectivity to the grown set A
	inA := make([]bool, n)

	for remaining := n; remaining > 1; remaining-- {
		// Maximum-adjacency ordering over the alive supervertices.
		for i := 0; i < n; i++ {
			conn[i] = 0
			inA[i] = false
		}
		prev, last := -1, -1
		var lastConn float64
		for step := 0; step < remaining; step++ {
			pick := -1
			for i := 0; i < n; i++ {
				if !alive[i] || inA[i] {
					continue
				}
				if pick < 0 || conn[i] > conn[pick] {
					pick = i
				}
			}
			inA[pick] = true
			prev, last = last, pick
			lastConn = conn[pick]
			for i := 0; i < n; i++ {
				if alive[i] && !inA[i] {
					conn[i] += w[pick][i]
				}
			}
		}

		// Cut-of-the-phase: last vertex against the rest.
		if lastConn < bestWeight {
			bestWeight = lastConn
			bestSide = append([]V(nil), group[last]...)
		}

		// Merge last into prev.
		for i := 0; i < n; i++ {
			if alive[i] && i != prev && i != last {
				w[prev][i] += w[last][i]
				w[i][prev] += w[i][last]
			}
		}
		group[prev] = append(group[prev], group[last]...)
		alive[last] = false
	}

	return flow.NewCut(bestWeight, bestSide), nil
}
